// ABOUTME: Interactive onboarding wizard collecting the user profile.
// ABOUTME: Validated profile feeds plan generation.
package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Answer the onboarding questions",
	Long: `Collect the personal attributes plan generation needs: body stats,
experience, goal, training frequency, and constraints. Values outside
realistic bounds are rejected before anything is saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		reader := stdinReader()
		existing := appStore.Profile()
		if existing == nil {
			existing = &models.Profile{}
		}

		profile := &models.Profile{}
		profile.Gender = promptChoice(reader, "Gender", []string{"male", "female"}, existing.Gender)

		age, err := promptInt(reader, "Age", existing.Age)
		if err != nil {
			return err
		}
		profile.Age = age

		weight, err := promptFloat(reader, "Weight (kg)", existing.Weight)
		if err != nil {
			return err
		}
		profile.Weight = weight

		height, err := promptFloat(reader, "Height (cm)", existing.Height)
		if err != nil {
			return err
		}
		profile.Height = height

		profile.Experience = promptChoice(reader, "Experience", []string{"beginner", "intermediate", "advanced"}, existing.Experience)
		profile.Goal = promptChoice(reader, "Goal", []string{"muscle_gain", "fat_loss", "strength_gain", "general_fitness", "body_recomposition"}, existing.Goal)

		days, err := promptInt(reader, "Training days per week (3-5)", existing.DaysPerWeek)
		if err != nil {
			return err
		}
		profile.DaysPerWeek = days

		profile.BodyType = promptChoice(reader, "Body type", []string{"ectomorph", "mesomorph", "endomorph"}, existing.BodyType)
		profile.Equipment = promptChoice(reader, "Equipment", []string{"full_gym", "home_gym", "bodyweight"}, existing.Equipment)

		if injuries := promptLine(reader, "Injuries (comma separated, empty for none)", strings.Join(existing.Injuries, ", ")); injuries != "" {
			for _, inj := range strings.Split(injuries, ",") {
				if inj = strings.TrimSpace(inj); inj != "" {
					profile.Injuries = append(profile.Injuries, inj)
				}
			}
			profile.InjuryDetails = promptLine(reader, "Injury details", existing.InjuryDetails)
		}

		if err := appStore.SetProfile(profile); err != nil {
			return fmt.Errorf("invalid profile: %w", err)
		}

		color.Green("✓ Profile saved")
		fmt.Println("  Run 'coach plan generate' to create your plan.")
		return nil
	},
}

func promptChoice(reader *bufio.Reader, label string, options []string, defaultValue string) string {
	return promptLine(reader, fmt.Sprintf("%s (%s)", label, strings.Join(options, "/")), defaultValue)
}

func promptInt(reader *bufio.Reader, label string, defaultValue int) (int, error) {
	def := ""
	if defaultValue != 0 {
		def = strconv.Itoa(defaultValue)
	}
	value := promptLine(reader, label, def)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", label, value)
	}
	return n, nil
}

func promptFloat(reader *bufio.Reader, label string, defaultValue float64) (float64, error) {
	def := ""
	if defaultValue != 0 {
		def = strconv.FormatFloat(defaultValue, 'f', -1, 64)
	}
	value := promptLine(reader, label, def)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", label, value)
	}
	return f, nil
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}
