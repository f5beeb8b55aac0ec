// ABOUTME: Plan commands - generate, show, custom build, and nutrition.
// ABOUTME: Generation goes through the Gemini boundary; failures are retry-able.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/ai"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage your workout plan",
	Long: `Generate, inspect, or hand-build the weekly workout plan.

A new plan always replaces the previous one wholesale, and discards any
nutrition plan generated against it.

COMMANDS:

  generate   Generate a plan from your onboarding profile
  show       Print the weekly split
  custom     Build a plan by hand from the exercise library
  nutrition  Generate a matching one-day nutrition plan`,
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a plan from your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}
		profile := appStore.Profile()
		if profile == nil {
			return errors.New("no profile - run 'coach onboard' first")
		}

		svc, err := aiService(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Generating your plan, this takes a minute...")
		plan, err := svc.GenerateWorkoutPlan(cmd.Context(), *profile)
		if err != nil {
			return retryableErr(err)
		}

		if err := appStore.SetPlan(plan); err != nil {
			return err
		}
		color.Green("✓ Plan ready: %s", plan.PlanName)
		printPlanSummary(plan)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the weekly split",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}
		plan := appStore.Plan()
		if plan == nil {
			return errors.New("no plan - run 'coach plan generate' or 'coach plan custom'")
		}

		fmt.Printf("%s\n\n", plan.PlanName)
		for _, day := range plan.WeeklySplit {
			color.New(color.Bold).Printf("%s - %s\n", day.Day, day.MuscleGroups)
			for _, ex := range day.Exercises {
				fmt.Printf("  %s  %s x %s, rest %s\n", padRight(ex.Name, 30), ex.Sets, ex.Reps, ex.Rest)
				if ex.Notes != "" {
					faint := color.New(color.Faint)
					faint.Printf("    %s\n", ex.Notes)
				}
			}
			fmt.Println()
		}

		if nutrition := appStore.NutritionPlan(); nutrition != nil {
			fmt.Printf("Nutrition: %s (%s)\n", nutrition.PlanTitle, nutrition.DailyCalories)
		}
		return nil
	},
}

var planCustomCmd = &cobra.Command{
	Use:   "custom",
	Short: "Build a plan by hand from the exercise library",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		svc, err := aiService(cmd.Context())
		if err != nil {
			return err
		}
		database, err := loadResource(appStore.ExerciseDB(), func() ([]models.ExerciseCategory, error) {
			fmt.Println("Loading exercise library...")
			return svc.FetchExerciseDatabase(cmd.Context())
		})
		if err != nil {
			return retryableErr(err)
		}

		plan, err := buildCustomPlan(stdinReader(), database)
		if err != nil {
			return err
		}
		if err := appStore.SetPlan(plan); err != nil {
			return err
		}
		color.Green("✓ Plan saved: %s", plan.PlanName)
		return nil
	},
}

var planNutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Generate a matching nutrition plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}
		profile := appStore.Profile()
		plan := appStore.Plan()
		if profile == nil || plan == nil {
			return errors.New("nutrition needs both a profile and a generated plan")
		}

		svc, err := aiService(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Generating nutrition plan...")
		nutrition, err := svc.GenerateNutritionPlan(cmd.Context(), *profile, *plan)
		if err != nil {
			return retryableErr(err)
		}
		if err := appStore.SetNutritionPlan(nutrition); err != nil {
			return err
		}

		color.Green("✓ %s", nutrition.PlanTitle)
		fmt.Printf("  Daily target: %s (P %s / C %s / F %s)\n",
			nutrition.DailyCalories,
			nutrition.DailyMacros.Protein, nutrition.DailyMacros.Carbs, nutrition.DailyMacros.Fats)
		for _, meal := range nutrition.SampleDay {
			fmt.Printf("  %s  %s (%s)\n", padRight(meal.Name, 12), meal.Description, meal.Calories)
		}
		for _, rec := range nutrition.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
		return nil
	},
}

// buildCustomPlan walks the user through picking exercises per day.
func buildCustomPlan(reader *bufio.Reader, database []models.ExerciseCategory) (*models.WorkoutPlan, error) {
	name := promptLine(reader, "Plan name", "Custom Plan")
	daysStr := promptLine(reader, "Number of training days", "3")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 || days > 7 {
		return nil, fmt.Errorf("invalid day count %q", daysStr)
	}

	for i, category := range database {
		fmt.Printf("%2d. %s (%d exercises)\n", i+1, category.MuscleGroup, len(category.Exercises))
	}

	plan := &models.WorkoutPlan{PlanName: name}
	for d := 1; d <= days; d++ {
		dayLabel := fmt.Sprintf("Day %d", d)
		fmt.Printf("\n%s\n", dayLabel)
		muscles := promptLine(reader, "Muscle groups (e.g. Chest, Triceps)", "")

		day := models.WorkoutDay{Day: dayLabel, MuscleGroups: muscles}
		for {
			pick := promptLine(reader, "Add exercise (category#:exercise# or name, empty to finish day)", "")
			if pick == "" {
				break
			}
			ex, ok := resolveExercise(database, pick)
			if !ok {
				fmt.Printf("No exercise matching %q\n", pick)
				continue
			}
			sets := promptLine(reader, "Target sets", "3")
			reps := promptLine(reader, "Rep range", "8-12")
			rest := promptLine(reader, "Rest", "90s")
			day.Exercises = append(day.Exercises, models.Exercise{
				Name: ex.Name, Sets: sets, Reps: reps, Rest: rest, ImageURL: ex.ImageURL,
			})
		}
		if len(day.Exercises) == 0 {
			return nil, fmt.Errorf("%s has no exercises", dayLabel)
		}
		plan.WeeklySplit = append(plan.WeeklySplit, day)
	}
	return plan, nil
}

// resolveExercise accepts "category#:exercise#" or a case-insensitive name.
func resolveExercise(database []models.ExerciseCategory, pick string) (models.ExerciseInfo, bool) {
	if c, e, ok := strings.Cut(pick, ":"); ok {
		ci, err1 := strconv.Atoi(strings.TrimSpace(c))
		ei, err2 := strconv.Atoi(strings.TrimSpace(e))
		if err1 == nil && err2 == nil && ci >= 1 && ci <= len(database) {
			category := database[ci-1]
			if ei >= 1 && ei <= len(category.Exercises) {
				return category.Exercises[ei-1], true
			}
		}
		return models.ExerciseInfo{}, false
	}

	for _, category := range database {
		for _, ex := range category.Exercises {
			if strings.EqualFold(ex.Name, pick) {
				return ex, true
			}
		}
	}
	return models.ExerciseInfo{}, false
}

func printPlanSummary(plan *models.WorkoutPlan) {
	for _, day := range plan.WeeklySplit {
		fmt.Printf("  %s - %s (%d exercises)\n", day.Day, day.MuscleGroups, len(day.Exercises))
	}
}

// aiService builds the Gemini client from the environment.
func aiService(ctx context.Context) (ai.Service, error) {
	return ai.NewClient(ctx, ai.APIKey())
}

// retryableErr marks a generation failure as safe to simply run again.
func retryableErr(err error) error {
	var genErr *ai.GenerationError
	if errors.As(err, &genErr) {
		return fmt.Errorf("%w (try the command again)", err)
	}
	return err
}

// loadResource serves a library from its resource when loaded, fetching it
// once otherwise. A fetch already in flight is not duplicated.
func loadResource[T any](res *session.Resource[T], fetch func() (T, error)) (T, error) {
	if data, ok := res.Get(); ok {
		return data, nil
	}
	if res.Status() == session.Loading {
		var zero T
		return zero, errors.New("already loading")
	}

	token := res.Begin()
	data, err := fetch()
	if err != nil {
		res.Fail(token, err)
		var zero T
		return zero, err
	}
	res.Complete(token, data)
	return data, nil
}

func init() {
	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planCustomCmd)
	planCmd.AddCommand(planNutritionCmd)
	rootCmd.AddCommand(planCmd)
}
