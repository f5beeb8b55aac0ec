// ABOUTME: Cardio commands - log entries, list the log, browse the library.
// ABOUTME: Library comes from the generative service and is fetched once per process.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var (
	cardioDuration float64
	cardioDistance float64
	cardioCalories float64
)

var cardioCmd = &cobra.Command{
	Use:   "cardio",
	Short: "Log and browse cardio activity",
}

var cardioLogCmd = &cobra.Command{
	Use:   "log <exercise>",
	Short: "Log a cardio activity",
	Long: `Log a cardio activity by name. Duration is required; distance and
calories are optional.

  $ coach cardio log "Rowing" --duration 20 --distance 4.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		entry, err := appStore.RecordCardioLog(models.CardioLogEntry{
			ExerciseName:    args[0],
			DurationMinutes: cardioDuration,
			DistanceKm:      cardioDistance,
			Calories:        cardioCalories,
		})
		if err != nil {
			return err
		}

		color.Green("✓ Logged %s (%.0f min)", entry.ExerciseName, entry.DurationMinutes)
		return nil
	},
}

var cardioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged cardio, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		logs := appStore.CardioLogs()
		if len(logs) == 0 {
			fmt.Println("No cardio logged yet.")
			return nil
		}
		for _, entry := range logs {
			fmt.Printf("%s  %s  %.0f min%s%s\n",
				entry.Date, padRight(entry.ExerciseName, 24), entry.DurationMinutes,
				formatMetric("  %.1f km", entry.DistanceKm),
				formatMetric("  %.0f kcal", entry.Calories))
		}
		return nil
	},
}

var cardioLibraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse the cardio exercise library",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		svc, err := aiService(cmd.Context())
		if err != nil {
			return err
		}
		library, err := loadResource(appStore.CardioLibrary(), func() ([]models.CardioExercise, error) {
			fmt.Println("Loading cardio library...")
			return svc.FetchCardioLibrary(cmd.Context())
		})
		if err != nil {
			return retryableErr(err)
		}

		for _, ex := range library {
			color.New(color.Bold).Println(ex.Name)
			fmt.Printf("  %s\n", ex.Description)
			fmt.Printf("  metrics: %s\n", strings.Join(ex.PrimaryMetrics, ", "))
		}
		return nil
	},
}

func formatMetric(format string, value float64) string {
	if value <= 0 {
		return ""
	}
	return fmt.Sprintf(format, value)
}

func init() {
	cardioLogCmd.Flags().Float64Var(&cardioDuration, "duration", 0, "duration in minutes (required)")
	cardioLogCmd.Flags().Float64Var(&cardioDistance, "distance", 0, "distance in km")
	cardioLogCmd.Flags().Float64Var(&cardioCalories, "calories", 0, "calories burned")
	cardioLogCmd.MarkFlagRequired("duration")

	cardioCmd.AddCommand(cardioLogCmd)
	cardioCmd.AddCommand(cardioListCmd)
	cardioCmd.AddCommand(cardioLibraryCmd)
	rootCmd.AddCommand(cardioCmd)
}
