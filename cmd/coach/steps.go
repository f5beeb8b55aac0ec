// ABOUTME: Steps and daily activity commands.
// ABOUTME: Steps are a per-day counter; activity summarizes today across domains.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Track daily steps",
}

var stepsSetCmd = &cobra.Command{
	Use:   "set <count>",
	Short: "Set today's step count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("steps must be a number, got %q", args[0])
		}
		if !appStore.SetDailySteps(count) {
			return fmt.Errorf("steps must be non-negative, got %d", count)
		}
		color.Green("✓ Steps today: %d", count)
		return nil
	},
}

var stepsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's step count",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}
		fmt.Printf("%d steps today\n", appStore.DailySteps())
		return nil
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Summarize today's food, steps, and cardio",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		foodLog := appStore.FoodLog()
		calories, macros := foodLog.Totals()
		color.New(color.Bold).Println("Today")
		fmt.Printf("  Food: %d items, %.0f kcal (P %.0fg / C %.0fg / F %.0fg)\n",
			len(foodLog.Log), calories, macros.Protein, macros.Carbs, macros.Fats)
		fmt.Printf("  Steps: %d\n", appStore.DailySteps())

		// The food log date is always today after rollover on load.
		var cardioToday int
		var cardioMinutes float64
		for _, entry := range appStore.CardioLogs() {
			if entry.Date != foodLog.Date {
				continue
			}
			cardioToday++
			cardioMinutes += entry.DurationMinutes
		}
		fmt.Printf("  Cardio: %d activities, %.0f min\n", cardioToday, cardioMinutes)
		return nil
	},
}

func init() {
	stepsCmd.AddCommand(stepsSetCmd)
	stepsCmd.AddCommand(stepsShowCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(activityCmd)
}
