// ABOUTME: Workout history listing command.
// ABOUTME: Sessions print newest first with per-exercise set summaries.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed workout sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		sessions := appStore.History()
		if len(sessions) == 0 {
			fmt.Println("No workouts recorded yet.")
			return nil
		}
		if historyLimit > 0 && len(sessions) > historyLimit {
			sessions = sessions[:historyLimit]
		}

		for _, session := range sessions {
			color.New(color.Bold).Printf("%s - %s (%s)\n",
				session.Date, session.DayName, formatDuration(session.Duration))
			for _, ex := range session.Exercises {
				var parts []string
				for _, set := range ex.Sets {
					parts = append(parts, fmt.Sprintf("%gx%d", set.Weight, set.Reps))
				}
				fmt.Printf("  %s  %s\n", padRight(ex.Name, 30), strings.Join(parts, ", "))
			}
			if session.Notes != "" {
				fmt.Printf("  %s\n", session.Notes)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most N sessions (0 = all)")
	rootCmd.AddCommand(historyCmd)
}
