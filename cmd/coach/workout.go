// ABOUTME: Interactive workout tracking command.
// ABOUTME: Runs a set-by-set REPL; finishing records an immutable session.
package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/tracker"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Track workouts",
	Long: `Track a workout session set by set.

'coach workout start "Day 1"' opens an interactive session for that plan
day. Each exercise starts with its target number of set rows; weights are
pre-filled from the last time you performed the exercise.

SESSION COMMANDS:

  w <exercise#> <set#> <weight>   Enter a weight
  r <exercise#> <set#> <reps>     Enter reps
  done <exercise#> <set#>         Toggle a set complete (needs weight+reps)
  add <exercise#>                 Add an extra set row
  show                            Redraw the grid
  finish                          Record the session and exit
  cancel                          Discard everything and exit

An interrupted session is not saved; only 'finish' records anything.`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start <day>",
	Short: "Start tracking a plan day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		w, err := appStore.StartWorkout(args[0])
		if err != nil {
			return err
		}

		color.New(color.Bold).Printf("%s - %s\n", w.Day.Day, w.Day.MuscleGroups)
		printGrid(w)
		return runTrackingLoop(stdinReader(), w)
	},
}

// runTrackingLoop is the interactive session REPL.
func runTrackingLoop(reader *bufio.Reader, w *tracker.ActiveWorkout) error {
	for {
		fmt.Print("workout> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF: treat like cancel, nothing is recorded.
			fmt.Println("\nSession discarded.")
			return appStore.CancelWorkout()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "w", "r":
			name, setIdx, ok := resolveSetRef(w, fields[1:])
			if !ok || len(fields) < 4 {
				fmt.Println("Usage: w <exercise#> <set#> <weight>  |  r <exercise#> <set#> <reps>")
				continue
			}
			if fields[0] == "w" {
				w.SetWeight(name, setIdx, fields[3])
			} else {
				w.SetReps(name, setIdx, fields[3])
			}

		case "done":
			name, setIdx, ok := resolveSetRef(w, fields[1:])
			if !ok {
				fmt.Println("Usage: done <exercise#> <set#>")
				continue
			}
			wasCompleted := w.Sets(name)[setIdx].Completed
			if w.ToggleSetCompletion(name, setIdx) {
				if rest := restFor(w, name); rest != "" {
					color.Cyan("Rest %s", rest)
				}
			} else if !wasCompleted {
				fmt.Println("Set needs both weight and reps before completing.")
			}
			printProgress(w)

		case "add":
			name, _, ok := resolveSetRef(w, append(fields[1:], "1"))
			if !ok {
				fmt.Println("Usage: add <exercise#>")
				continue
			}
			w.AddSet(name)
			printGrid(w)

		case "show":
			printGrid(w)

		case "finish":
			session, err := appStore.FinishWorkout(w.Elapsed())
			if err != nil {
				return err
			}
			color.Green("✓ Recorded %s (%s)", session.DayName, formatDuration(session.Duration))
			for _, ex := range session.Exercises {
				fmt.Printf("  %s: %d sets\n", ex.Name, len(ex.Sets))
			}
			if len(session.Exercises) == 0 {
				fmt.Println("  (no completed sets - an empty session was recorded)")
			}
			return nil

		case "cancel":
			fmt.Println("Session discarded.")
			return appStore.CancelWorkout()

		default:
			fmt.Println("Commands: w, r, done, add, show, finish, cancel")
		}
	}
}

// resolveSetRef maps "exercise# set#" (1-based) to an exercise name and
// 0-based set index.
func resolveSetRef(w *tracker.ActiveWorkout, fields []string) (string, int, bool) {
	if len(fields) < 2 {
		return "", 0, false
	}
	exIdx, err1 := strconv.Atoi(fields[0])
	setIdx, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || exIdx < 1 || exIdx > len(w.Day.Exercises) {
		return "", 0, false
	}
	name := w.Day.Exercises[exIdx-1].Name
	if setIdx < 1 || setIdx > len(w.Sets(name)) {
		return "", 0, false
	}
	return name, setIdx - 1, true
}

func restFor(w *tracker.ActiveWorkout, name string) string {
	for _, ex := range w.Day.Exercises {
		if ex.Name == name {
			return ex.Rest
		}
	}
	return ""
}

func printGrid(w *tracker.ActiveWorkout) {
	faint := color.New(color.Faint)
	for i, ex := range w.Day.Exercises {
		fmt.Printf("%d. %s (%s x %s)\n", i+1, ex.Name, ex.Sets, ex.Reps)
		if prev := w.Previous[ex.Name]; len(prev) > 0 {
			var parts []string
			for _, s := range prev {
				parts = append(parts, fmt.Sprintf("%gx%d", s.Weight, s.Reps))
			}
			faint.Printf("   last time: %s\n", strings.Join(parts, ", "))
		}
		for j, row := range w.Sets(ex.Name) {
			mark := " "
			if row.Completed {
				mark = color.GreenString("✓")
			}
			weight := row.Weight
			if weight == "" {
				weight = "-"
			}
			reps := row.Reps
			if reps == "" {
				reps = "-"
			}
			fmt.Printf("   [%s] set %d: %s kg x %s\n", mark, j+1, weight, reps)
		}
	}
}

func printProgress(w *tracker.ActiveWorkout) {
	done, total := w.Progress()
	fmt.Printf("Exercises complete: %d/%d, elapsed %s\n", done, total, formatDuration(w.Elapsed()))
}

func init() {
	workoutCmd.AddCommand(workoutStartCmd)
	rootCmd.AddCommand(workoutCmd)
}
