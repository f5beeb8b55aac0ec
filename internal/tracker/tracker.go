// ABOUTME: Active workout tracking - previous performance, set grid, finalization.
// ABOUTME: Bridges a plan day and session history into an immutable session record.
package tracker

import (
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/models"
)

// defaultTargetSets is used when a plan's set count doesn't parse.
const defaultTargetSets = 3

// PreviousPerformance maps an exercise name to the sets most recently logged
// for it. Derived at workout start, never stored.
type PreviousPerformance map[string][]models.LoggedSet

// ComputePreviousPerformance scans history newest-first and, for each
// exercise in day, takes the sets from the first session that contains a
// logged exercise with a matching name. Exercises with no prior session get
// no entry. Pure.
func ComputePreviousPerformance(day models.WorkoutDay, history []models.WorkoutSession) PreviousPerformance {
	prev := PreviousPerformance{}
	for _, exercise := range day.Exercises {
		for _, session := range history {
			if sets, ok := findLoggedSets(session, exercise.Name); ok {
				prev[exercise.Name] = sets
				break
			}
		}
	}
	return prev
}

func findLoggedSets(session models.WorkoutSession, name string) ([]models.LoggedSet, bool) {
	for _, logged := range session.Exercises {
		if logged.Name == name {
			return logged.Sets, true
		}
	}
	return nil, false
}

// SetEntry is one mutable row in the tracking grid. Weight and reps stay raw
// strings until finalization so blank and zero are distinguishable.
type SetEntry struct {
	Weight    string
	Reps      string
	Completed bool
}

func (e SetEntry) blank() bool {
	return strings.TrimSpace(e.Weight) == "" && strings.TrimSpace(e.Reps) == ""
}

// ActiveWorkout is the in-progress tracking state for one plan day. It lives
// only for the duration of the process; an interrupted workout is lost.
type ActiveWorkout struct {
	Day       models.WorkoutDay
	Previous  PreviousPerformance
	StartedAt time.Time

	now  func() time.Time
	sets map[string][]SetEntry
}

// Start initializes tracking for a plan day. Each exercise gets one row per
// target set, weight pre-filled from previous performance where available
// and reps left blank.
func Start(day models.WorkoutDay, history []models.WorkoutSession) *ActiveWorkout {
	prev := ComputePreviousPerformance(day, history)

	sets := make(map[string][]SetEntry, len(day.Exercises))
	for _, exercise := range day.Exercises {
		target := parseTargetSets(exercise.Sets)
		rows := make([]SetEntry, target)
		for i := range rows {
			if prevSets := prev[exercise.Name]; i < len(prevSets) {
				rows[i].Weight = formatWeight(prevSets[i].Weight)
			}
		}
		sets[exercise.Name] = rows
	}

	return &ActiveWorkout{
		Day:       day,
		Previous:  prev,
		StartedAt: time.Now(),
		now:       time.Now,
		sets:      sets,
	}
}

// Sets returns the current rows for an exercise.
func (w *ActiveWorkout) Sets(name string) []SetEntry {
	return w.sets[name]
}

// SetWeight updates the weight field of a row. Out-of-range indexes are ignored.
func (w *ActiveWorkout) SetWeight(name string, index int, value string) {
	if rows := w.sets[name]; index >= 0 && index < len(rows) {
		rows[index].Weight = value
	}
}

// SetReps updates the reps field of a row. Out-of-range indexes are ignored.
func (w *ActiveWorkout) SetReps(name string, index int, value string) {
	if rows := w.sets[name]; index >= 0 && index < len(rows) {
		rows[index].Reps = value
	}
}

// ToggleSetCompletion flips a row's completed flag and reports whether the
// row transitioned to completed, so callers can trigger a rest timer only on
// forward transitions. A row with blank weight or blank reps cannot be
// marked complete; the call is a no-op returning false. Completing a row
// pre-fills the next row's weight when it is still blank.
func (w *ActiveWorkout) ToggleSetCompletion(name string, index int) bool {
	rows := w.sets[name]
	if index < 0 || index >= len(rows) {
		return false
	}

	row := &rows[index]
	if !row.Completed && (strings.TrimSpace(row.Reps) == "" || strings.TrimSpace(row.Weight) == "") {
		return false
	}

	row.Completed = !row.Completed

	if row.Completed && index < len(rows)-1 && rows[index+1].Weight == "" {
		rows[index+1].Weight = row.Weight
	}

	return row.Completed
}

// AddSet appends a new incomplete row to an exercise, defaulting its weight
// to the last row's weight.
func (w *ActiveWorkout) AddSet(name string) {
	rows, ok := w.sets[name]
	if !ok {
		return
	}
	var weight string
	if len(rows) > 0 {
		weight = rows[len(rows)-1].Weight
	}
	w.sets[name] = append(rows, SetEntry{Weight: weight})
}

// Progress reports how many exercises are fully complete. An exercise counts
// once it has at least its target number of completed sets and every
// remaining row is either completed or entirely blank.
func (w *ActiveWorkout) Progress() (completed, total int) {
	total = len(w.Day.Exercises)
	for _, exercise := range w.Day.Exercises {
		rows := w.sets[exercise.Name]
		target := parseTargetSets(exercise.Sets)

		done := 0
		clean := true
		for _, row := range rows {
			if row.Completed {
				done++
			} else if !row.blank() {
				clean = false
			}
		}
		if done >= target && clean {
			completed++
		}
	}
	return completed, total
}

// Elapsed returns whole seconds since the workout started.
func (w *ActiveWorkout) Elapsed() int {
	return int(w.now().Sub(w.StartedAt) / time.Second)
}

// Finish finalizes the workout into an immutable session record. Only
// completed rows whose parsed reps are greater than zero are retained, and
// an exercise is kept only if at least one such row survives. Non-numeric
// reps and weight parse to zero. The duration is supplied by the caller.
func (w *ActiveWorkout) Finish(elapsedSeconds int) models.WorkoutSession {
	var exercises []models.LoggedExercise
	for _, exercise := range w.Day.Exercises {
		var kept []models.LoggedSet
		for _, row := range w.sets[exercise.Name] {
			if !row.Completed {
				continue
			}
			reps := parseReps(row.Reps)
			if reps <= 0 {
				continue
			}
			kept = append(kept, models.LoggedSet{Reps: reps, Weight: parseWeight(row.Weight)})
		}
		if len(kept) > 0 {
			exercises = append(exercises, models.LoggedExercise{Name: exercise.Name, Sets: kept})
		}
	}

	finishedAt := w.now()
	return models.WorkoutSession{
		ID:        models.SessionIDAt(finishedAt),
		Date:      models.DisplayDate(finishedAt),
		DayName:   w.Day.Day,
		Exercises: exercises,
		Duration:  elapsedSeconds,
	}
}

func parseTargetSets(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return defaultTargetSets
	}
	return n
}

func parseReps(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseWeight(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func formatWeight(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
