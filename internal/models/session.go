// ABOUTME: Workout session history models - immutable records of performed workouts.
// ABOUTME: Sessions are created once by the tracker and never mutated after.
package models

import (
	"strconv"
	"time"
)

// LoggedSet is one performed set. Reps and weight are always >= 0.
type LoggedSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// LoggedExercise is the recorded sets for one exercise within a session.
// Name matches the plan Exercise.Name it was performed against.
type LoggedExercise struct {
	Name string      `json:"name"`
	Sets []LoggedSet `json:"sets"`
}

// WorkoutSession is one completed, timestamped workout. Immutable once
// created; history keeps sessions newest-first.
type WorkoutSession struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	DayName   string           `json:"dayName"`
	Exercises []LoggedExercise `json:"exercises"`
	Duration  int              `json:"duration"` // seconds
	Notes     string           `json:"notes,omitempty"`
}

// NewSessionID returns a time-derived unique id for history records.
func NewSessionID() string {
	return SessionIDAt(time.Now())
}

// SessionIDAt derives the id for a record created at t.
func SessionIDAt(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// DisplayDate formats a timestamp the way session records store it.
func DisplayDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
