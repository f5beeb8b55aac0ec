// ABOUTME: Tests for shared CLI formatting helpers.
// ABOUTME: Also exercises the command package's session display paths.
package main

import (
	"testing"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/tracker"
)

func TestPadRight(t *testing.T) {
	if got := padRight("Squat", 8); got != "Squat   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("Incline Dumbbell Press", 8); got != "Incline Dumbbell Press" {
		t.Errorf("padRight must not truncate, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{45, "45s"},
		{60, "1m 00s"},
		{600, "10m 00s"},
		{3725, "62m 05s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestResolveSetRef(t *testing.T) {
	day := models.WorkoutDay{
		Day: "Day 1",
		Exercises: []models.Exercise{
			{Name: "Bench Press", Sets: "3"},
			{Name: "Incline Dumbbell Press", Sets: "4"},
		},
	}
	w := tracker.Start(day, nil)

	name, idx, ok := resolveSetRef(w, []string{"2", "4"})
	if !ok || name != "Incline Dumbbell Press" || idx != 3 {
		t.Errorf("resolveSetRef = %q, %d, %v", name, idx, ok)
	}

	for _, fields := range [][]string{
		{"0", "1"},  // exercise below range
		{"3", "1"},  // exercise above range
		{"1", "4"},  // set above range
		{"1"},       // missing set
		{"x", "1"},  // non-numeric
	} {
		if _, _, ok := resolveSetRef(w, fields); ok {
			t.Errorf("resolveSetRef(%v) unexpectedly ok", fields)
		}
	}
}
