// ABOUTME: Cardio and daily activity models - log entries and the cardio library.
// ABOUTME: Cardio logs are immutable and kept newest-first.
package models

// CardioExercise is a library entry describing a cardio activity and which
// metrics matter for it.
type CardioExercise struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	PrimaryMetrics []string `json:"primaryMetrics"` // duration, distance, calories
}

// CardioLogEntry is one logged cardio activity. Date is day-granularity
// (YYYY-MM-DD), not a timestamp. Immutable once created.
type CardioLogEntry struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	ExerciseName    string  `json:"exerciseName"`
	DurationMinutes float64 `json:"durationMinutes"`
	DistanceKm      float64 `json:"distanceKm,omitempty"`
	Calories        float64 `json:"calories,omitempty"`
}

// DailySteps is the per-day step counter, persisted with its date so it
// resets on rollover like the food log.
type DailySteps struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}
