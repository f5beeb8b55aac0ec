// ABOUTME: Exercise database models fetched from the AI boundary.
// ABOUTME: Used by the manual plan builder and for exercise detail lookups.
package models

// ExerciseInfo is one database entry for an exercise.
type ExerciseInfo struct {
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl,omitempty"`
	YoutubeURL string `json:"youtubeUrl,omitempty"`
}

// ExerciseCategory groups database exercises by muscle group.
type ExerciseCategory struct {
	MuscleGroup string         `json:"muscleGroup"`
	Exercises   []ExerciseInfo `json:"exercises"`
	ImageURL    string         `json:"imageUrl,omitempty"`
}
