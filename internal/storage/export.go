// ABOUTME: Export and import of a single user's full record set.
// ABOUTME: JSON format, usable for backups and moving between backends.
package storage

import (
	"time"

	"github.com/harperreed/coach/internal/models"
)

// ExportData is the full export format for one user's records.
type ExportData struct {
	Version        string                  `json:"version"`
	ExportedAt     time.Time               `json:"exported_at"`
	Tool           string                  `json:"tool"`
	User           string                  `json:"user"`
	WorkoutHistory []models.WorkoutSession `json:"workoutHistory"`
	CardioLogs     []models.CardioLogEntry `json:"cardioLogs"`
	DailySteps     *models.DailySteps      `json:"dailySteps,omitempty"`
	DailyFoodLog   *models.DailyFoodLog    `json:"dailyFoodLog,omitempty"`
	WorkoutPlan    *models.WorkoutPlan     `json:"workoutPlan,omitempty"`
	NutritionPlan  *models.NutritionPlan   `json:"nutritionPlan,omitempty"`
	Profile        *models.Profile         `json:"userProfile,omitempty"`
}

// Export gathers every persisted record for userID.
func (s *Store) Export(userID string) *ExportData {
	out := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "coach",
		User:       userID,
	}

	s.Load(KeyWorkoutHistory, userID, &out.WorkoutHistory)
	s.Load(KeyCardioLogs, userID, &out.CardioLogs)

	var steps models.DailySteps
	if s.Load(KeyDailySteps, userID, &steps) {
		out.DailySteps = &steps
	}
	var foodLog models.DailyFoodLog
	if s.Load(KeyDailyFoodLog, userID, &foodLog) {
		out.DailyFoodLog = &foodLog
	}
	var plan models.WorkoutPlan
	if s.Load(KeyWorkoutPlan, userID, &plan) {
		out.WorkoutPlan = &plan
	}
	var nutrition models.NutritionPlan
	if s.Load(KeyNutritionPlan, userID, &nutrition) {
		out.NutritionPlan = &nutrition
	}
	var profile models.Profile
	if s.Load(KeyProfile, userID, &profile) {
		out.Profile = &profile
	}

	return out
}

// Import writes an exported record set back under data.User.
func (s *Store) Import(data *ExportData) {
	user := data.User
	if data.WorkoutHistory != nil {
		s.Save(KeyWorkoutHistory, user, data.WorkoutHistory)
	}
	if data.CardioLogs != nil {
		s.Save(KeyCardioLogs, user, data.CardioLogs)
	}
	if data.DailySteps != nil {
		s.Save(KeyDailySteps, user, data.DailySteps)
	}
	if data.DailyFoodLog != nil {
		s.Save(KeyDailyFoodLog, user, data.DailyFoodLog)
	}
	if data.WorkoutPlan != nil {
		s.Save(KeyWorkoutPlan, user, data.WorkoutPlan)
	}
	if data.NutritionPlan != nil {
		s.Save(KeyNutritionPlan, user, data.NutritionPlan)
	}
	if data.Profile != nil {
		s.Save(KeyProfile, user, data.Profile)
	}
}
