// ABOUTME: Response parsing and all-or-nothing validation for AI payloads.
// ABOUTME: Pure functions; a response missing required top-level fields is rejected whole.
package ai

import (
	"encoding/json"

	"github.com/harperreed/coach/internal/models"
)

func parseWorkoutPlan(data []byte) (*models.WorkoutPlan, error) {
	const op = "generate workout plan"

	var plan models.WorkoutPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, genErr(op, err)
	}
	if plan.PlanName == "" || len(plan.WeeklySplit) == 0 {
		return nil, genErrf(op, "invalid plan structure: missing planName or weeklySplit")
	}
	return &plan, nil
}

func parseNutritionPlan(data []byte) (*models.NutritionPlan, error) {
	const op = "generate nutrition plan"

	var plan models.NutritionPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, genErr(op, err)
	}
	if plan.PlanTitle == "" || plan.DailyCalories == "" || len(plan.SampleDay) == 0 || len(plan.Recommendations) == 0 {
		return nil, genErrf(op, "invalid nutrition plan structure: missing required fields")
	}
	return &plan, nil
}

func parseExerciseDatabase(data []byte) ([]models.ExerciseCategory, error) {
	const op = "fetch exercise database"

	var wrapper struct {
		Database []models.ExerciseCategory `json:"database"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, genErr(op, err)
	}
	if len(wrapper.Database) == 0 {
		return nil, genErrf(op, "invalid database structure: missing database")
	}
	return wrapper.Database, nil
}

func parseFoodAnalysis(data []byte) (*models.FoodAnalysisResult, error) {
	const op = "analyze food image"

	var result models.FoodAnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, genErr(op, err)
	}
	if result.TotalCalories == 0 || len(result.Items) == 0 {
		return nil, genErrf(op, "invalid analysis structure: missing totalCalories or items")
	}
	return &result, nil
}

func parseCardioLibrary(data []byte) ([]models.CardioExercise, error) {
	const op = "fetch cardio library"

	var wrapper struct {
		Library []models.CardioExercise `json:"library"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, genErr(op, err)
	}
	if len(wrapper.Library) == 0 {
		return nil, genErrf(op, "invalid cardio library structure: missing library")
	}
	return wrapper.Library, nil
}

func parseFoodLibrary(data []byte) ([]models.FoodCategory, error) {
	const op = "fetch food library"

	var wrapper struct {
		Library []models.FoodCategory `json:"library"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, genErr(op, err)
	}
	if len(wrapper.Library) == 0 {
		return nil, genErrf(op, "invalid food library structure: missing library")
	}
	return wrapper.Library, nil
}

func parseFoodSearch(data []byte) ([]models.FoodSearchResult, error) {
	const op = "search food"

	var wrapper struct {
		Results []models.FoodSearchResult `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, genErr(op, err)
	}
	return wrapper.Results, nil
}
