// ABOUTME: MCP tool implementations over the coach session store.
// ABOUTME: Logging and query operations for food, cardio, steps, and history.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Add a food item with estimated nutrition to today's food log",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_cardio",
		Description: "Log a cardio activity (running, cycling, rowing, etc.)",
	}, s.handleLogCardio)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_steps",
		Description: "Set today's step count",
	}, s.handleSetSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workout_history",
		Description: "List completed workout sessions, newest first",
	}, s.handleListHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_daily_activity",
		Description: "Get today's food log totals, step count, and recent cardio",
	}, s.handleDailyActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout_plan",
		Description: "Get the active weekly workout plan",
	}, s.handleGetPlan)
}

// Tool input/output types

type logFoodInput struct {
	Name        string  `json:"name" jsonschema:"Food item name"`
	Calories    float64 `json:"calories" jsonschema:"Estimated calories"`
	Protein     float64 `json:"protein,omitempty" jsonschema:"Protein in grams"`
	Carbs       float64 `json:"carbs,omitempty" jsonschema:"Carbs in grams"`
	Fats        float64 `json:"fats,omitempty" jsonschema:"Fats in grams"`
	WeightGrams float64 `json:"weight_grams,omitempty" jsonschema:"Portion weight in grams"`
}

type logCardioInput struct {
	ExerciseName    string  `json:"exercise_name" jsonschema:"Cardio activity name"`
	DurationMinutes float64 `json:"duration_minutes" jsonschema:"Duration in minutes"`
	DistanceKm      float64 `json:"distance_km,omitempty" jsonschema:"Distance in kilometers"`
	Calories        float64 `json:"calories,omitempty" jsonschema:"Calories burned"`
}

type setStepsInput struct {
	Steps int `json:"steps" jsonschema:"Total step count for today"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max sessions to return"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	item := models.AnalyzedFoodItem{
		Name:        input.Name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fats:        input.Fats,
		WeightGrams: input.WeightGrams,
	}
	if err := s.store.AddFoodItems([]models.AnalyzedFoodItem{item}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	calories, _ := s.store.FoodLog().Totals()
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s (%.0f kcal). Today's total: %.0f kcal", input.Name, input.Calories, calories),
	}, nil
}

func (s *Server) handleLogCardio(ctx context.Context, req *mcp.CallToolRequest, input logCardioInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry, err := s.store.RecordCardioLog(models.CardioLogEntry{
		ExerciseName:    input.ExerciseName,
		DurationMinutes: input.DurationMinutes,
		DistanceKm:      input.DistanceKm,
		Calories:        input.Calories,
	})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log cardio: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s for %.0f min (ID: %s)", entry.ExerciseName, entry.DurationMinutes, entry.ID),
	}, nil
}

func (s *Server) handleSetSteps(ctx context.Context, req *mcp.CallToolRequest, input setStepsInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !s.store.SetDailySteps(input.Steps) {
		return nil, simpleOutput{}, fmt.Errorf("invalid step count: %d", input.Steps)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Steps set to %d", input.Steps),
	}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	history := s.store.History()
	if len(history) > input.Limit {
		history = history[:input.Limit]
	}

	if len(history) == 0 {
		return nil, map[string]any{"message": "No workouts recorded."}, nil
	}
	return nil, history, nil
}

func (s *Server) handleDailyActivity(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	foodLog := s.store.FoodLog()
	calories, macros := foodLog.Totals()

	cardio := s.store.CardioLogs()
	if len(cardio) > 5 {
		cardio = cardio[:5]
	}

	return nil, map[string]any{
		"date":          foodLog.Date,
		"steps":         s.store.DailySteps(),
		"foodItems":     len(foodLog.Log),
		"totalCalories": calories,
		"totalMacros":   macros,
		"recentCardio":  cardio,
	}, nil
}

func (s *Server) handleGetPlan(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	plan := s.store.Plan()
	if plan == nil {
		return nil, map[string]any{"message": "No workout plan set. Generate one with 'coach plan generate'."}, nil
	}
	return nil, plan, nil
}
