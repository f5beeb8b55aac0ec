// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/storage"
)

// setupTestStore creates a logged-in session over an in-memory backend.
func setupTestStore(t *testing.T) *session.Store {
	t.Helper()

	store := session.New(storage.NewStore(storage.NewMemKV()))
	if err := store.Login("alice"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return store
}

func TestNewServer(t *testing.T) {
	server, err := NewServer(setupTestStore(t))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if server == nil || server.mcpServer == nil || server.store == nil {
		t.Fatal("expected fully initialized server")
	}
}

func TestHandleLogFood(t *testing.T) {
	store := setupTestStore(t)
	server, _ := NewServer(store)
	ctx := context.Background()

	_, out, err := server.handleLogFood(ctx, nil, logFoodInput{
		Name:     "Grilled Chicken Breast",
		Calories: 220,
		Protein:  40,
	})
	if err != nil {
		t.Fatalf("handleLogFood failed: %v", err)
	}
	if !strings.Contains(out.Message, "Grilled Chicken Breast") {
		t.Errorf("Message = %q", out.Message)
	}
	if len(store.FoodLog().Log) != 1 {
		t.Error("expected one food item in log")
	}
}

func TestHandleLogCardio(t *testing.T) {
	store := setupTestStore(t)
	server, _ := NewServer(store)
	ctx := context.Background()

	_, _, err := server.handleLogCardio(ctx, nil, logCardioInput{
		ExerciseName:    "Treadmill Running",
		DurationMinutes: 30,
		DistanceKm:      5,
	})
	if err != nil {
		t.Fatalf("handleLogCardio failed: %v", err)
	}
	if len(store.CardioLogs()) != 1 {
		t.Error("expected one cardio entry")
	}

	_, _, err = server.handleLogCardio(ctx, nil, logCardioInput{ExerciseName: "Rowing"})
	if err == nil {
		t.Error("expected zero-duration cardio to fail")
	}
}

func TestHandleSetSteps(t *testing.T) {
	store := setupTestStore(t)
	server, _ := NewServer(store)
	ctx := context.Background()

	if _, _, err := server.handleSetSteps(ctx, nil, setStepsInput{Steps: 8000}); err != nil {
		t.Fatalf("handleSetSteps failed: %v", err)
	}
	if store.DailySteps() != 8000 {
		t.Errorf("DailySteps = %d, want 8000", store.DailySteps())
	}

	if _, _, err := server.handleSetSteps(ctx, nil, setStepsInput{Steps: -5}); err == nil {
		t.Error("expected negative steps to fail")
	}
}

func TestHandleListHistory(t *testing.T) {
	store := setupTestStore(t)
	server, _ := NewServer(store)
	ctx := context.Background()

	_, out, err := server.handleListHistory(ctx, nil, listHistoryInput{})
	if err != nil {
		t.Fatalf("handleListHistory failed: %v", err)
	}
	if _, ok := out.(map[string]any); !ok {
		t.Errorf("expected empty-history message, got %T", out)
	}

	if err := store.RecordWorkoutSession(models.WorkoutSession{ID: "1", DayName: "Day 1"}); err != nil {
		t.Fatal(err)
	}
	_, out, err = server.handleListHistory(ctx, nil, listHistoryInput{})
	if err != nil {
		t.Fatal(err)
	}
	sessions, ok := out.([]models.WorkoutSession)
	if !ok || len(sessions) != 1 {
		t.Errorf("expected one session, got %v", out)
	}
}

func TestHandleDailyActivity(t *testing.T) {
	store := setupTestStore(t)
	server, _ := NewServer(store)
	ctx := context.Background()

	_ = store.AddFoodItems([]models.AnalyzedFoodItem{{Name: "Oats", Calories: 300}})
	store.SetDailySteps(4000)

	_, out, err := server.handleDailyActivity(ctx, nil, struct{}{})
	if err != nil {
		t.Fatalf("handleDailyActivity failed: %v", err)
	}
	activity := out.(map[string]any)
	if activity["steps"] != 4000 {
		t.Errorf("steps = %v, want 4000", activity["steps"])
	}
	if activity["totalCalories"] != 300.0 {
		t.Errorf("totalCalories = %v, want 300", activity["totalCalories"])
	}
}

func TestHandleGetPlanWithoutPlan(t *testing.T) {
	server, _ := NewServer(setupTestStore(t))

	_, out, err := server.handleGetPlan(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("handleGetPlan failed: %v", err)
	}
	if _, ok := out.(map[string]any); !ok {
		t.Errorf("expected no-plan message, got %T", out)
	}
}
