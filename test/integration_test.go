// ABOUTME: Integration tests for the coach session workflow.
// ABOUTME: Exercises login through workout tracking to persisted history.
package test

import (
	"encoding/json"
	"testing"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/storage"
)

func benchPlan() *models.WorkoutPlan {
	return &models.WorkoutPlan{
		PlanName: "Test Split",
		WeeklySplit: []models.WorkoutDay{
			{
				Day:          "Day 1",
				MuscleGroups: "Chest",
				Exercises: []models.Exercise{
					{Name: "Bench Press", Sets: "3", Reps: "8-12", Rest: "90s"},
				},
			},
		},
	}
}

func TestFullWorkoutWorkflow(t *testing.T) {
	kv := storage.NewMemKV()
	store := storage.NewStore(kv)
	app := session.New(store)

	if err := app.Login("alice"); err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}
	if err := app.SetPlan(benchPlan()); err != nil {
		t.Fatalf("Failed to set plan: %v", err)
	}

	w, err := app.StartWorkout("Day 1")
	if err != nil {
		t.Fatalf("Failed to start workout: %v", err)
	}

	// Fill and complete all three target sets at 60kg x 10.
	for i := 0; i < 3; i++ {
		w.SetWeight("Bench Press", i, "60")
		w.SetReps("Bench Press", i, "10")
		if !w.ToggleSetCompletion("Bench Press", i) {
			t.Fatalf("Set %d did not complete", i)
		}
	}

	recorded, err := app.FinishWorkout(600)
	if err != nil {
		t.Fatalf("Failed to finish workout: %v", err)
	}
	if recorded.DayName != "Day 1" || recorded.Duration != 600 {
		t.Errorf("Unexpected session: %+v", recorded)
	}
	if len(recorded.Exercises) != 1 || len(recorded.Exercises[0].Sets) != 3 {
		t.Fatalf("Expected 1 exercise with 3 sets, got %+v", recorded.Exercises)
	}
	for _, set := range recorded.Exercises[0].Sets {
		if set.Weight != 60 || set.Reps != 10 {
			t.Errorf("Expected 60x10, got %gx%d", set.Weight, set.Reps)
		}
	}

	// Session is at the head of history.
	history := app.History()
	if len(history) != 1 || history[0].ID != recorded.ID {
		t.Fatalf("Expected recorded session at head of history, got %+v", history)
	}

	// And persisted under alice's namespaced key.
	raw, err := kv.Get(storage.UserKey(storage.KeyWorkoutHistory, "alice"))
	if err != nil {
		t.Fatalf("History not persisted: %v", err)
	}
	var persisted []models.WorkoutSession
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("Persisted history is not valid JSON: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != recorded.ID {
		t.Errorf("Persisted history mismatch: %+v", persisted)
	}
}

func TestLogoutLoginRestoresRecords(t *testing.T) {
	kv := storage.NewMemKV()
	store := storage.NewStore(kv)
	app := session.New(store)

	if err := app.Login("bob"); err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}
	if err := app.SetPlan(benchPlan()); err != nil {
		t.Fatalf("Failed to set plan: %v", err)
	}
	if _, err := app.StartWorkout("Day 1"); err != nil {
		t.Fatalf("Failed to start workout: %v", err)
	}
	if _, err := app.FinishWorkout(60); err != nil {
		t.Fatalf("Failed to finish workout: %v", err)
	}

	app.Logout()
	if app.CurrentUser() != "" {
		t.Fatal("Expected no user after logout")
	}
	if len(app.History()) != 0 {
		t.Fatal("Expected empty in-memory history after logout")
	}

	if err := app.Login("bob"); err != nil {
		t.Fatalf("Failed to log back in: %v", err)
	}
	if len(app.History()) != 1 {
		t.Errorf("Expected 1 session after re-login, got %d", len(app.History()))
	}
	if app.Plan() == nil || app.Plan().PlanName != "Test Split" {
		t.Errorf("Expected plan restored after re-login, got %+v", app.Plan())
	}
}

func TestSecondProcessResumesSession(t *testing.T) {
	kv := storage.NewMemKV()
	store := storage.NewStore(kv)

	first := session.New(store)
	if err := first.Login("carol"); err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}
	if !first.SetDailySteps(8500) {
		t.Fatal("Failed to set steps")
	}

	// A new store over the same KV stands in for a fresh CLI invocation.
	second := session.New(store)
	if !second.Resume() {
		t.Fatal("Expected resume to restore carol")
	}
	if second.CurrentUser() != "carol" {
		t.Errorf("Expected carol, got %q", second.CurrentUser())
	}
	if second.DailySteps() != 8500 {
		t.Errorf("Expected 8500 steps, got %d", second.DailySteps())
	}
}
