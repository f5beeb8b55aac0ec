// ABOUTME: Unit tests for the persistence adapter.
// ABOUTME: Covers namespacing, fail-open reads, and best-effort writes.
package storage

import (
	"testing"

	"github.com/harperreed/coach/internal/models"
)

func TestUserKeyFormat(t *testing.T) {
	key := UserKey(KeyDailySteps, "alice")
	if key != "dailySteps:alice" {
		t.Errorf("UserKey = %q, want dailySteps:alice", key)
	}
}

func TestCrossUserIsolation(t *testing.T) {
	store := NewStore(NewMemKV())

	store.Save(KeyDailySteps, "alice", models.DailySteps{Date: "2024-01-01", Steps: 500})

	var steps models.DailySteps
	if store.Load(KeyDailySteps, "bob", &steps) {
		t.Fatalf("expected bob's steps to be absent, got %+v", steps)
	}
	if !store.Load(KeyDailySteps, "alice", &steps) {
		t.Fatal("expected alice's steps to be present")
	}
	if steps.Steps != 500 {
		t.Errorf("Steps = %d, want 500", steps.Steps)
	}
}

func TestLoadCorruptRecordReportsAbsent(t *testing.T) {
	kv := NewMemKV()
	store := NewStore(kv)

	if err := kv.Set(UserKey(KeyWorkoutHistory, "alice"), []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	var history []models.WorkoutSession
	if store.Load(KeyWorkoutHistory, "alice", &history) {
		t.Error("expected corrupt record to report absent")
	}
}

func TestSaveSwallowsWriteFailures(t *testing.T) {
	kv := NewMemKV()
	kv.FailWrites = true
	store := NewStore(kv)

	// Must not panic or return anything; in-memory state stays authoritative.
	store.Save(KeyCardioLogs, "alice", []models.CardioLogEntry{{ID: "1"}})

	var logs []models.CardioLogEntry
	if store.Load(KeyCardioLogs, "alice", &logs) {
		t.Error("expected nothing persisted after failed write")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := NewStore(NewMemKV())

	session := models.WorkoutSession{
		ID:      "1700000000000",
		Date:    "January 2, 2024",
		DayName: "Day 1",
		Exercises: []models.LoggedExercise{
			{Name: "Squat", Sets: []models.LoggedSet{{Reps: 5, Weight: 100}, {Reps: 5, Weight: 102.5}}},
		},
		Duration: 3600,
	}
	store.Save(KeyWorkoutHistory, "alice", []models.WorkoutSession{session})

	var got []models.WorkoutSession
	if !store.Load(KeyWorkoutHistory, "alice", &got) {
		t.Fatal("expected history to load")
	}
	if len(got) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(got))
	}
	if got[0].ID != session.ID || got[0].Date != session.Date || got[0].DayName != session.DayName || got[0].Duration != session.Duration {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got[0], session)
	}
	if len(got[0].Exercises) != 1 || len(got[0].Exercises[0].Sets) != 2 {
		t.Fatal("exercises not preserved")
	}
	if got[0].Exercises[0].Sets[1].Weight != 102.5 {
		t.Errorf("Weight = %v, want 102.5", got[0].Exercises[0].Sets[1].Weight)
	}
}

func TestGlobalKeys(t *testing.T) {
	store := NewStore(NewMemKV())

	store.SaveGlobal(KeyLastLoggedInUser, "alice")
	user, ok := store.LoadGlobal(KeyLastLoggedInUser)
	if !ok || user != "alice" {
		t.Errorf("LoadGlobal = %q, %v, want alice, true", user, ok)
	}

	store.DeleteGlobal(KeyLastLoggedInUser)
	if _, ok := store.LoadGlobal(KeyLastLoggedInUser); ok {
		t.Error("expected key to be deleted")
	}
}

func TestExportImport(t *testing.T) {
	src := NewStore(NewMemKV())
	src.Save(KeyWorkoutHistory, "alice", []models.WorkoutSession{{ID: "1", DayName: "Day 1"}})
	src.Save(KeyDailySteps, "alice", models.DailySteps{Date: "2024-01-01", Steps: 8000})

	data := src.Export("alice")
	if data.User != "alice" {
		t.Errorf("User = %q, want alice", data.User)
	}
	if len(data.WorkoutHistory) != 1 {
		t.Fatalf("len(WorkoutHistory) = %d, want 1", len(data.WorkoutHistory))
	}
	if data.DailySteps == nil || data.DailySteps.Steps != 8000 {
		t.Error("expected steps in export")
	}
	if data.WorkoutPlan != nil {
		t.Error("expected no plan in export")
	}

	dst := NewStore(NewMemKV())
	dst.Import(data)

	var history []models.WorkoutSession
	if !dst.Load(KeyWorkoutHistory, "alice", &history) || len(history) != 1 {
		t.Fatal("expected imported history")
	}
}
