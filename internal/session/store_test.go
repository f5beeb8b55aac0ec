// ABOUTME: Tests for the session store lifecycle and collection mutations.
// ABOUTME: Uses the in-memory KV backend and a fixed clock.
package session

import (
	"testing"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.Store) {
	t.Helper()
	adapter := storage.NewStore(storage.NewMemKV())
	s := New(adapter)
	s.now = func() time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return s, adapter
}

func TestLoginRequiresUsername(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Error(t, s.Login(""))
	assert.Error(t, s.Login("   "))
	assert.NoError(t, s.Login("alice"))
	assert.Equal(t, "alice", s.CurrentUser())
}

func TestLoginRemembersLastUser(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Login("alice"))
	s.Logout()

	assert.Equal(t, "", s.CurrentUser())
	assert.Equal(t, "alice", s.LastLoggedInUser(), "login hint survives logout")
}

func TestLogoutResetsStateButKeepsRecords(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))
	require.NoError(t, s.RecordWorkoutSession(models.WorkoutSession{ID: "1", DayName: "Day 1"}))
	require.True(t, s.SetDailySteps(4000))

	s.Logout()
	assert.Empty(t, s.History())
	assert.Zero(t, s.DailySteps())

	require.NoError(t, s.Login("alice"))
	assert.Len(t, s.History(), 1, "records restored on re-login")
	assert.Equal(t, 4000, s.DailySteps())
}

func TestResumeRestoresCurrentUser(t *testing.T) {
	s, adapter := newTestStore(t)
	require.NoError(t, s.Login("alice"))

	// A fresh process over the same backend.
	s2 := New(adapter)
	s2.now = s.now
	require.True(t, s2.Resume())
	assert.Equal(t, "alice", s2.CurrentUser())

	s2.Logout()
	s3 := New(adapter)
	assert.False(t, s3.Resume())
}

func TestUsersDoNotSeeEachOthersRecords(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))
	require.True(t, s.SetDailySteps(500))

	require.NoError(t, s.Login("bob"))
	assert.Zero(t, s.DailySteps())
}

func TestRecordWorkoutSessionPrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))

	require.NoError(t, s.RecordWorkoutSession(models.WorkoutSession{ID: "older"}))
	require.NoError(t, s.RecordWorkoutSession(models.WorkoutSession{ID: "newer"}))

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, "newer", history[0].ID)
	assert.Equal(t, "older", history[1].ID)
}

func TestRecordCardioLogAssignsIDAndDate(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))

	entry, err := s.RecordCardioLog(models.CardioLogEntry{
		ExerciseName:    "Treadmill Running",
		DurationMinutes: 30,
		DistanceKm:      5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "2024-01-01", entry.Date)

	_, err = s.RecordCardioLog(models.CardioLogEntry{ExerciseName: "Rowing"})
	assert.Error(t, err, "zero duration rejected")
}

func TestSetDailyStepsRejectsNegative(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))
	require.True(t, s.SetDailySteps(8000))

	assert.False(t, s.SetDailySteps(-1))
	assert.Equal(t, 8000, s.DailySteps(), "rejected value must not replace the counter")
}

func TestAddFoodItemsAppends(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))

	require.NoError(t, s.AddFoodItems([]models.AnalyzedFoodItem{{Name: "Grilled Chicken", Calories: 220}}))
	require.NoError(t, s.AddFoodItems([]models.AnalyzedFoodItem{{Name: "Grilled Chicken", Calories: 220}}))

	log := s.FoodLog()
	assert.Len(t, log.Log, 2, "duplicate names are legal, each addition is a new entry")
	assert.Equal(t, "2024-01-01", log.Date)

	calories, macros := log.Totals()
	assert.Equal(t, 440.0, calories)
	assert.Zero(t, macros.Protein)
}

func TestStaleFoodLogDiscardedOnLoad(t *testing.T) {
	s, adapter := newTestStore(t)
	adapter.Save(storage.KeyDailyFoodLog, "alice", models.DailyFoodLog{
		Date: "2023-12-31",
		Log:  []models.AnalyzedFoodItem{{Name: "Leftovers"}},
	})

	require.NoError(t, s.Login("alice"))

	log := s.FoodLog()
	assert.Equal(t, "2024-01-01", log.Date)
	assert.Empty(t, log.Log)

	var persisted models.DailyFoodLog
	assert.False(t, adapter.Load(storage.KeyDailyFoodLog, "alice", &persisted),
		"stale persisted record is removed, not archived")
}

func TestStaleStepsDiscardedOnLoad(t *testing.T) {
	s, adapter := newTestStore(t)
	adapter.Save(storage.KeyDailySteps, "alice", models.DailySteps{Date: "2023-12-31", Steps: 12000})

	require.NoError(t, s.Login("alice"))

	assert.Zero(t, s.DailySteps())
}

func TestSetPlanReplacesWholesaleAndClearsNutrition(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))

	require.NoError(t, s.SetPlan(&models.WorkoutPlan{PlanName: "Push Pull Legs"}))
	require.NoError(t, s.SetNutritionPlan(&models.NutritionPlan{PlanTitle: "Bulk"}))
	require.NoError(t, s.SetPlan(&models.WorkoutPlan{PlanName: "Upper Lower"}))

	assert.Equal(t, "Upper Lower", s.Plan().PlanName)
	assert.Nil(t, s.NutritionPlan(), "nutrition plan is tied to the plan it was built for")

	require.NoError(t, s.Login("alice"))
	assert.Equal(t, "Upper Lower", s.Plan().PlanName, "plan survives re-login")
	assert.Nil(t, s.NutritionPlan())
}

func TestSetProfileValidates(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))

	err := s.SetProfile(&models.Profile{Age: 7, Weight: 80, Height: 180, DaysPerWeek: 4})
	assert.Error(t, err)
	assert.Nil(t, s.Profile())

	err = s.SetProfile(&models.Profile{Age: 30, Weight: 80, Height: 180, DaysPerWeek: 4})
	assert.NoError(t, err)
	require.NotNil(t, s.Profile())
}

func TestWorkoutLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))
	require.NoError(t, s.SetPlan(&models.WorkoutPlan{
		PlanName: "PPL",
		WeeklySplit: []models.WorkoutDay{{
			Day:       "Day 1",
			Exercises: []models.Exercise{{Name: "Bench Press", Sets: "3"}},
		}},
	}))

	_, err := s.StartWorkout("Day 9")
	assert.Error(t, err)

	w, err := s.StartWorkout("Day 1")
	require.NoError(t, err)
	require.NotNil(t, s.ActiveWorkout())

	w.SetWeight("Bench Press", 0, "60")
	w.SetReps("Bench Press", 0, "10")
	w.ToggleSetCompletion("Bench Press", 0)

	session, err := s.FinishWorkout(600)
	require.NoError(t, err)
	assert.Equal(t, 600, session.Duration)
	assert.Nil(t, s.ActiveWorkout(), "tracking state discarded after finish")
	require.Len(t, s.History(), 1)

	_, err = s.FinishWorkout(0)
	assert.ErrorIs(t, err, ErrNoActiveWorkout)
}

func TestCancelWorkoutRecordsNothing(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))
	require.NoError(t, s.SetPlan(&models.WorkoutPlan{
		WeeklySplit: []models.WorkoutDay{{Day: "Day 1", Exercises: []models.Exercise{{Name: "Squat", Sets: "3"}}}},
	}))

	_, err := s.StartWorkout("Day 1")
	require.NoError(t, err)
	require.NoError(t, s.CancelWorkout())

	assert.Empty(t, s.History())
	assert.ErrorIs(t, s.CancelWorkout(), ErrNoActiveWorkout)
}

func TestMutationsRequireLogin(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.RecordWorkoutSession(models.WorkoutSession{}), ErrNotLoggedIn)
	_, err := s.RecordCardioLog(models.CardioLogEntry{DurationMinutes: 10})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.False(t, s.SetDailySteps(100))
	assert.ErrorIs(t, s.AddFoodItems(nil), ErrNotLoggedIn)
	_, err = s.StartWorkout("Day 1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestMergeFoodSearchResults(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Login("alice"))

	lib := s.FoodLibrary()
	token := lib.Begin()
	require.True(t, lib.Complete(token, []models.FoodCategory{
		{CategoryName: "Proteins", Items: []models.FoodItem{{Name: "Grilled Chicken"}}},
	}))

	s.MergeFoodSearchResults([]models.FoodSearchResult{
		{CategoryName: "Proteins", Item: models.FoodItem{Name: "Grilled Chicken"}}, // duplicate
		{CategoryName: "Proteins", Item: models.FoodItem{Name: "Beef Kofta"}},
		{CategoryName: "Legumes", Item: models.FoodItem{Name: "Koshari"}},
	})

	library, ok := lib.Get()
	require.True(t, ok)
	require.Len(t, library, 2)
	assert.Len(t, library[0].Items, 2, "duplicate item names within a category are skipped")
	assert.Equal(t, "Legumes", library[1].CategoryName)
}
