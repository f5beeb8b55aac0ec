// ABOUTME: Session store - single authoritative holder of per-user application state.
// ABOUTME: Owns login lifecycle, all persisted collections, and the active workout.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/harperreed/coach/internal/tracker"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotLoggedIn is returned by operations that require an active user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNoActiveWorkout is returned when finishing or cancelling without a
	// workout in progress.
	ErrNoActiveWorkout = errors.New("no workout in progress")

	// ErrNoPlan is returned when starting a workout without a plan.
	ErrNoPlan = errors.New("no workout plan set")
)

// Store holds everything the app knows for the logged-in user. It is the
// only component that touches persistence; state is grouped per domain.
type Store struct {
	store *storage.Store
	log   *logrus.Entry
	now   func() time.Time

	auth      authState
	plan      planState
	tracking  trackingState
	nutrition nutritionState
	cardio    cardioState
	libraries libraryState
}

type authState struct {
	currentUser string
}

type planState struct {
	workout   *models.WorkoutPlan
	nutrition *models.NutritionPlan
	profile   *models.Profile
}

type trackingState struct {
	history []models.WorkoutSession
	active  *tracker.ActiveWorkout
}

type nutritionState struct {
	foodLog models.DailyFoodLog
}

type cardioState struct {
	logs  []models.CardioLogEntry
	steps models.DailySteps
}

type libraryState struct {
	exerciseDB Resource[[]models.ExerciseCategory]
	cardioLib  Resource[[]models.CardioExercise]
	foodLib    Resource[[]models.FoodCategory]
}

// New creates a session store over the persistence adapter. No user is
// active until Login or Resume.
func New(store *storage.Store) *Store {
	return &Store{
		store: store,
		log:   logrus.WithField("component", "session"),
		now:   time.Now,
	}
}

// Login validates and sets the active identity, remembers it for pre-filling
// future prompts, and loads every persisted collection for that user.
func (s *Store) Login(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errors.New("username must not be empty")
	}

	s.auth.currentUser = userID
	s.store.SaveGlobal(storage.KeyCurrentUser, userID)
	s.store.SaveGlobal(storage.KeyLastLoggedInUser, userID)
	s.loadAll(userID)
	return nil
}

// Resume restores the session for the user recorded as currently logged in,
// if any. Used at the start of every CLI invocation.
func (s *Store) Resume() bool {
	userID, ok := s.store.LoadGlobal(storage.KeyCurrentUser)
	if !ok || userID == "" {
		return false
	}
	s.auth.currentUser = userID
	s.loadAll(userID)
	return true
}

// Logout clears the active identity and resets all in-memory collections.
// Persisted records remain; logging in again with the same id restores them.
func (s *Store) Logout() {
	s.store.DeleteGlobal(storage.KeyCurrentUser)
	s.auth = authState{}
	s.plan = planState{}
	s.tracking = trackingState{}
	s.nutrition = nutritionState{}
	s.cardio = cardioState{}
	s.libraries = libraryState{}
}

// CurrentUser returns the active identity, or "" when logged out.
func (s *Store) CurrentUser() string {
	return s.auth.currentUser
}

// LastLoggedInUser returns the remembered login hint, independent of the
// active session pointer.
func (s *Store) LastLoggedInUser() string {
	user, _ := s.store.LoadGlobal(storage.KeyLastLoggedInUser)
	return user
}

// loadAll reads every persisted collection for userID, applying the daily
// rollover policy to calendar-scoped records. Runs once per login.
func (s *Store) loadAll(userID string) {
	today := s.today()

	s.tracking.history = nil
	s.store.Load(storage.KeyWorkoutHistory, userID, &s.tracking.history)

	s.cardio.logs = nil
	s.store.Load(storage.KeyCardioLogs, userID, &s.cardio.logs)

	var steps models.DailySteps
	s.store.Load(storage.KeyDailySteps, userID, &steps)
	s.cardio.steps = rolloverSteps(steps, today)

	var foodLog models.DailyFoodLog
	if s.store.Load(storage.KeyDailyFoodLog, userID, &foodLog) && !IsStillValid(foodLog.Date, today) {
		s.store.Delete(storage.KeyDailyFoodLog, userID)
		foodLog = models.DailyFoodLog{}
	}
	s.nutrition.foodLog = rolloverFoodLog(foodLog, today)

	s.plan = planState{}
	var plan models.WorkoutPlan
	if s.store.Load(storage.KeyWorkoutPlan, userID, &plan) {
		s.plan.workout = &plan
	}
	var nutrition models.NutritionPlan
	if s.store.Load(storage.KeyNutritionPlan, userID, &nutrition) {
		s.plan.nutrition = &nutrition
	}
	var profile models.Profile
	if s.store.Load(storage.KeyProfile, userID, &profile) {
		s.plan.profile = &profile
	}
}

// History returns workout sessions, newest first.
func (s *Store) History() []models.WorkoutSession {
	return s.tracking.history
}

// RecordWorkoutSession prepends an immutable session record and persists the
// history.
func (s *Store) RecordWorkoutSession(session models.WorkoutSession) error {
	if s.auth.currentUser == "" {
		return ErrNotLoggedIn
	}
	s.tracking.history = append([]models.WorkoutSession{session}, s.tracking.history...)
	s.store.Save(storage.KeyWorkoutHistory, s.auth.currentUser, s.tracking.history)
	return nil
}

// CardioLogs returns cardio entries, newest first.
func (s *Store) CardioLogs() []models.CardioLogEntry {
	return s.cardio.logs
}

// RecordCardioLog assigns id and date at call time, prepends the entry, and
// persists the log.
func (s *Store) RecordCardioLog(entry models.CardioLogEntry) (models.CardioLogEntry, error) {
	if s.auth.currentUser == "" {
		return entry, ErrNotLoggedIn
	}
	if entry.DurationMinutes <= 0 {
		return entry, fmt.Errorf("duration must be positive, got %.1f", entry.DurationMinutes)
	}

	entry.ID = models.NewSessionID()
	entry.Date = s.today()
	s.cardio.logs = append([]models.CardioLogEntry{entry}, s.cardio.logs...)
	s.store.Save(storage.KeyCardioLogs, s.auth.currentUser, s.cardio.logs)
	return entry, nil
}

// DailySteps returns today's step count.
func (s *Store) DailySteps() int {
	return s.cardio.steps.Steps
}

// SetDailySteps replaces the counter. Negative values are rejected as a
// no-op with no persistence; returns whether the value was accepted.
func (s *Store) SetDailySteps(value int) bool {
	if value < 0 || s.auth.currentUser == "" {
		return false
	}
	s.cardio.steps = models.DailySteps{Date: s.today(), Steps: value}
	s.store.Save(storage.KeyDailySteps, s.auth.currentUser, s.cardio.steps)
	return true
}

// FoodLog returns today's food log.
func (s *Store) FoodLog() models.DailyFoodLog {
	return s.nutrition.foodLog
}

// AddFoodItems appends items to today's log and persists it. If the session
// has straddled midnight, the stale log rolls over first.
func (s *Store) AddFoodItems(items []models.AnalyzedFoodItem) error {
	if s.auth.currentUser == "" {
		return ErrNotLoggedIn
	}
	s.nutrition.foodLog = rolloverFoodLog(s.nutrition.foodLog, s.today())
	s.nutrition.foodLog.Log = append(s.nutrition.foodLog.Log, items...)
	s.store.Save(storage.KeyDailyFoodLog, s.auth.currentUser, s.nutrition.foodLog)
	return nil
}

// Plan returns the active workout plan, or nil.
func (s *Store) Plan() *models.WorkoutPlan {
	return s.plan.workout
}

// SetPlan replaces the plan wholesale and discards any nutrition plan built
// against the old one.
func (s *Store) SetPlan(plan *models.WorkoutPlan) error {
	if s.auth.currentUser == "" {
		return ErrNotLoggedIn
	}
	s.plan.workout = plan
	s.plan.nutrition = nil
	s.store.Save(storage.KeyWorkoutPlan, s.auth.currentUser, plan)
	s.store.Delete(storage.KeyNutritionPlan, s.auth.currentUser)
	return nil
}

// NutritionPlan returns the active nutrition plan, or nil.
func (s *Store) NutritionPlan() *models.NutritionPlan {
	return s.plan.nutrition
}

// SetNutritionPlan stores and persists a generated nutrition plan.
func (s *Store) SetNutritionPlan(plan *models.NutritionPlan) error {
	if s.auth.currentUser == "" {
		return ErrNotLoggedIn
	}
	s.plan.nutrition = plan
	s.store.Save(storage.KeyNutritionPlan, s.auth.currentUser, plan)
	return nil
}

// Profile returns the onboarding profile, or nil.
func (s *Store) Profile() *models.Profile {
	return s.plan.profile
}

// SetProfile stores and persists the onboarding profile.
func (s *Store) SetProfile(profile *models.Profile) error {
	if s.auth.currentUser == "" {
		return ErrNotLoggedIn
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	s.plan.profile = profile
	s.store.Save(storage.KeyProfile, s.auth.currentUser, profile)
	return nil
}

// StartWorkout begins tracking the named plan day, seeding the set grid from
// previous performance. The tracking state lives only in this process.
func (s *Store) StartWorkout(dayLabel string) (*tracker.ActiveWorkout, error) {
	if s.auth.currentUser == "" {
		return nil, ErrNotLoggedIn
	}
	if s.plan.workout == nil {
		return nil, ErrNoPlan
	}
	day := s.plan.workout.FindDay(dayLabel)
	if day == nil {
		return nil, fmt.Errorf("no day %q in plan %q", dayLabel, s.plan.workout.PlanName)
	}

	s.tracking.active = tracker.Start(*day, s.tracking.history)
	return s.tracking.active, nil
}

// ActiveWorkout returns the in-progress workout, or nil.
func (s *Store) ActiveWorkout() *tracker.ActiveWorkout {
	return s.tracking.active
}

// FinishWorkout finalizes the active workout into an immutable session,
// records it, and discards the tracking state.
func (s *Store) FinishWorkout(elapsedSeconds int) (models.WorkoutSession, error) {
	if s.tracking.active == nil {
		return models.WorkoutSession{}, ErrNoActiveWorkout
	}
	session := s.tracking.active.Finish(elapsedSeconds)
	s.tracking.active = nil
	if err := s.RecordWorkoutSession(session); err != nil {
		return models.WorkoutSession{}, err
	}
	return session, nil
}

// CancelWorkout discards the active workout without recording anything.
func (s *Store) CancelWorkout() error {
	if s.tracking.active == nil {
		return ErrNoActiveWorkout
	}
	s.tracking.active = nil
	return nil
}

// ExerciseDB is the lazily fetched exercise database resource.
func (s *Store) ExerciseDB() *Resource[[]models.ExerciseCategory] {
	return &s.libraries.exerciseDB
}

// CardioLibrary is the lazily fetched cardio library resource.
func (s *Store) CardioLibrary() *Resource[[]models.CardioExercise] {
	return &s.libraries.cardioLib
}

// FoodLibrary is the lazily fetched food library resource.
func (s *Store) FoodLibrary() *Resource[[]models.FoodCategory] {
	return &s.libraries.foodLib
}

// MergeFoodSearchResults folds search hits into the loaded food library,
// creating categories as needed and skipping items already present in their
// category by name.
func (s *Store) MergeFoodSearchResults(results []models.FoodSearchResult) {
	s.libraries.foodLib.Update(func(library []models.FoodCategory) []models.FoodCategory {
		for _, result := range results {
			idx := -1
			for i := range library {
				if library[i].CategoryName == result.CategoryName {
					idx = i
					break
				}
			}
			if idx < 0 {
				library = append(library, models.FoodCategory{
					CategoryName: result.CategoryName,
					Items:        []models.FoodItem{result.Item},
				})
				continue
			}
			exists := false
			for _, item := range library[idx].Items {
				if item.Name == result.Item.Name {
					exists = true
					break
				}
			}
			if !exists {
				library[idx].Items = append(library[idx].Items, result.Item)
			}
		}
		return library
	})
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}
