// ABOUTME: Persistence adapter over a pluggable key-value backend.
// ABOUTME: Namespaces records by user, fails open on reads, best-effort on writes.
package storage

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by KV backends when a key is absent.
var ErrNotFound = errors.New("key not found")

// Logical record keys. Per-user records are namespaced as "<key>:<user>";
// the user keys below are process-wide and stored unscoped.
const (
	KeyWorkoutHistory = "workoutHistory"
	KeyCardioLogs     = "cardioLogs"
	KeyDailySteps     = "dailySteps"
	KeyDailyFoodLog   = "dailyFoodLog"
	KeyWorkoutPlan    = "workoutPlan"
	KeyNutritionPlan  = "nutritionPlan"
	KeyProfile        = "userProfile"

	KeyCurrentUser      = "currentUser"
	KeyLastLoggedInUser = "lastLoggedInUser"
)

// KV is the raw key-value backend contract. Implementations: Charm Cloud KV
// (synced), plain local Badger, and an in-memory store for tests.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Store is the persistence adapter. All reads treat missing and corrupt
// records identically (absent), and all writes are best-effort: failures are
// logged and swallowed so in-memory state stays authoritative.
type Store struct {
	kv  KV
	log *logrus.Entry
}

// NewStore wraps a KV backend in the persistence adapter.
func NewStore(kv KV) *Store {
	return &Store{
		kv:  kv,
		log: logrus.WithField("component", "storage"),
	}
}

// UserKey builds the namespaced storage key for a per-user record.
func UserKey(key, userID string) string {
	return key + ":" + userID
}

// Load reads a per-user record into v. Returns false when the record is
// absent or cannot be deserialized; callers fall back to empty state.
func (s *Store) Load(key, userID string, v any) bool {
	data, err := s.kv.Get(UserKey(key, userID))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WithError(err).WithField("key", key).Warn("load failed, treating as absent")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("corrupt record, treating as absent")
		return false
	}
	return true
}

// Save writes a per-user record. Serialization or write failures are logged
// and swallowed; the caller is never blocked by a persistence failure.
func (s *Store) Save(key, userID string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("marshal failed, record not persisted")
		return
	}
	if err := s.kv.Set(UserKey(key, userID), data); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("write failed, record not persisted")
	}
}

// Delete removes a per-user record. Best-effort like Save.
func (s *Store) Delete(key, userID string) {
	if err := s.kv.Delete(UserKey(key, userID)); err != nil && !errors.Is(err, ErrNotFound) {
		s.log.WithError(err).WithField("key", key).Warn("delete failed")
	}
}

// LoadGlobal reads a process-wide string value (e.g. the active user).
func (s *Store) LoadGlobal(key string) (string, bool) {
	data, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WithError(err).WithField("key", key).Warn("load failed, treating as absent")
		}
		return "", false
	}
	return string(data), true
}

// SaveGlobal writes a process-wide string value. Best-effort.
func (s *Store) SaveGlobal(key, value string) {
	if err := s.kv.Set(key, []byte(value)); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("write failed, value not persisted")
	}
}

// DeleteGlobal removes a process-wide value. Best-effort.
func (s *Store) DeleteGlobal(key string) {
	if err := s.kv.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
		s.log.WithError(err).WithField("key", key).Warn("delete failed")
	}
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}
