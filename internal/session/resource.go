// ABOUTME: Four-state holder for externally fetched resources with stale-response guards.
// ABOUTME: Replaces paired loading/data booleans; responses carry a request token.
package session

import "github.com/google/uuid"

// Status is the lifecycle state of an externally fetched resource.
type Status int

const (
	NotLoaded Status = iota
	Loading
	Loaded
	Failed
)

// Resource holds one externally fetched value (exercise database, cardio
// library, food library). Each fetch gets a token from Begin; a response is
// applied only if its token still matches, so a late response from an
// abandoned fetch never clobbers current state.
type Resource[T any] struct {
	status Status
	data   T
	err    error
	token  uuid.UUID
}

// Status returns the current lifecycle state.
func (r *Resource[T]) Status() Status {
	return r.status
}

// Begin marks the resource loading and returns the token the eventual
// response must present.
func (r *Resource[T]) Begin() uuid.UUID {
	r.token = uuid.New()
	r.status = Loading
	r.err = nil
	return r.token
}

// Complete stores data if token is still current. Returns whether the
// response was applied.
func (r *Resource[T]) Complete(token uuid.UUID, data T) bool {
	if token != r.token {
		return false
	}
	r.data = data
	r.status = Loaded
	r.err = nil
	return true
}

// Fail records a fetch failure if token is still current.
func (r *Resource[T]) Fail(token uuid.UUID, err error) bool {
	if token != r.token {
		return false
	}
	r.err = err
	r.status = Failed
	return true
}

// Get returns the data and whether it is loaded.
func (r *Resource[T]) Get() (T, bool) {
	return r.data, r.status == Loaded
}

// Err returns the failure from the last fetch, if any.
func (r *Resource[T]) Err() error {
	return r.err
}

// Update mutates loaded data in place (e.g. merging search results).
// No-op unless the resource is loaded.
func (r *Resource[T]) Update(fn func(T) T) {
	if r.status != Loaded {
		return
	}
	r.data = fn(r.data)
}

// Reset returns the resource to NotLoaded and invalidates any in-flight token.
func (r *Resource[T]) Reset() {
	var zero T
	r.data = zero
	r.err = nil
	r.status = NotLoaded
	r.token = uuid.New()
}
