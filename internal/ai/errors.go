// ABOUTME: Error taxonomy for the generative service boundary.
// ABOUTME: All failures surface as retry-able GenerationError values.
package ai

import "fmt"

// GenerationError wraps any failure at the AI boundary: transport errors,
// malformed responses, or responses missing required fields. Callers surface
// it as a retry-able message and reset their triggering state; no partial
// result is ever accepted.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func genErr(op string, err error) *GenerationError {
	return &GenerationError{Op: op, Err: err}
}

func genErrf(op, format string, args ...any) *GenerationError {
	return &GenerationError{Op: op, Err: fmt.Errorf(format, args...)}
}
