package problems

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("problem not found")

	// ErrIDSpaceExhausted is returned by AddProblem when a stored id already
	// sits at the largest int64, so no larger id can be assigned.
	ErrIDSpaceExhausted = errors.New("problem id space exhausted")
)

// ValidationError reports invalid input to a store operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports an operation on an unknown problem id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("problem %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// errMalformed wraps anything that makes a persisted collection unusable.
type errMalformed struct {
	Err error
}

func (e *errMalformed) Error() string {
	return fmt.Sprintf("malformed problem collection: %v", e.Err)
}

func (e *errMalformed) Unwrap() error { return e.Err }
