package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidPageState = errors.New("invalid page state")
	ErrFetchFailure     = errors.New("fetch failed")
	ErrValidation       = errors.New("validation failed")
	ErrBusy             = errors.New("a load is already in progress")
	ErrNotFound         = errors.New("not found")
)

// ValidationError is a field level validation failure. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FetchError wraps the cause of a failed item fetch.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailure, e.Err}
}
