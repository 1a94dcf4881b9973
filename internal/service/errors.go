package service

import "errors"

// ErrNotFound is returned when the addressed entity does not exist. A
// malformed id is treated the same way: the id space is opaque to callers.
var ErrNotFound = errors.New("not found")

// ValidationError covers missing/invalid required fields, duplicate emails
// and unresolvable required references. The reason is safe to show callers.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
