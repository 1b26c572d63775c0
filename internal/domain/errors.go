package domain

import (
	"errors"
	"fmt"
)

// Validation failures, one per rule. A *ValidationError wraps exactly one of
// these.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrGrindSizeRange       = errors.New("grind size out of range")
	ErrTemperatureRange     = errors.New("temperature out of range")
	ErrNegativeAmount       = errors.New("amount must be non-negative")
	ErrUnknownRoastLevel    = errors.New("unknown roast level")
)

// ValidationError reports a user-correctable problem with form input.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// PersistenceError reports a storage fault from the persistence gateway.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
