package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks parameters the engine refuses to simulate.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRange marks a requested window outside the available history.
	ErrInvalidRange = errors.New("invalid range")
)

// InputError describes a rejected parameter. It matches ErrInvalidInput with errors.Is.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// NewInputError builds an InputError with a formatted reason.
func NewInputError(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// RangeError reports a period length that the series cannot supply.
type RangeError struct {
	Requested int
	Available int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: requested %d years, %d available", ErrInvalidRange, e.Requested, e.Available)
}

func (e *RangeError) Is(target error) bool { return target == ErrInvalidRange }
