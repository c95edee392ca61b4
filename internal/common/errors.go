// Package common defines shared sentinel errors used across HomeCal
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors surfaced at the store boundary instead of being
	// silently accepted.
	ErrorValidation      = errors.New("validation error")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidTimeRange  = errors.New("event ends before it starts")
	ErrInvalidColor      = errors.New("malformed colour value")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Storage errors.
	ErrSwapConflict = errors.New("stored value changed since read")
)
