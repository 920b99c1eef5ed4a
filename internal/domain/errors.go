package domain

import "errors"

// Error kinds shared by every operation. Use case sentinels wrap exactly one
// of them, so the request layer can map any error with errors.Is.
var (
	// ErrValidation malformed or out-of-policy input
	ErrValidation = errors.New("validation error")

	// ErrNotFound the calendar owner has no availability window
	ErrNotFound = errors.New("not found")

	// ErrConflict the slot was already booked by a prior or concurrent request
	ErrConflict = errors.New("conflict")
)
