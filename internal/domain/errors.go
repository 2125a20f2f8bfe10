package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when an entity id does not resolve to a record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a create or update request is missing
	// required fields or carries values outside the allowed set.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when an operation is not valid for the current
	// lifecycle state of the record, e.g. checking out a visitor that never
	// checked in.
	ErrConflict = errors.New("conflict")
)
