package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate is returned when a write would violate a uniqueness rule,
	// whether detected by a pre-check or by the database itself.
	ErrDuplicate = errors.New("duplicate resource")
)
