package dao

import "errors"

// Errors returned by repositories. Drivers wrap their own errors with these so
// callers need not know which store is in use.
var (
	// ErrConstraintViolation is returned when a write would break a unique
	// constraint, such as two accounts with one name.
	ErrConstraintViolation = errors.New("store constraint violated")

	// ErrNotFound is returned when no record has the requested key.
	ErrNotFound = errors.New("no such record in store")
)
