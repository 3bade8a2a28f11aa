// Package usecase implements the business logic for the profile feature.
package usecase

import "errors"

var (
	// ErrNotFound is returned when a primary-key lookup matches zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned when input is malformed before any write begins.
	ErrValidation = errors.New("validation failed")

	// ErrConstraintViolation is returned when the store rejects a write
	// (foreign key, not-null or unique constraint).
	ErrConstraintViolation = errors.New("constraint violation")
)
