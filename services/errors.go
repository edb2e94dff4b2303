// Package services implements the booking domain workflows on top of the
// persistence gateways. Domain failures are reported as sentinel errors so
// controllers can translate them into HTTP statuses with errors.Is.
package services

import "errors"

var (
	// ErrValidation covers malformed or out-of-range input. Maps to 400.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail signals a uniqueness violation on create. Maps to 409.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrEmailTaken signals that an update would steal another record's
	// email. Maps to 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials covers a failed login. Maps to 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
