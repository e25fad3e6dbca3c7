// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation
	// (username taken, duplicate world name).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrWeakPassword indicates the password failed the complexity policy.
	ErrWeakPassword = errors.New("weak password")

	// ErrQuotaExceeded indicates the caller hit the per-user world limit.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrInvalidInput indicates malformed or out-of-range input.
	ErrInvalidInput = errors.New("invalid input")
)
