package entity

import "errors"

// Sentinel errors shared by every storage backend and the account operations.
// Both backend variants must return the same sentinels so callers stay
// backend-agnostic.
var (
	// ErrDuplicateKey is returned by a store when a record with the same
	// identifier already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDuplicateAccount is returned by registration when the email is taken.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a password-reset or session token is
	// unknown, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUnauthenticated is returned when an operation needs a principal and
	// none is attached to the request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized is returned when the attached principal lacks the role
	// an operation requires.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBackendUnavailable is returned when an operation depends on an entity
	// the active persistence backend does not provide (users and chat exist
	// only under MONGO). This is a configuration problem, not a runtime fault.
	ErrBackendUnavailable = errors.New("entity not supported by active backend")
)
