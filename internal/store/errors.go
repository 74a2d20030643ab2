package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrProfileNotFound is returned by Load when no profile has been
	// persisted yet.
	ErrProfileNotFound = errors.New("client profile not found")

	// ErrProfileCorrupted is returned when the persisted profile exists but
	// cannot be decoded.
	ErrProfileCorrupted = errors.New("client profile corrupted")
)
