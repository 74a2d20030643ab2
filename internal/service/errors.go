package service

import "errors"

var (
	// ErrMissingToken is returned when no profile is bound yet and no
	// one-time token was configured to perform the first bind.
	ErrMissingToken = errors.New("one-time token required for first bind")

	// ErrInvalidToken is returned when the configured one-time token cannot
	// be decoded into 32 key bytes.
	ErrInvalidToken = errors.New("invalid one-time token")

	// ErrSecretNotFound is returned by UID/title lookups that match nothing.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrNoAppOwnerKey is returned by CreateSecret when the profile carries
	// no app owner public key to wrap the new record key under.
	ErrNoAppOwnerKey = errors.New("profile has no app owner public key")
)
