package crypto

import "errors"

// Sentinel errors returned by the transport crypto primitives. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrCryptoVerification is returned when an AES-GCM authentication tag
	// or an ECDSA signature fails to verify. The condition is fatal and must
	// never be retried; the error text intentionally carries no plaintext or
	// key material.
	ErrCryptoVerification = errors.New("cryptographic verification failed")

	// ErrInvalidKey is returned when key material has the wrong length or
	// does not describe a valid point/scalar on P-256.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrInvalidCiphertext is returned when an encrypted blob is too short
	// to contain the expected nonce, tag, or ephemeral public key.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrInvalidSignature is returned when a signature blob cannot be parsed
	// in the expected encoding (DER or fixed-width P1363).
	ErrInvalidSignature = errors.New("invalid signature encoding")
)
