package adapter

import "errors"

// Sentinel errors mapped from transport-level failures. Callers should use
// [errors.Is] for transport-agnostic error handling.
var (
	// ErrTransportFailure is returned for any non-2xx response or network
	// error. The wrapped message carries the decrypted server message when
	// the body could be decrypted, the raw body otherwise. Not retried
	// internally except during the documented one-time rebind flow, which
	// the service layer drives.
	ErrTransportFailure = errors.New("vault transport failure")

	// ErrUnknownKeyID is returned when the configured publicKeyId has no
	// entry in the injected server key table.
	ErrUnknownKeyID = errors.New("unknown server public key id")
)
