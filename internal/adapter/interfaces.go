// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the outbound transport to the secrets vault.
//
// The primary abstraction is [VaultTransport], which decouples the service
// layer from the signed-envelope protocol. The package ships an HTTP
// implementation ([NewHTTPVaultTransport]) built on resty.
//
// Every call is one signed round trip: a fresh 32-byte transmission key is
// hybrid-encrypted under a server public key, the JSON payload is sealed
// under the transmission key, and the concatenation of both ciphertexts is
// ECDSA-signed with the client's private key. The response body is sealed
// under the same transmission key.
package adapter

import (
	"context"
	"crypto/ecdsa"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_transport_mock.go -package=mock

// VaultTransport performs signed round trips against the vault API.
// Implementations are responsible for envelope encryption, the signature
// header, response decryption, and mapping transport-level errors to
// [ErrTransportFailure].
type VaultTransport interface {
	// Post sends payload (plaintext JSON) to the named endpoint (e.g.
	// "get_secrets") signed with priv, and returns the decrypted response
	// body. A cryptographic verification failure on the response is fatal
	// and reported as crypto.ErrCryptoVerification, never retried.
	Post(ctx context.Context, endpoint string, payload []byte, priv *ecdsa.PrivateKey) ([]byte, error)

	// Download fetches an encrypted attachment body from a pre-signed URL.
	// The caller decrypts it under the file key.
	Download(ctx context.Context, url string) ([]byte, error)
}
