// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// AES-GCM wire constants. The blob layout is nonce(12) || ciphertext || tag(16)
// as a single concatenated byte string; the tag is produced and checked by the
// GCM API, never split off manually.
const (
	// NonceLength is the AES-GCM nonce length in bytes.
	NonceLength = 12

	// TagLength is the AES-GCM authentication tag length in bytes.
	TagLength = 16
)

// Encrypt seals plaintext with AES-256-GCM under key. A random 12-byte nonce
// is prepended to the ciphertext so that [Decrypt] can locate it:
// blob = nonce ‖ ciphertext ‖ tag.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by [Encrypt]. Returns [ErrInvalidCiphertext]
// if the blob is shorter than nonce+tag, or [ErrCryptoVerification] if the
// authentication tag does not match (wrong key or tampered ciphertext).
func Decrypt(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(blob) < NonceLength+TagLength {
		return nil, fmt.Errorf("%w: blob shorter than nonce and tag", ErrInvalidCiphertext)
	}

	nonce, ciphertext := blob[:NonceLength], blob[NonceLength:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Do not wrap the cipher error: its text is useless and the failure
		// mode must stay indistinguishable to callers.
		return nil, ErrCryptoVerification
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != SymmetricKeyLength {
		return nil, fmt.Errorf("%w: symmetric key must be %d bytes, got %d", ErrInvalidKey, SymmetricKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
