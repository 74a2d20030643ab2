// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
)

// DeriveSharedKey computes the symmetric key shared between priv and pub:
// SHA-256(ECDH(priv, pub) ‖ id). The optional id domain-separates keys that
// would otherwise be derived from the same pair; a nil id is legal and simply
// hashes the raw ECDH output. This is a single-round construction, not HKDF,
// and must stay that way for wire compatibility.
func DeriveSharedKey(priv *ecdsa.PrivateKey, pub *ecdsa.PublicKey, id []byte) ([]byte, error) {
	ecdhPriv, err := priv.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: convert private key: %v", ErrInvalidKey, err)
	}
	ecdhPub, err := pub.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: convert public key: %v", ErrInvalidKey, err)
	}

	shared, err := ecdhPriv.ECDH(ecdhPub)
	if err != nil {
		return nil, fmt.Errorf("%w: ecdh agreement: %v", ErrInvalidKey, err)
	}

	h := sha256.New()
	h.Write(shared)
	h.Write(id)
	return h.Sum(nil), nil
}

// PublicEncrypt seals plaintext for the holder of pub using hybrid
// encryption: a fresh ephemeral P-256 pair is generated, the AES key is
// derived via [DeriveSharedKey] against pub, and the plaintext is sealed with
// AES-256-GCM. Output layout: ephemeralPublicKey(65) ‖ nonce ‖ ciphertext ‖ tag.
func PublicEncrypt(plaintext []byte, pub *ecdsa.PublicKey, id []byte) ([]byte, error) {
	ephemeral, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	key, err := DeriveSharedKey(ephemeral, pub, id)
	if err != nil {
		return nil, err
	}

	blob, err := Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}

	return append(ExportPublicKeyRaw(&ephemeral.PublicKey), blob...), nil
}

// PrivateDecrypt opens a blob produced by [PublicEncrypt]: the first 65 bytes
// are the sender's ephemeral public key, the remainder an AES-GCM blob sealed
// under the derived shared key. Returns [ErrInvalidCiphertext] for a
// truncated blob and [ErrCryptoVerification] on tag mismatch.
func PrivateDecrypt(blob []byte, priv *ecdsa.PrivateKey, id []byte) ([]byte, error) {
	if len(blob) < PublicKeyLength+NonceLength+TagLength {
		return nil, fmt.Errorf("%w: blob shorter than ephemeral key, nonce and tag", ErrInvalidCiphertext)
	}

	ephemeral, err := ImportPublicKeyRaw(blob[:PublicKeyLength])
	if err != nil {
		return nil, err
	}

	key, err := DeriveSharedKey(priv, ephemeral, id)
	if err != nil {
		return nil, err
	}

	return Decrypt(blob[PublicKeyLength:], key)
}
