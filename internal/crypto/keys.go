// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"fmt"
	"math/big"
)

// Key sizes fixed by the wire protocol. All peers must agree bit-for-bit.
const (
	// PrivateKeyLength is the raw P-256 scalar length in bytes.
	PrivateKeyLength = 32

	// PublicKeyLength is the uncompressed P-256 point length in bytes
	// (0x04 prefix + X + Y).
	PublicKeyLength = 65

	// SymmetricKeyLength is the AES-256 key length in bytes.
	SymmetricKeyLength = 32
)

// GenerateKeyPair creates a fresh P-256 key pair using the OS CSPRNG.
func GenerateKeyPair() (*ecdsa.PrivateKey, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}
	return priv, nil
}

// ExportPrivateKeyRaw returns the private scalar as exactly 32 bytes,
// left-padded with zeros when the scalar is short.
func ExportPrivateKeyRaw(priv *ecdsa.PrivateKey) []byte {
	out := make([]byte, PrivateKeyLength)
	priv.D.FillBytes(out)
	return out
}

// ImportPrivateKeyRaw rebuilds a P-256 private key from a raw 32-byte scalar.
// The public point is recomputed from the scalar. Returns [ErrInvalidKey] if
// the scalar is out of range for the curve.
func ImportPrivateKeyRaw(raw []byte) (*ecdsa.PrivateKey, error) {
	if len(raw) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidKey, PrivateKeyLength, len(raw))
	}

	curve := elliptic.P256()
	d := new(big.Int).SetBytes(raw)
	if d.Sign() <= 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: private scalar out of range", ErrInvalidKey)
	}

	priv := &ecdsa.PrivateKey{D: d}
	priv.PublicKey.Curve = curve
	priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(raw)
	return priv, nil
}

// ExportPrivateKeyDER encodes the private key as PKCS8 DER. Some storage
// backends retain only this form, so signing and ECDH paths must go through
// [ImportPrivateKeyDER] to recover the scalar.
func ExportPrivateKeyDER(priv *ecdsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal pkcs8: %w", err)
	}
	return der, nil
}

// ImportPrivateKeyDER decodes a PKCS8 DER private key and verifies it is a
// P-256 EC key.
func ImportPrivateKeyDER(der []byte) (*ecdsa.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse pkcs8: %v", ErrInvalidKey, err)
	}
	priv, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an EC private key", ErrInvalidKey)
	}
	if priv.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: unexpected curve %s", ErrInvalidKey, priv.Curve.Params().Name)
	}
	return priv, nil
}

// ExportPublicKeyRaw returns the public key as a 65-byte uncompressed point.
func ExportPublicKeyRaw(pub *ecdsa.PublicKey) []byte {
	out := make([]byte, PublicKeyLength)
	out[0] = 4
	pub.X.FillBytes(out[1:33])
	pub.Y.FillBytes(out[33:])
	return out
}

// ImportPublicKeyRaw rebuilds a P-256 public key from a 65-byte uncompressed
// point. Returns [ErrInvalidKey] if the point is malformed or off the curve.
func ImportPublicKeyRaw(raw []byte) (*ecdsa.PublicKey, error) {
	if len(raw) != PublicKeyLength || raw[0] != 4 {
		return nil, fmt.Errorf("%w: public key must be a %d-byte uncompressed point", ErrInvalidKey, PublicKeyLength)
	}

	curve := elliptic.P256()
	x := new(big.Int).SetBytes(raw[1:33])
	y := new(big.Int).SetBytes(raw[33:])
	if !curve.IsOnCurve(x, y) {
		return nil, fmt.Errorf("%w: point is not on P-256", ErrInvalidKey)
	}

	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}

// GenerateSymmetricKey creates a fresh random AES-256 key.
func GenerateSymmetricKey() ([]byte, error) {
	key := make([]byte, SymmetricKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate symmetric key: %w", err)
	}
	return key, nil
}
