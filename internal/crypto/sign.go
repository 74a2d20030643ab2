// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// p1363ComponentLength is the byte width of each of r and s in the
// fixed-width signature encoding for P-256.
const p1363ComponentLength = 32

// Sign computes an ECDSA P-256 signature over SHA-256(data) and returns it
// ASN.1 DER encoded, which is what the transport's Authorization header
// carries.
func Sign(data []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	digest := sha256.Sum256(data)
	sig, err := ecdsa.SignASN1(rand.Reader, priv, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid DER-encoded ECDSA signature over
// SHA-256(data) by pub. Returns [ErrCryptoVerification] on mismatch so that
// callers treat it like any other fatal verification failure.
func Verify(data, sig []byte, pub *ecdsa.PublicKey) error {
	digest := sha256.Sum256(data)
	if !ecdsa.VerifyASN1(pub, digest[:], sig) {
		return ErrCryptoVerification
	}
	return nil
}

// SignatureDERToP1363 converts a DER-encoded ECDSA signature into the
// fixed-width P1363 form r(32) ‖ s(32). Platform crypto APIs that only accept
// raw signatures go through this.
func SignatureDERToP1363(der []byte) ([]byte, error) {
	var r, s big.Int
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return nil, fmt.Errorf("%w: malformed DER signature", ErrInvalidSignature)
	}

	if r.BitLen() > p1363ComponentLength*8 || s.BitLen() > p1363ComponentLength*8 {
		return nil, fmt.Errorf("%w: signature component too large for P-256", ErrInvalidSignature)
	}

	out := make([]byte, 2*p1363ComponentLength)
	r.FillBytes(out[:p1363ComponentLength])
	s.FillBytes(out[p1363ComponentLength:])
	return out, nil
}

// SignatureP1363ToDER converts a fixed-width r(32) ‖ s(32) signature into
// ASN.1 DER.
func SignatureP1363ToDER(raw []byte) ([]byte, error) {
	if len(raw) != 2*p1363ComponentLength {
		return nil, fmt.Errorf("%w: P1363 signature must be %d bytes, got %d", ErrInvalidSignature, 2*p1363ComponentLength, len(raw))
	}

	r := new(big.Int).SetBytes(raw[:p1363ComponentLength])
	s := new(big.Int).SetBytes(raw[p1363ComponentLength:])

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(child *cryptobyte.Builder) {
		child.AddASN1BigInt(r)
		child.AddASN1BigInt(s)
	})

	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: encode DER signature: %v", ErrInvalidSignature, err)
	}
	return der, nil
}
