package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSignVerify(t *testing.T) {
	priv, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	data := []byte("encTransKey||encPayload")
	sig, err := Sign(data, priv)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if err := Verify(data, sig, &priv.PublicKey); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
}

func TestVerify_RejectsModifiedData(t *testing.T) {
	priv, _ := GenerateKeyPair()

	sig, err := Sign([]byte("original"), priv)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if err := Verify([]byte("modified"), sig, &priv.PublicKey); !errors.Is(err, ErrCryptoVerification) {
		t.Fatalf("error = %v, want ErrCryptoVerification", err)
	}
}

func TestVerify_RejectsWrongKey(t *testing.T) {
	signer, _ := GenerateKeyPair()
	other, _ := GenerateKeyPair()

	sig, err := Sign([]byte("payload"), signer)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if err := Verify([]byte("payload"), sig, &other.PublicKey); !errors.Is(err, ErrCryptoVerification) {
		t.Fatalf("error = %v, want ErrCryptoVerification", err)
	}
}

func TestSignatureConversion_RoundTrip(t *testing.T) {
	priv, _ := GenerateKeyPair()

	der, err := Sign([]byte("convert me"), priv)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	raw, err := SignatureDERToP1363(der)
	if err != nil {
		t.Fatalf("SignatureDERToP1363 error: %v", err)
	}
	if len(raw) != 2*p1363ComponentLength {
		t.Fatalf("P1363 length = %d, want %d", len(raw), 2*p1363ComponentLength)
	}

	back, err := SignatureP1363ToDER(raw)
	if err != nil {
		t.Fatalf("SignatureP1363ToDER error: %v", err)
	}
	if !bytes.Equal(back, der) {
		t.Fatalf("DER round trip mismatch")
	}

	// the reconstructed DER must still verify
	if err := Verify([]byte("convert me"), back, &priv.PublicKey); err != nil {
		t.Fatalf("Verify after round trip: %v", err)
	}
}

func TestSignatureDERToP1363_Malformed(t *testing.T) {
	for _, der := range [][]byte{nil, {0x30}, {0x02, 0x01, 0x01}, bytes.Repeat([]byte{0xFF}, 70)} {
		if _, err := SignatureDERToP1363(der); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("input %x: error = %v, want ErrInvalidSignature", der, err)
		}
	}
}

func TestSignatureP1363ToDER_BadLength(t *testing.T) {
	if _, err := SignatureP1363ToDER(make([]byte, 63)); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("error = %v, want ErrInvalidSignature", err)
	}
}

// Short r/s must be left-padded in P1363 and minimally encoded in DER.
func TestSignatureP1363ToDER_ShortComponents(t *testing.T) {
	raw := make([]byte, 2*p1363ComponentLength)
	raw[p1363ComponentLength-1] = 0x05 // r = 5
	raw[2*p1363ComponentLength-1] = 0x07

	der, err := SignatureP1363ToDER(raw)
	if err != nil {
		t.Fatalf("SignatureP1363ToDER error: %v", err)
	}

	back, err := SignatureDERToP1363(der)
	if err != nil {
		t.Fatalf("SignatureDERToP1363 error: %v", err)
	}
	if !bytes.Equal(back, raw) {
		t.Fatalf("padding round trip mismatch: got %x", back)
	}
}
