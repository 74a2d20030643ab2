package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestPrivateKeyRaw_RoundTrip(t *testing.T) {
	priv, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	raw := ExportPrivateKeyRaw(priv)
	if len(raw) != PrivateKeyLength {
		t.Fatalf("raw length = %d, want %d", len(raw), PrivateKeyLength)
	}

	back, err := ImportPrivateKeyRaw(raw)
	if err != nil {
		t.Fatalf("ImportPrivateKeyRaw error: %v", err)
	}
	if back.D.Cmp(priv.D) != 0 {
		t.Fatalf("scalar mismatch after round trip")
	}
	if back.X.Cmp(priv.X) != 0 || back.Y.Cmp(priv.Y) != 0 {
		t.Fatalf("recomputed public point does not match original")
	}
}

func TestImportPrivateKeyRaw_Invalid(t *testing.T) {
	// wrong length
	if _, err := ImportPrivateKeyRaw(make([]byte, 31)); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("short input: error = %v, want ErrInvalidKey", err)
	}
	// zero scalar
	if _, err := ImportPrivateKeyRaw(make([]byte, PrivateKeyLength)); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("zero scalar: error = %v, want ErrInvalidKey", err)
	}
	// scalar >= curve order
	if _, err := ImportPrivateKeyRaw(bytes.Repeat([]byte{0xFF}, PrivateKeyLength)); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("oversized scalar: error = %v, want ErrInvalidKey", err)
	}
}

func TestPrivateKeyDER_RoundTrip(t *testing.T) {
	priv, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	der, err := ExportPrivateKeyDER(priv)
	if err != nil {
		t.Fatalf("ExportPrivateKeyDER error: %v", err)
	}

	back, err := ImportPrivateKeyDER(der)
	if err != nil {
		t.Fatalf("ImportPrivateKeyDER error: %v", err)
	}
	if back.D.Cmp(priv.D) != 0 {
		t.Fatalf("scalar mismatch after DER round trip")
	}
}

func TestImportPrivateKeyDER_Garbage(t *testing.T) {
	if _, err := ImportPrivateKeyDER([]byte("not der")); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("error = %v, want ErrInvalidKey", err)
	}
}

// Raw and DER forms of the same key must stay interchangeable: a key exported
// raw, reimported, and exported as PKCS8 has to decrypt what the original
// receives.
func TestKeyNormalization_RawAndDERInteroperate(t *testing.T) {
	priv, _ := GenerateKeyPair()

	viaRaw, err := ImportPrivateKeyRaw(ExportPrivateKeyRaw(priv))
	if err != nil {
		t.Fatalf("ImportPrivateKeyRaw error: %v", err)
	}
	der, err := ExportPrivateKeyDER(viaRaw)
	if err != nil {
		t.Fatalf("ExportPrivateKeyDER error: %v", err)
	}
	viaDER, err := ImportPrivateKeyDER(der)
	if err != nil {
		t.Fatalf("ImportPrivateKeyDER error: %v", err)
	}

	blob, err := PublicEncrypt([]byte("interop"), &priv.PublicKey, nil)
	if err != nil {
		t.Fatalf("PublicEncrypt error: %v", err)
	}
	got, err := PrivateDecrypt(blob, viaDER, nil)
	if err != nil {
		t.Fatalf("PrivateDecrypt error: %v", err)
	}
	if string(got) != "interop" {
		t.Fatalf("decrypt mismatch: %q", got)
	}
}

func TestPublicKeyRaw_RoundTrip(t *testing.T) {
	priv, _ := GenerateKeyPair()

	raw := ExportPublicKeyRaw(&priv.PublicKey)
	if len(raw) != PublicKeyLength || raw[0] != 4 {
		t.Fatalf("unexpected export shape: len=%d prefix=%#x", len(raw), raw[0])
	}

	back, err := ImportPublicKeyRaw(raw)
	if err != nil {
		t.Fatalf("ImportPublicKeyRaw error: %v", err)
	}
	if back.X.Cmp(priv.X) != 0 || back.Y.Cmp(priv.Y) != 0 {
		t.Fatalf("point mismatch after round trip")
	}
}

func TestImportPublicKeyRaw_Invalid(t *testing.T) {
	priv, _ := GenerateKeyPair()
	good := ExportPublicKeyRaw(&priv.PublicKey)

	// wrong length
	if _, err := ImportPublicKeyRaw(good[:64]); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("short input: error = %v, want ErrInvalidKey", err)
	}

	// wrong prefix
	compressed := bytes.Clone(good)
	compressed[0] = 2
	if _, err := ImportPublicKeyRaw(compressed); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("compressed prefix: error = %v, want ErrInvalidKey", err)
	}

	// off-curve point
	offCurve := bytes.Clone(good)
	offCurve[64] ^= 0x01
	if _, err := ImportPublicKeyRaw(offCurve); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("off-curve point: error = %v, want ErrInvalidKey", err)
	}
}

func TestGenerateSymmetricKey(t *testing.T) {
	k1, err := GenerateSymmetricKey()
	if err != nil {
		t.Fatalf("GenerateSymmetricKey error: %v", err)
	}
	k2, err := GenerateSymmetricKey()
	if err != nil {
		t.Fatalf("GenerateSymmetricKey error: %v", err)
	}

	if len(k1) != SymmetricKeyLength {
		t.Fatalf("key length = %d, want %d", len(k1), SymmetricKeyLength)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected distinct keys")
	}
}
