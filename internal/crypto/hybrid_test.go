package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveSharedKey_Symmetric(t *testing.T) {
	alice, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}
	bob, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	k1, err := DeriveSharedKey(alice, &bob.PublicKey, nil)
	if err != nil {
		t.Fatalf("DeriveSharedKey error: %v", err)
	}
	k2, err := DeriveSharedKey(bob, &alice.PublicKey, nil)
	if err != nil {
		t.Fatalf("DeriveSharedKey error: %v", err)
	}

	if len(k1) != SymmetricKeyLength {
		t.Fatalf("derived key length = %d, want %d", len(k1), SymmetricKeyLength)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected both sides to derive the same key")
	}
}

func TestDeriveSharedKey_IDSeparatesKeys(t *testing.T) {
	alice, _ := GenerateKeyPair()
	bob, _ := GenerateKeyPair()

	plain, err := DeriveSharedKey(alice, &bob.PublicKey, nil)
	if err != nil {
		t.Fatalf("DeriveSharedKey error: %v", err)
	}
	tagged, err := DeriveSharedKey(alice, &bob.PublicKey, []byte("client-7"))
	if err != nil {
		t.Fatalf("DeriveSharedKey error: %v", err)
	}

	if bytes.Equal(plain, tagged) {
		t.Fatalf("expected id to change the derived key")
	}
}

func TestPublicEncrypt_PrivateDecrypt_RoundTrip(t *testing.T) {
	recipient, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	plaintext := bytes.Repeat([]byte{0xA5}, 32) // a transmission key, typically
	blob, err := PublicEncrypt(plaintext, &recipient.PublicKey, nil)
	if err != nil {
		t.Fatalf("PublicEncrypt error: %v", err)
	}

	if len(blob) != PublicKeyLength+NonceLength+len(plaintext)+TagLength {
		t.Fatalf("blob length = %d, want %d", len(blob), PublicKeyLength+NonceLength+len(plaintext)+TagLength)
	}
	if blob[0] != 4 {
		t.Fatalf("expected uncompressed ephemeral key prefix 0x04, got %#x", blob[0])
	}

	got, err := PrivateDecrypt(blob, recipient, nil)
	if err != nil {
		t.Fatalf("PrivateDecrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch")
	}
}

func TestPublicEncrypt_FreshEphemeralPerCall(t *testing.T) {
	recipient, _ := GenerateKeyPair()

	b1, err := PublicEncrypt([]byte("x"), &recipient.PublicKey, nil)
	if err != nil {
		t.Fatalf("PublicEncrypt error: %v", err)
	}
	b2, err := PublicEncrypt([]byte("x"), &recipient.PublicKey, nil)
	if err != nil {
		t.Fatalf("PublicEncrypt error: %v", err)
	}

	if bytes.Equal(b1[:PublicKeyLength], b2[:PublicKeyLength]) {
		t.Fatalf("expected a fresh ephemeral key per call")
	}
}

func TestPrivateDecrypt_WrongRecipient(t *testing.T) {
	recipient, _ := GenerateKeyPair()
	other, _ := GenerateKeyPair()

	blob, err := PublicEncrypt([]byte("for recipient only"), &recipient.PublicKey, nil)
	if err != nil {
		t.Fatalf("PublicEncrypt error: %v", err)
	}

	if _, err := PrivateDecrypt(blob, other, nil); !errors.Is(err, ErrCryptoVerification) {
		t.Fatalf("error = %v, want ErrCryptoVerification", err)
	}
}

func TestPrivateDecrypt_MismatchedID(t *testing.T) {
	recipient, _ := GenerateKeyPair()

	blob, err := PublicEncrypt([]byte("bound to id"), &recipient.PublicKey, []byte("id-a"))
	if err != nil {
		t.Fatalf("PublicEncrypt error: %v", err)
	}

	if _, err := PrivateDecrypt(blob, recipient, []byte("id-b")); !errors.Is(err, ErrCryptoVerification) {
		t.Fatalf("error = %v, want ErrCryptoVerification", err)
	}
}

func TestPrivateDecrypt_Truncated(t *testing.T) {
	recipient, _ := GenerateKeyPair()

	if _, err := PrivateDecrypt(make([]byte, PublicKeyLength+NonceLength+TagLength-1), recipient, nil); !errors.Is(err, ErrInvalidCiphertext) {
		t.Fatalf("error = %v, want ErrInvalidCiphertext", err)
	}
}

func TestPrivateDecrypt_GarbageEphemeralKey(t *testing.T) {
	recipient, _ := GenerateKeyPair()

	blob := make([]byte, PublicKeyLength+NonceLength+TagLength)
	blob[0] = 4 // right prefix, but the point is not on the curve
	if _, err := PrivateDecrypt(blob, recipient, nil); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("error = %v, want ErrInvalidKey", err)
	}
}
