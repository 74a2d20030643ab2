package utils

import (
	"bytes"
	"testing"
)

func TestBase64URL_RoundTrip(t *testing.T) {
	in := []byte{0xFB, 0xEF, 0xFF, 0x00, 0x01}

	encoded := Base64URLEncode(in)
	if bytes.ContainsAny([]byte(encoded), "+/=") {
		t.Fatalf("encoding %q is not URL-safe unpadded", encoded)
	}

	out, err := Base64URLDecode(encoded)
	if err != nil {
		t.Fatalf("Base64URLDecode error: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("round trip mismatch: %x != %x", out, in)
	}
}

func TestBase64URLDecode_TolerantInput(t *testing.T) {
	want := []byte{0xFB, 0xEF, 0xFF}

	tests := map[string]string{
		"unpadded url": "--__",
		"padded url":   "--__==",
		"standard":     "++//",
		"padded mixed": "+-/_=",
		"empty":        "",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Base64URLDecode(input)
			if err != nil {
				t.Fatalf("Base64URLDecode(%q) error: %v", input, err)
			}
			if input == "" {
				if len(got) != 0 {
					t.Fatalf("expected empty output")
				}
				return
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("Base64URLDecode(%q) = %x, want %x", input, got, want)
			}
		})
	}
}

func TestBase64URLDecode_Invalid(t *testing.T) {
	if _, err := Base64URLDecode("not!base64"); err == nil {
		t.Fatalf("expected error for invalid input")
	}
}
