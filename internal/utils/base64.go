// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared across the SDK layers.
package utils

import (
	"encoding/base64"
	"strings"
)

// Base64URLEncode encodes b in URL-safe base64 without padding, the encoding
// used for every binary value on the wire.
func Base64URLEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Base64URLDecode decodes URL-safe base64, tolerating both padded and
// unpadded input as well as the standard alphabet, since persisted profiles
// written by other SDKs differ on both points.
func Base64URLDecode(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	s = strings.ReplaceAll(s, "+", "-")
	s = strings.ReplaceAll(s, "/", "_")
	return base64.RawURLEncoding.DecodeString(s)
}
