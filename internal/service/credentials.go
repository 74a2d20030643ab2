// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-keeper-sdk/internal/utils"
)

// clientIDHashTag domain-separates the client id derivation from any other
// HMAC over the token bytes. The value is fixed by the protocol.
const clientIDHashTag = "KEEPER_SECRETS_MANAGER_CLIENT_ID"

// tokenKeyLength is the decoded one-time token length; the token doubles as
// the AES key that unwraps the app key during bind.
const tokenKeyLength = 32

// parseToken strips an optional region prefix ("US:...", "EU:...") off a
// one-time token and decodes the remainder.
func parseToken(token string) ([]byte, error) {
	if i := strings.LastIndex(token, ":"); i >= 0 {
		token = token[i+1:]
	}

	raw, err := utils.Base64URLDecode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if len(raw) != tokenKeyLength {
		return nil, fmt.Errorf("%w: token must decode to %d bytes, got %d", ErrInvalidToken, tokenKeyLength, len(raw))
	}
	return raw, nil
}

// clientIDFromToken derives the client identifier the server knows this
// credential by: base64url(HMAC-SHA512(tokenBytes, tag)).
func clientIDFromToken(tokenBytes []byte) string {
	mac := hmac.New(sha512.New, tokenBytes)
	mac.Write([]byte(clientIDHashTag))
	return utils.Base64URLEncode(mac.Sum(nil))
}

// shortClientID truncates a client id for log output. Derived ids are always
// 86 characters, but profiles loaded from disk may carry anything.
func shortClientID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
