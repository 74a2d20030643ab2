// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-keeper-sdk/internal/utils"
)

func TestParseToken(t *testing.T) {
	raw := bytes.Repeat([]byte{0x5A}, tokenKeyLength)
	encoded := utils.Base64URLEncode(raw)

	got, err := parseToken(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	// region prefixes are stripped
	got, err = parseToken("US:" + encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	got, err = parseToken("EU:" + encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestParseToken_Invalid(t *testing.T) {
	// wrong decoded length
	_, err := parseToken(utils.Base64URLEncode([]byte("short")))
	assert.ErrorIs(t, err, ErrInvalidToken)

	// not base64
	_, err = parseToken("US:!!!")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestShortClientID(t *testing.T) {
	id := clientIDFromToken(bytes.Repeat([]byte{0x01}, tokenKeyLength))
	assert.Len(t, shortClientID(id), 8)

	// hand-edited profiles may carry ids shorter than the derived 86 chars
	assert.Equal(t, "abc", shortClientID("abc"))
	assert.Equal(t, "", shortClientID(""))
}

func TestClientIDFromToken(t *testing.T) {
	t1 := bytes.Repeat([]byte{0x01}, tokenKeyLength)
	t2 := bytes.Repeat([]byte{0x02}, tokenKeyLength)

	id1 := clientIDFromToken(t1)
	id2 := clientIDFromToken(t2)

	assert.Equal(t, id1, clientIDFromToken(t1), "derivation must be deterministic")
	assert.NotEqual(t, id1, id2)

	// base64url of an HMAC-SHA512 digest
	raw, err := utils.Base64URLDecode(id1)
	require.NoError(t, err)
	assert.Len(t, raw, 64)
}
