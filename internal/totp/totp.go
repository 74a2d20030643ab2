// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package totp generates RFC 6238 time-based one-time codes from the
// otpauth:// URLs stored in oneTimeCode record fields.
package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidURL is returned when an otpauth URL cannot be parsed or misses
// the secret parameter.
var ErrInvalidURL = errors.New("invalid otpauth url")

// Defaults per RFC 6238 and the otpauth de-facto convention.
const (
	defaultDigits = 6
	defaultPeriod = 30
)

// Params describes one TOTP generator parsed from an otpauth:// URL.
type Params struct {
	Secret    []byte
	Algorithm string // SHA1, SHA256, SHA512
	Digits    int
	Period    int
}

// Code is one generated one-time code with its validity window.
type Code struct {
	Token string

	// TimeLeft is the number of seconds until the code rotates.
	TimeLeft int
}

// ParseURL parses an otpauth:// URL into [Params]. Unknown parameters are
// ignored; missing ones fall back to the RFC defaults.
func ParseURL(text string) (*Params, error) {
	u, err := url.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "otpauth" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}

	q := u.Query()
	secret := strings.ToUpper(strings.TrimSpace(q.Get("secret")))
	if secret == "" {
		return nil, fmt.Errorf("%w: missing secret", ErrInvalidURL)
	}
	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: secret is not base32: %v", ErrInvalidURL, err)
	}

	params := &Params{
		Secret:    key,
		Algorithm: "SHA1",
		Digits:    defaultDigits,
		Period:    defaultPeriod,
	}
	if alg := strings.ToUpper(q.Get("algorithm")); alg != "" {
		params.Algorithm = alg
	}
	if digits := q.Get("digits"); digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n < 6 || n > 10 {
			return nil, fmt.Errorf("%w: digits %q", ErrInvalidURL, digits)
		}
		params.Digits = n
	}
	if period := q.Get("period"); period != "" {
		n, err := strconv.Atoi(period)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: period %q", ErrInvalidURL, period)
		}
		params.Period = n
	}

	return params, nil
}

// GenerateCode produces the code for the current time.
func GenerateCode(urlText string) (*Code, error) {
	return generateCodeAt(urlText, time.Now().Unix())
}

func generateCodeAt(urlText string, unixTime int64) (*Code, error) {
	params, err := ParseURL(urlText)
	if err != nil {
		return nil, err
	}

	var newHash func() hash.Hash
	switch params.Algorithm {
	case "SHA1":
		newHash = sha1.New
	case "SHA256":
		newHash = sha256.New
	case "SHA512":
		newHash = sha512.New
	default:
		return nil, fmt.Errorf("%w: algorithm %q", ErrInvalidURL, params.Algorithm)
	}

	counter := uint64(unixTime / int64(params.Period))
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(newHash, params.Secret)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	// dynamic truncation per RFC 4226 §5.3
	offset := digest[len(digest)-1] & 0x0f
	value := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff

	// uint64: 10^10 overflows uint32 and ParseURL allows up to 10 digits
	mod := uint64(1)
	for i := 0; i < params.Digits; i++ {
		mod *= 10
	}

	token := fmt.Sprintf("%0*d", params.Digits, uint64(value)%mod)
	return &Code{
		Token:    token,
		TimeLeft: params.Period - int(unixTime%int64(params.Period)),
	}, nil
}
