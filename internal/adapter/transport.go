// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-keeper-sdk/internal/crypto"
	"github.com/MKhiriev/go-keeper-sdk/internal/logger"
)

// Config holds the settings of the HTTP vault transport.
type Config struct {
	// Hostname is the vault API host, without scheme ("keepersecurity.com").
	Hostname string

	// ServerKeys is the immutable table of known server public keys.
	ServerKeys *ServerKeySet

	// KeyID selects the server public key to encrypt transmission keys
	// under. Zero falls back to [DefaultKeyID].
	KeyID int

	// Timeout bounds a single round trip. The transport performs no
	// internal retries.
	Timeout time.Duration
}

type httpVaultTransport struct {
	client *resty.Client
	keys   *ServerKeySet
	log    *logger.Logger

	mu    sync.RWMutex
	keyID int
}

// NewHTTPVaultTransport constructs a [VaultTransport] over HTTPS.
func NewHTTPVaultTransport(cfg Config, log *logger.Logger) VaultTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.KeyID == 0 {
		cfg.KeyID = DefaultKeyID
	}

	cli := resty.New().
		SetBaseURL("https://" + strings.TrimSuffix(cfg.Hostname, "/") + "/api/rest/sm/v1").
		SetTimeout(cfg.Timeout)

	return &httpVaultTransport{
		client: cli,
		keys:   cfg.ServerKeys,
		keyID:  cfg.KeyID,
		log:    log,
	}
}

// serverError is the JSON body the server returns on failure.
type serverError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	KeyID   int    `json:"key_id,omitempty"`
}

// Post implements [VaultTransport].
func (t *httpVaultTransport) Post(ctx context.Context, endpoint string, payload []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	keyID := t.currentKeyID()
	serverKey, ok := t.keys.Get(keyID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyID, keyID)
	}

	transmissionKey, err := crypto.GenerateSymmetricKey()
	if err != nil {
		return nil, fmt.Errorf("transmission key: %w", err)
	}
	encryptedTransmissionKey, err := crypto.PublicEncrypt(transmissionKey, serverKey, nil)
	if err != nil {
		return nil, fmt.Errorf("encrypt transmission key: %w", err)
	}
	encryptedPayload, err := crypto.Encrypt(payload, transmissionKey)
	if err != nil {
		return nil, fmt.Errorf("encrypt payload: %w", err)
	}

	// The signature covers both ciphertexts so neither can be swapped out
	// independently.
	signature, err := crypto.Sign(append(append([]byte{}, encryptedTransmissionKey...), encryptedPayload...), priv)
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	requestID := uuid.NewString()
	t.log.Debug().
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Int("key_id", keyID).
		Msg("vault request")

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("PublicKeyId", strconv.Itoa(keyID)).
		SetHeader("TransmissionKey", base64.StdEncoding.EncodeToString(encryptedTransmissionKey)).
		SetHeader("Authorization", "Signature "+base64.StdEncoding.EncodeToString(signature)).
		SetBody(encryptedPayload).
		Post("/" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %v", ErrTransportFailure, endpoint, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, t.mapErrorResponse(endpoint, resp, transmissionKey, requestID)
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}

	plaintext, err := crypto.Decrypt(resp.Body(), transmissionKey)
	if err != nil {
		// bad tag on a 200 response: fatal, never retried
		return nil, fmt.Errorf("decrypt %s response: %w", endpoint, err)
	}
	return plaintext, nil
}

// Download implements [VaultTransport]. Pre-signed URLs are absolute and
// unauthenticated; the body stays encrypted under the file key.
func (t *httpVaultTransport) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := t.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: download: %v", ErrTransportFailure, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: download http %d", ErrTransportFailure, resp.StatusCode())
	}
	return resp.Body(), nil
}

// mapErrorResponse turns a non-200 response into [ErrTransportFailure],
// decrypting the body when possible so the caller sees the server's actual
// message. A key-rotation hint in the body updates the key id used by
// subsequent calls; the current call still fails.
func (t *httpVaultTransport) mapErrorResponse(endpoint string, resp *resty.Response, transmissionKey []byte, requestID string) error {
	body := resp.Body()
	if plaintext, err := crypto.Decrypt(body, transmissionKey); err == nil {
		body = plaintext
	}

	var se serverError
	if err := json.Unmarshal(body, &se); err == nil && se.Error != "" {
		if se.Error == "key" && se.KeyID != 0 {
			if _, ok := t.keys.Get(se.KeyID); ok {
				t.setKeyID(se.KeyID)
				t.log.Warn().
					Str("request_id", requestID).
					Int("key_id", se.KeyID).
					Msg("server rotated public key id")
			}
		}
		return fmt.Errorf("%w: %s http %d: %s: %s", ErrTransportFailure, endpoint, resp.StatusCode(), se.Error, se.Message)
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: %s http %d: %s", ErrTransportFailure, endpoint, resp.StatusCode(), msg)
}

func (t *httpVaultTransport) currentKeyID() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keyID
}

func (t *httpVaultTransport) setKeyID(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keyID = id
}
