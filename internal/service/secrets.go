// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-keeper-sdk/internal/adapter"
	"github.com/MKhiriev/go-keeper-sdk/internal/crypto"
	"github.com/MKhiriev/go-keeper-sdk/internal/logger"
	"github.com/MKhiriev/go-keeper-sdk/internal/notation"
	"github.com/MKhiriev/go-keeper-sdk/internal/store"
	"github.com/MKhiriev/go-keeper-sdk/internal/utils"
	"github.com/MKhiriev/go-keeper-sdk/models"
)

// SecretsConfig holds the non-injected settings of the secrets service.
type SecretsConfig struct {
	// ClientVersion is reported to the server in every payload.
	ClientVersion string

	// Hostname pins newly created profiles to the configured endpoint.
	Hostname string

	// Token is the one-time binding token. Only consulted while the
	// persisted profile is unbound; it never leaves process memory.
	Token string
}

type secretsService struct {
	transport adapter.VaultTransport
	storage   store.ProfileStorage
	resolver  *notation.Resolver
	cfg       SecretsConfig
	log       *logger.Logger

	mu    sync.RWMutex
	cache []*models.Record
}

// NewSecretsService constructs a [SecretsService].
func NewSecretsService(transport adapter.VaultTransport, storage store.ProfileStorage, resolver *notation.Resolver, cfg SecretsConfig, log *logger.Logger) SecretsService {
	return &secretsService{
		transport: transport,
		storage:   storage,
		resolver:  resolver,
		cfg:       cfg,
		log:       log,
	}
}

// GetSecrets implements [SecretsService].
func (s *secretsService) GetSecrets(ctx context.Context, uids []string) ([]*models.Record, error) {
	profile, priv, err := s.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.fetchOnce(ctx, profile, priv, uids)
	if err != nil {
		return nil, err
	}

	if resp.EncryptedAppKey != "" {
		profile, err = s.bind(ctx, resp)
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("client_id", shortClientID(profile.ClientID)).Msg("client bound to application")

		// Single post-bind refetch. A failure here is surfaced, not logged
		// and dropped: the caller sees a bound profile with a failed fetch
		// instead of a silent success.
		resp, err = s.fetchOnce(ctx, profile, priv, uids)
		if err != nil {
			return nil, fmt.Errorf("refetch after key bind: %w", err)
		}
	}

	appKey, err := utils.Base64URLDecode(profile.AppKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decode app key: %v", store.ErrProfileCorrupted, err)
	}

	return decryptResponse(resp, appKey)
}

// GetSecretByUID implements [SecretsService].
func (s *secretsService) GetSecretByUID(ctx context.Context, uid string) (*models.Record, error) {
	records, err := s.GetSecrets(ctx, []string{uid})
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.RecordUID == uid {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: uid %s", ErrSecretNotFound, uid)
}

// GetSecretByTitle implements [SecretsService].
func (s *secretsService) GetSecretByTitle(ctx context.Context, title string) (*models.Record, error) {
	records, err := s.GetSecrets(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Title == title {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: title %q", ErrSecretNotFound, title)
}

// GetNotation implements [SecretsService].
func (s *secretsService) GetNotation(ctx context.Context, text string) (any, error) {
	records := s.snapshot()
	if records == nil {
		var err error
		records, err = s.GetSecrets(ctx, nil)
		if err != nil {
			return nil, err
		}
	}
	return s.resolver.Resolve(records, text)
}

// TryGetNotation implements [SecretsService].
func (s *secretsService) TryGetNotation(ctx context.Context, text string) (any, bool, error) {
	value, err := s.GetNotation(ctx, text)
	switch {
	case err == nil:
		return value, true, nil
	case errors.Is(err, notation.ErrRecordNotFound),
		errors.Is(err, notation.ErrFieldNotFound),
		errors.Is(err, notation.ErrFileNotFound),
		errors.Is(err, notation.ErrIndexOutOfRange),
		errors.Is(err, notation.ErrPropertyNotFound):
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// CreateSecret implements [SecretsService].
func (s *secretsService) CreateSecret(ctx context.Context, folderUID string, record *models.Record) (string, error) {
	profile, priv, err := s.ensureProfile(ctx)
	if err != nil {
		return "", err
	}
	if profile.AppOwnerPublicKey == "" {
		return "", ErrNoAppOwnerKey
	}

	ownerRaw, err := utils.Base64URLDecode(profile.AppOwnerPublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: decode app owner key: %v", store.ErrProfileCorrupted, err)
	}
	ownerPub, err := crypto.ImportPublicKeyRaw(ownerRaw)
	if err != nil {
		return "", fmt.Errorf("app owner key: %w", err)
	}

	recordKey, err := crypto.GenerateSymmetricKey()
	if err != nil {
		return "", err
	}
	data, err := record.Data()
	if err != nil {
		return "", err
	}
	encryptedData, err := crypto.Encrypt(data, recordKey)
	if err != nil {
		return "", fmt.Errorf("encrypt record data: %w", err)
	}
	wrappedKey, err := crypto.PublicEncrypt(recordKey, ownerPub, nil)
	if err != nil {
		return "", fmt.Errorf("wrap record key: %w", err)
	}

	uid := newRecordUID()
	payload := models.CreatePayload{
		ClientVersion: s.cfg.ClientVersion,
		ClientID:      profile.ClientID,
		RecordUID:     uid,
		RecordKey:     utils.Base64URLEncode(wrappedKey),
		Data:          utils.Base64URLEncode(encryptedData),
		FolderUID:     folderUID,
	}
	if _, err := s.post(ctx, "create_secret", payload, priv); err != nil {
		return "", err
	}

	return uid, nil
}

// UpdateSecret implements [SecretsService].
func (s *secretsService) UpdateSecret(ctx context.Context, record *models.Record) error {
	profile, priv, err := s.ensureProfile(ctx)
	if err != nil {
		return err
	}

	data, err := record.Data()
	if err != nil {
		return err
	}
	encryptedData, err := crypto.Encrypt(data, record.RecordKey)
	if err != nil {
		return fmt.Errorf("encrypt record data: %w", err)
	}

	payload := models.UpdatePayload{
		ClientVersion: s.cfg.ClientVersion,
		ClientID:      profile.ClientID,
		RecordUID:     record.RecordUID,
		Data:          utils.Base64URLEncode(encryptedData),
		Revision:      record.Revision,
	}
	_, err = s.post(ctx, "update_secret", payload, priv)
	return err
}

// DeleteSecrets implements [SecretsService].
func (s *secretsService) DeleteSecrets(ctx context.Context, uids []string) ([]models.DeleteSecretStatus, error) {
	profile, priv, err := s.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	payload := models.DeletePayload{
		ClientVersion: s.cfg.ClientVersion,
		ClientID:      profile.ClientID,
		RecordUIDs:    uids,
	}
	raw, err := s.post(ctx, "delete_secret", payload, priv)
	if err != nil {
		return nil, err
	}

	var resp models.DeleteSecretsResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("decode delete response: %w", err)
		}
	}
	return resp.Records, nil
}

// DownloadFile implements [SecretsService].
func (s *secretsService) DownloadFile(ctx context.Context, file *models.FileRef) ([]byte, error) {
	if file.URL == "" {
		return nil, fmt.Errorf("file %s has no download url", file.UID)
	}

	blob, err := s.transport.Download(ctx, file.URL)
	if err != nil {
		return nil, err
	}

	content, err := crypto.Decrypt(blob, file.FileKey)
	if err != nil {
		return nil, fmt.Errorf("decrypt file %s: %w", file.UID, err)
	}
	return content, nil
}

// Refresh implements [SecretsService].
func (s *secretsService) Refresh(ctx context.Context) error {
	records, err := s.GetSecrets(ctx, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = records
	s.mu.Unlock()

	s.log.Debug().Int("records", len(records)).Msg("secrets cache refreshed")
	return nil
}

func (s *secretsService) snapshot() []*models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache
}

// ensureProfile loads the persisted profile, creating the client identity
// and key pair on first use. The whole read-modify-write runs under the
// storage lock so concurrent callers cannot clobber a fresh key pair.
func (s *secretsService) ensureProfile(ctx context.Context) (*store.ClientProfile, *ecdsa.PrivateKey, error) {
	profile, err := s.storage.Update(ctx, func(p *store.ClientProfile) error {
		if p.ClientID == "" {
			if s.cfg.Token == "" {
				return ErrMissingToken
			}
			tokenBytes, err := parseToken(s.cfg.Token)
			if err != nil {
				return err
			}
			p.ClientID = clientIDFromToken(tokenBytes)
			p.Hostname = s.cfg.Hostname
		}
		if p.PrivateKey == "" {
			priv, err := crypto.GenerateKeyPair()
			if err != nil {
				return err
			}
			der, err := crypto.ExportPrivateKeyDER(priv)
			if err != nil {
				return err
			}
			p.PrivateKey = utils.Base64URLEncode(der)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	der, err := utils.Base64URLDecode(profile.PrivateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decode private key: %v", store.ErrProfileCorrupted, err)
	}
	priv, err := crypto.ImportPrivateKeyDER(der)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", store.ErrProfileCorrupted, err)
	}

	return profile, priv, nil
}

// fetchOnce performs exactly one get_secrets round trip.
func (s *secretsService) fetchOnce(ctx context.Context, profile *store.ClientProfile, priv *ecdsa.PrivateKey, uids []string) (*models.SecretsResponse, error) {
	payload := models.GetPayload{
		ClientVersion:    s.cfg.ClientVersion,
		ClientID:         profile.ClientID,
		RequestedRecords: uids,
	}
	if !profile.Bound() {
		payload.PublicKey = utils.Base64URLEncode(crypto.ExportPublicKeyRaw(&priv.PublicKey))
	}

	raw, err := s.post(ctx, "get_secrets", payload, priv)
	if err != nil {
		return nil, err
	}

	var resp models.SecretsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode secrets response: %w", err)
	}
	if resp.Warnings != "" {
		s.log.Warn().Str("warnings", resp.Warnings).Msg("server warnings")
	}
	return &resp, nil
}

// bind completes the one-time key exchange: the app key arrives wrapped
// under the one-time token bytes and is persisted for all later calls.
func (s *secretsService) bind(ctx context.Context, resp *models.SecretsResponse) (*store.ClientProfile, error) {
	if s.cfg.Token == "" {
		return nil, ErrMissingToken
	}
	tokenBytes, err := parseToken(s.cfg.Token)
	if err != nil {
		return nil, err
	}

	appKey, err := unwrapKey(resp.EncryptedAppKey, tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("unwrap app key: %w", err)
	}

	return s.storage.Update(ctx, func(p *store.ClientProfile) error {
		p.AppKey = utils.Base64URLEncode(appKey)
		if resp.AppOwnerPublicKey != "" {
			p.AppOwnerPublicKey = resp.AppOwnerPublicKey
		}
		return nil
	})
}

func (s *secretsService) post(ctx context.Context, endpoint string, payload any, priv *ecdsa.PrivateKey) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", endpoint, err)
	}
	return s.transport.Post(ctx, endpoint, body, priv)
}

// newRecordUID generates a vault-style record UID: 16 random bytes,
// base64url without padding.
func newRecordUID() string {
	id := uuid.New()
	return utils.Base64URLEncode(id[:])
}
