// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates the secrets pipeline: profile bootstrap,
// signed fetch through the transport, envelope decryption down to plaintext
// records, and notation resolution over the decrypted snapshot.
package service

import (
	"context"

	"github.com/MKhiriev/go-keeper-sdk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secrets_service_mock.go -package=mock

// SecretsService is the high-level client API over the vault.
type SecretsService interface {
	// GetSecrets fetches and decrypts the records shared to this client.
	// A non-empty uids list restricts the result server-side. On the very
	// first call the one-time bind runs transparently; a failure of the
	// single post-bind refetch is surfaced, not swallowed.
	GetSecrets(ctx context.Context, uids []string) ([]*models.Record, error)

	// GetSecretByUID returns one record, or ErrSecretNotFound.
	GetSecretByUID(ctx context.Context, uid string) (*models.Record, error)

	// GetSecretByTitle returns the first record with the given title, or
	// ErrSecretNotFound.
	GetSecretByTitle(ctx context.Context, title string) (*models.Record, error)

	// GetNotation resolves a keeper:// notation string against the current
	// record snapshot (the cache when the refresh worker keeps one, a fresh
	// fetch otherwise). See the notation package for value semantics.
	GetNotation(ctx context.Context, text string) (any, error)

	// TryGetNotation is GetNotation with lookup misses folded to ok=false;
	// parse errors and transport failures still return an error.
	TryGetNotation(ctx context.Context, text string) (any, bool, error)

	// CreateSecret encrypts and stores a new record in folderUID and
	// returns its record UID.
	CreateSecret(ctx context.Context, folderUID string, record *models.Record) (string, error)

	// UpdateSecret re-encrypts the record's data payload under its record
	// key and pushes it with the held revision.
	UpdateSecret(ctx context.Context, record *models.Record) error

	// DeleteSecrets removes records by UID and reports per-record status.
	DeleteSecrets(ctx context.Context, uids []string) ([]models.DeleteSecretStatus, error)

	// DownloadFile fetches and decrypts one attachment's content.
	DownloadFile(ctx context.Context, file *models.FileRef) ([]byte, error)

	// Refresh re-fetches all records into the service cache. Called by the
	// background refresh worker.
	Refresh(ctx context.Context) error
}
