// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client profile: the bound credential material a
// vault client carries between runs (client id, EC key pair, app key).
//
// The primary abstraction is [ProfileStorage]. The file-backed implementation
// serializes all read-modify-write cycles behind a mutex so that two
// concurrent binders cannot overwrite each other's freshly generated key
// pair.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_storage_mock.go -package=mock

// ProfileStorage persists a [ClientProfile].
type ProfileStorage interface {
	// Load returns the stored profile, or [ErrProfileNotFound] when no
	// profile has been saved yet.
	Load(ctx context.Context) (*ClientProfile, error)

	// Save replaces the stored profile.
	Save(ctx context.Context, profile *ClientProfile) error

	// Update runs fn against the current profile (a zero-value profile when
	// none exists yet) and persists the result, all under the storage lock.
	// If fn returns an error nothing is written and the error is returned.
	Update(ctx context.Context, fn func(profile *ClientProfile) error) (*ClientProfile, error)
}
