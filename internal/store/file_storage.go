// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileProfileStorage is the default [ProfileStorage]: a single JSON file on
// the local filesystem, written with 0600 permissions.
type fileProfileStorage struct {
	path string

	// mu serializes all read-modify-write cycles. Without it a concurrent
	// bind could read, generate a key pair, and then clobber a profile
	// written in between.
	mu sync.Mutex
}

// NewFileProfileStorage constructs a [ProfileStorage] over the JSON file at
// path. The file and its directory are created lazily on first Save.
func NewFileProfileStorage(path string) ProfileStorage {
	return &fileProfileStorage{path: path}
}

// Load implements [ProfileStorage].
func (s *fileProfileStorage) Load(_ context.Context) (*ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save implements [ProfileStorage].
func (s *fileProfileStorage) Save(_ context.Context, profile *ClientProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(profile)
}

// Update implements [ProfileStorage].
func (s *fileProfileStorage) Update(_ context.Context, fn func(profile *ClientProfile) error) (*ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.load()
	if errors.Is(err, ErrProfileNotFound) {
		profile = &ClientProfile{}
	} else if err != nil {
		return nil, err
	}

	if err := fn(profile); err != nil {
		return nil, err
	}
	if err := s.save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *fileProfileStorage) load() (*ClientProfile, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	var profile ClientProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileCorrupted, err)
	}
	return &profile, nil
}

func (s *fileProfileStorage) save(profile *ClientProfile) error {
	raw, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create profile dir: %w", err)
		}
	}

	// Write-then-rename so a crash mid-write never leaves a truncated
	// profile behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profile file: %w", err)
	}
	return nil
}
