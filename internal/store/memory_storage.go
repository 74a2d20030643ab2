package store

import (
	"context"
	"sync"
)

// memoryProfileStorage is an in-memory [ProfileStorage] for tests and for
// embedders that manage persistence themselves.
type memoryProfileStorage struct {
	mu      sync.Mutex
	profile *ClientProfile
}

// NewMemoryProfileStorage constructs an empty in-memory [ProfileStorage].
func NewMemoryProfileStorage() ProfileStorage {
	return &memoryProfileStorage{}
}

// NewMemoryProfileStorageWith constructs an in-memory [ProfileStorage]
// pre-populated with profile.
func NewMemoryProfileStorageWith(profile *ClientProfile) ProfileStorage {
	return &memoryProfileStorage{profile: profile}
}

func (s *memoryProfileStorage) Load(_ context.Context) (*ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, ErrProfileNotFound
	}
	clone := *s.profile
	return &clone, nil
}

func (s *memoryProfileStorage) Save(_ context.Context, profile *ClientProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *profile
	s.profile = &clone
	return nil
}

func (s *memoryProfileStorage) Update(_ context.Context, fn func(profile *ClientProfile) error) (*ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := &ClientProfile{}
	if s.profile != nil {
		clone := *s.profile
		profile = &clone
	}

	if err := fn(profile); err != nil {
		return nil, err
	}
	s.profile = profile

	clone := *profile
	return &clone, nil
}
