// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"crypto/ecdsa"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-keeper-sdk/internal/crypto"
	"github.com/MKhiriev/go-keeper-sdk/internal/utils"
)

// ServerKeySet is the immutable table of known server public keys, addressed
// by numeric publicKeyId. It is constructed once at startup and passed into
// the transport by injection; nothing mutates it afterwards.
type ServerKeySet struct {
	keys map[int]*ecdsa.PublicKey
}

// NewServerKeySet decodes a publicKeyId -> base64url-encoded uncompressed
// point table into a [ServerKeySet]. Every entry must decode to a valid
// 65-byte P-256 point.
func NewServerKeySet(encoded map[int]string) (*ServerKeySet, error) {
	keys := make(map[int]*ecdsa.PublicKey, len(encoded))
	for id, text := range encoded {
		raw, err := utils.Base64URLDecode(text)
		if err != nil {
			return nil, fmt.Errorf("decode server key %d: %w", id, err)
		}
		pub, err := crypto.ImportPublicKeyRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("import server key %d: %w", id, err)
		}
		keys[id] = pub
	}
	return &ServerKeySet{keys: keys}, nil
}

// MustServerKeySet is [NewServerKeySet] for compile-time tables; it panics on
// a malformed entry.
func MustServerKeySet(encoded map[int]string) *ServerKeySet {
	set, err := NewServerKeySet(encoded)
	if err != nil {
		panic(err)
	}
	return set
}

// Get returns the server public key for id.
func (s *ServerKeySet) Get(id int) (*ecdsa.PublicKey, bool) {
	pub, ok := s.keys[id]
	return pub, ok
}

// IDs returns the known key ids in ascending order.
func (s *ServerKeySet) IDs() []int {
	ids := make([]int, 0, len(s.keys))
	for id := range s.keys {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// DefaultKeyID is the publicKeyId a fresh client starts with when the
// persisted profile does not pin one.
const DefaultKeyID = 1

// defaultServerPublicKeys is the production key table. The server rotates
// between these and tells clients which id to use; new ids ship with SDK
// updates.
var defaultServerPublicKeys = map[int]string{
	1: "BK9w6TZFxE6nFNbMfIpULCup2a8xc6w2tUTABjxny7yFmxW0dAEojwC6j6zb5nTlmb1dAx8nwo3qF7RPYGmloRM",
	2: "BKnhy0obglZJK-igwthNLdknoSXRrGB-mvFRzyb_L-DKKefWjYdFD2888qN1ROczz4n3keYSfKz9Koj90Z6w_tQ",
	3: "BAsPQdCpLIGXdWNLdAwx-3J5lNqUtKbaOMV56hUj8VzxE2USLHuHHuKDeno0ymJt-acxWV1xPlBfNUShhRTR77g",
	4: "BNYIh_Sv03nRZUUJveE8d2mxKLIDXv654UbshaItHrCJhd6cT7pdZ_XwbdyxAOCWMkBb9AZ4t1XRCsM8-wkEBRg",
}

// DefaultServerKeys returns the [ServerKeySet] built from the production key
// table. Deployments against self-hosted or regional endpoints inject their
// own table through [NewServerKeySet] instead.
func DefaultServerKeys() (*ServerKeySet, error) {
	return NewServerKeySet(defaultServerPublicKeys)
}
