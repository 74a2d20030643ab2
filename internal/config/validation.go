// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// Fallbacks applied after merging when a field is still unset.
const (
	defaultClientVersion  = "mg16.6.0"
	defaultProfilePath    = "client-config.json"
	defaultRequestTimeout = 30 * time.Second
	defaultLogLevel       = "info"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.ClientVersion == "" {
		cfg.App.ClientVersion = defaultClientVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Storage.ProfilePath == "" {
		cfg.Storage.ProfilePath = defaultProfilePath
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required before the SDK can run.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.Hostname == "" {
		return ErrInvalidVaultConfigs
	}
	if strings.Contains(cfg.Vault.Hostname, "://") {
		// the scheme is fixed to https and added by the transport
		return ErrInvalidVaultConfigs
	}

	if cfg.Storage.ProfilePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
