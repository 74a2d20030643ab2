// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"KSM_CONFIG": "/path/to/config.json",

		"KSM_APP_CLIENT_VERSION": "mg99.0.0",
		"KSM_APP_LOG_LEVEL":      "debug",

		"KSM_VAULT_HOSTNAME": "keepersecurity.eu",
		"KSM_VAULT_TOKEN":    "US:one-time-token",

		"KSM_STORAGE_PROFILE_PATH": "/var/lib/ksm/profile.json",

		"KSM_ADAPTER_REQUEST_TIMEOUT": "45s",

		"KSM_WORKERS_REFRESH_INTERVAL": "10m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "mg99.0.0", cfg.App.ClientVersion)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	assert.Equal(t, "keepersecurity.eu", cfg.Vault.Hostname)
	assert.Equal(t, "US:one-time-token", cfg.Vault.Token)

	assert.Equal(t, "/var/lib/ksm/profile.json", cfg.Storage.ProfilePath)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"KSM_VAULT_HOSTNAME": "keepersecurity.com",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "keepersecurity.com", cfg.Vault.Hostname)
	assert.Empty(t, cfg.Vault.Token)
	assert.Empty(t, cfg.App.ClientVersion)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"KSM_ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
