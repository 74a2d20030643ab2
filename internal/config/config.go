// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// go-keeper-sdk. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version
	// string and log verbosity.
	App App `envPrefix:"KSM_APP_"`

	// Vault holds the vault endpoint and client credential settings.
	Vault Vault `envPrefix:"KSM_VAULT_"`

	// Storage holds the client profile persistence settings.
	Storage Storage `envPrefix:"KSM_STORAGE_"`

	// Adapter holds outbound transport settings.
	Adapter Adapter `envPrefix:"KSM_ADAPTER_"`

	// Workers holds background refresh settings.
	Workers Workers `envPrefix:"KSM_WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the KSM_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"KSM_CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ClientVersion is the version string reported to the server in every
	// request payload (e.g. "mg16.6.0").
	// Env: KSM_APP_CLIENT_VERSION
	ClientVersion string `env:"CLIENT_VERSION"`

	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Env: KSM_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Vault holds the endpoint and credential used to reach the secrets vault.
type Vault struct {
	// Hostname is the vault API host (e.g. "keepersecurity.com").
	// Env: KSM_VAULT_HOSTNAME
	Hostname string `env:"HOSTNAME"`

	// Token is the one-time binding token. Only consulted until the first
	// successful bind; afterwards the persisted profile carries the
	// credential.
	// Env: KSM_VAULT_TOKEN
	Token string `env:"TOKEN"`
}

// Storage holds client profile persistence settings.
type Storage struct {
	// ProfilePath is the path of the JSON file holding the bound client
	// profile (client id, key pair, app key).
	// Env: KSM_STORAGE_PROFILE_PATH
	ProfilePath string `env:"PROFILE_PATH"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single vault round trip
	// (e.g. "30s"). The transport performs no internal retries beyond the
	// documented one-time rebind retry.
	// Env: KSM_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// RefreshInterval defines how often the secrets cache refresh worker
	// runs. Zero disables the worker.
	// Env: KSM_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the SDK configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetCLIConfig is [GetStructuredConfig] without the stdlib flag source, for
// binaries whose command line is owned by a CLI framework. Overrides from
// that framework's flags are applied by the caller after loading, so
// validation is deferred to the caller as well.
func GetCLIConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		buildPartial()
}
