package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-keeper-sdk/internal/adapter"
	"github.com/MKhiriev/go-keeper-sdk/internal/config"
	"github.com/MKhiriev/go-keeper-sdk/internal/logger"
	"github.com/MKhiriev/go-keeper-sdk/internal/notation"
	"github.com/MKhiriev/go-keeper-sdk/internal/service"
	"github.com/MKhiriev/go-keeper-sdk/internal/store"
)

var (
	flagHostname string
	flagToken    string
	flagProfile  string
	flagLogLevel string

	rootCmd = &cobra.Command{
		Use:   "ksm",
		Short: "ksm - command-line client for the Keeper secrets vault",
		Long: `ksm fetches and resolves secrets from a Keeper vault using a bound
client profile. Configuration is read from environment variables (KSM_*),
an optional JSON file, and the flags below.

Run 'ksm help <command>' for details on a specific command.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHostname, "hostname", "", "vault API host")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "one-time binding token")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "client profile file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(secretCmd)
	rootCmd.AddCommand(notationCmd)
	rootCmd.AddCommand(passwordCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges env and JSON file configuration with the cobra flag
// overrides.
func loadConfig() (*config.StructuredConfig, error) {
	cfg, err := config.GetCLIConfig()
	if err != nil {
		return nil, err
	}
	if flagHostname != "" {
		cfg.Vault.Hostname = flagHostname
	}
	if flagToken != "" {
		cfg.Vault.Token = flagToken
	}
	if flagProfile != "" {
		cfg.Storage.ProfilePath = flagProfile
	}
	if flagLogLevel != "" {
		cfg.App.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// buildService wires the full pipeline: server key table, transport,
// profile storage, resolver, secrets service.
func buildService() (service.SecretsService, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Vault.Hostname == "" {
		return nil, fmt.Errorf("vault hostname is required (flag --hostname or env KSM_VAULT_HOSTNAME)")
	}

	log := logger.New("ksm", cfg.App.LogLevel)

	serverKeys, err := adapter.DefaultServerKeys()
	if err != nil {
		return nil, fmt.Errorf("server key table: %w", err)
	}

	transport := adapter.NewHTTPVaultTransport(adapter.Config{
		Hostname:   cfg.Vault.Hostname,
		ServerKeys: serverKeys,
		Timeout:    cfg.Adapter.RequestTimeout,
	}, log.With("transport"))

	storage := store.NewFileProfileStorage(cfg.Storage.ProfilePath)
	resolver := notation.NewResolver()

	return service.NewSecretsService(transport, storage, resolver, service.SecretsConfig{
		ClientVersion: cfg.App.ClientVersion,
		Hostname:      cfg.Vault.Hostname,
		Token:         cfg.Vault.Token,
	}, log.With("secrets")), nil
}
