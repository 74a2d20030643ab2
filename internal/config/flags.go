package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-hostname vault API host
//	-token one-time binding token
//	-profile client profile file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval secrets cache refresh interval (0 disables)
//	-log-level zerolog level name
func ParseFlags() *StructuredConfig {
	var hostname string
	var token string
	var profilePath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var logLevel string

	flag.StringVar(&hostname, "hostname", "", "Vault API host")
	flag.StringVar(&token, "token", "", "One-time binding token")
	flag.StringVar(&profilePath, "profile", "", "Client profile file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Secrets cache refresh interval")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Vault: Vault{
			Hostname: hostname,
			Token:    token,
		},
		Storage: Storage{
			ProfilePath: profilePath,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
