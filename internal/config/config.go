// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetClientConfig] for fields no source provides.
const (
	DefaultServerAddress     = "http://javaprojects.ch:50001"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultPollInterval      = 1 * time.Second
	DefaultPresenceInterval  = 4 * time.Second
	DefaultDirectoryInterval = 10 * time.Second
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds network settings for the outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local history file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the periods of the three background refresh tasks.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged behind the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// HTTPAddress is the chat server base URL.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// HistoryFile is the path of the JSON conversation history file. Empty
	// means the per-user default location.
	// Env: STORAGE_HISTORY_FILE
	HistoryFile string `env:"HISTORY_FILE"`
}

// Workers holds the periods of the background refresh tasks.
type Workers struct {
	// PollInterval is the inbox poll period.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PresenceInterval is the active-contact presence refresh period.
	// Env: WORKERS_PRESENCE_INTERVAL
	PresenceInterval time.Duration `env:"PRESENCE_INTERVAL"`

	// DirectoryInterval is the user-directory refresh period.
	// Env: WORKERS_DIRECTORY_INTERVAL
	DirectoryInterval time.Duration `env:"DIRECTORY_INTERVAL"`
}

// ClientAdapter holds the transport settings handed to the adapter layer.
type ClientAdapter struct {
	// HTTPAddress is the chat server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// HistoryFile is the conversation history file path ("" = default).
	HistoryFile string
}

// ClientWorkers contains background task periods.
type ClientWorkers struct {
	// PollInterval is the inbox poll period.
	PollInterval time.Duration
	// PresenceInterval is the presence refresh period.
	PresenceInterval time.Duration
	// DirectoryInterval is the directory refresh period.
	DirectoryInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains local persistence settings.
	Storage ClientStorage
	// Workers contains background task settings.
	Workers ClientWorkers
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (first source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetClientConfig builds a client config view from the merged structured
// configuration, fills in defaults for anything unset, and validates the
// result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			HistoryFile: cfg.Storage.HistoryFile,
		},
		Workers: ClientWorkers{
			PollInterval:      cfg.Workers.PollInterval,
			PresenceInterval:  cfg.Workers.PresenceInterval,
			DirectoryInterval: cfg.Workers.DirectoryInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultServerAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.PollInterval == 0 {
		cfg.Workers.PollInterval = DefaultPollInterval
	}
	if cfg.Workers.PresenceInterval == 0 {
		cfg.Workers.PresenceInterval = DefaultPresenceInterval
	}
	if cfg.Workers.DirectoryInterval == 0 {
		cfg.Workers.DirectoryInterval = DefaultDirectoryInterval
	}
}
