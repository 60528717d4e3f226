package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the connection settings of the CLI.
type ClientAdapter struct {
	// HTTPAddress is the server base URL, e.g. "http://localhost:8080".
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the subset of configuration the command-line client needs.
type ClientConfig struct {
	Adapter ClientAdapter
	Version string

	// HashKey verifies the HashSHA256 header of server responses. Empty
	// disables verification.
	HashKey string
}

// GetClientConfig loads the client configuration from the environment, an
// optional JSON file named by CONFIG, and defaults. Command-line flags are
// owned by the CLI itself and override the result there.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withEnv()
	b.validate = nil

	cfg, err := b.withJSON().withDefaults().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Version: cfg.App.Version,
		HashKey: cfg.App.HashKey,
	}

	return clientCfg, clientCfg.validate()
}
