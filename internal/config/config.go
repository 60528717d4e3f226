// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-key-keeper vault. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, hashing key, the master
	// passphrase protecting key material at rest and the log level.
	App App `envPrefix:"APP_"`

	// Gate holds the access gate settings: presence credential and proof
	// token parameters.
	Gate Gate `envPrefix:"GATE_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-wide settings.
type App struct {
	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`

	// HashKey is the HMAC key used to hash the presence credential.
	HashKey string `env:"HASH_KEY"`

	// MasterPassphrase is the input of the Argon2id derivation that produces
	// key-encryption keys for wrapped key material.
	MasterPassphrase string `env:"MASTER_PASSPHRASE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Gate holds access gate settings.
type Gate struct {
	// Credential is the presence credential (PIN or passphrase) the user
	// proves knowledge of when authenticating.
	Credential string `env:"CREDENTIAL"`

	// TokenSignKey is the HMAC-SHA256 key signing proof tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and required in the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// ProofTTL is the lifetime of a freshly issued proof token.
	ProofTTL time.Duration `env:"PROOF_TTL"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is either a PostgreSQL URL (postgres:// or postgresql://) or a
	// SQLite file path / URI.
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the servers.
type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	GRPCAddress    string        `env:"GRPC_ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings used by the CLI to reach the server.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// PurgeInterval is how often expired proof revocations are removed.
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`
}

// GetStructuredConfig loads the server configuration. Sources are merged
// so that the first non-zero value wins, in the order env, flags, JSON file,
// defaults. The result is validated before it is returned.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
