// Package config loads go-key-keeper configuration from environment
// variables (caarlos0/env), command-line flags and an optional JSON file,
// merges them with dario.cat/mergo and fills the gaps with defaults.
package config
