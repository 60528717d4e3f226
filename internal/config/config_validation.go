// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the settings required to run the server are present.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.HashKey == "" || cfg.App.MasterPassphrase == "" {
		return fmt.Errorf("%w: hash key and master passphrase are required", ErrInvalidAppConfigs)
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Gate.Credential == "" || cfg.Gate.TokenSignKey == "" {
		return fmt.Errorf("%w: credential and token sign key are required", ErrInvalidGateConfigs)
	}
	if cfg.Gate.ProofTTL <= 0 {
		return fmt.Errorf("%w: proof ttl must be positive", ErrInvalidGateConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.PurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
