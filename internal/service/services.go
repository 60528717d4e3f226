package service

import (
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/keystore"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

type Services struct {
	KeyManager       KeyManager
	SecretStore      SecretStore
	AccessGate       AccessGate
	SignatureService SignatureService
	AppInfoService   AppInfoService

	module keystore.Module
}

// NewServices opens the key module over storages and assembles the
// services. Every service is decorated with metrics; key and secret
// services are validated before anything else runs.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	return newServices(storages, cfg, crypto.NewKeyWrapper(), m, logger)
}

func newServices(storages *store.Storages, cfg config.StructuredConfig, wrapper crypto.KeyWrapper, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	module, err := keystore.NewModule([]byte(cfg.App.MasterPassphrase), wrapper, storages.KeyMaterialRepository)
	if err != nil {
		return nil, fmt.Errorf("error opening key module: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		_ = module.Close()
		return nil, err
	}

	gate := NewAccessGateMetricsService(m).Wrap(
		NewAccessGate(storages.ProofRevocationRepository, cfg.Gate, cfg.App.HashKey, logger),
	)

	keyManager := NewKeyManagerValidationService().Wrap(
		NewKeyManagerMetricsService(m).Wrap(
			NewKeyManager(storages.KeyRepository, module, logger),
		),
	)

	secretStore := NewSecretStoreValidationService().Wrap(
		NewSecretStoreMetricsService(m).Wrap(
			NewSecretStore(storages.KeyRepository, storages.SecretRepository, module, gate, logger),
		),
	)

	signatures := NewSignatureMetricsService(m).Wrap(
		NewSignatureService(storages.KeyRepository, module, gate, logger),
	)

	return &Services{
		KeyManager:       keyManager,
		SecretStore:      secretStore,
		AccessGate:       gate,
		SignatureService: signatures,
		AppInfoService:   appInfo,
		module:           module,
	}, nil
}

// Close wipes all key material held in memory.
func (s *Services) Close() error {
	if s.module == nil {
		return nil
	}
	return s.module.Close()
}
