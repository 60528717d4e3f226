package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/keystore"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/models"
)

type signatureService struct {
	keys   store.KeyRepository
	module keystore.Module
	gate   AccessGate

	logger *logger.Logger
}

func NewSignatureService(keys store.KeyRepository, module keystore.Module, gate AccessGate, logger *logger.Logger) SignatureService {
	return &signatureService{
		keys:   keys,
		module: module,
		gate:   gate,
		logger: logger,
	}
}

func (s *signatureService) Sign(ctx context.Context, handle models.KeyHandle, data []byte) ([]byte, error) {
	current, err := s.currentHandle(ctx, handle.ID)
	if err != nil {
		return nil, err
	}

	if err = authorize(ctx, s.gate, current, models.PurposeSign); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*signatureService.Sign").Str("key_id", current.ID).Msg("sign refused")
		return nil, err
	}

	signature, err := s.module.Sign(ctx, current.ID, data)
	if err != nil {
		return nil, mapModuleError(current.ID, err)
	}

	return signature, nil
}

// Verify needs only the public key, so it is not gated by presence and
// never touches the module.
func (s *signatureService) Verify(ctx context.Context, handle models.KeyHandle, data, signature []byte) (bool, error) {
	current, err := s.currentHandle(ctx, handle.ID)
	if err != nil {
		return false, err
	}

	if !current.Algorithm.Supports(models.PurposeVerify) || !current.Policy.Allows(models.PurposeVerify) {
		return false, fmt.Errorf("%w: key %q may not be used to verify", ErrPolicyViolation, current.ID)
	}

	signer, err := crypto.SignerFor(current.Algorithm)
	if err != nil {
		return false, mapModuleError(current.ID, err)
	}

	valid, err := signer.Verify(current.PublicKey, data, signature)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*signatureService.Verify").Str("key_id", current.ID).Msg("error verifying signature")
		return false, fmt.Errorf("error verifying signature: %w", err)
	}

	return valid, nil
}

func (s *signatureService) currentHandle(ctx context.Context, keyID string) (models.KeyHandle, error) {
	handle, err := s.keys.GetKey(ctx, keyID)
	if isNotFound(err) {
		return models.KeyHandle{}, fmt.Errorf("%w: key %q", ErrNotFound, keyID)
	}
	if err != nil {
		return models.KeyHandle{}, fmt.Errorf("error getting key: %w", err)
	}

	return handle, nil
}
