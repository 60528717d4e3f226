package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/keystore"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

type secretStore struct {
	keys    store.KeyRepository
	secrets store.SecretRepository
	module  keystore.Module
	gate    AccessGate

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewSecretStore(keys store.KeyRepository, secrets store.SecretRepository, module keystore.Module, gate AccessGate, logger *logger.Logger) SecretStore {
	return &secretStore{
		keys:    keys,
		secrets: secrets,
		module:  module,
		gate:    gate,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger,
	}
}

// Seal always uses the stored handle, so a policy tightened since the
// caller fetched handle is still enforced.
func (s *secretStore) Seal(ctx context.Context, handle models.KeyHandle, plaintext, associatedData []byte) (models.SealedSecret, error) {
	log := logger.FromContext(ctx)

	current, err := s.currentHandle(ctx, handle.ID)
	if err != nil {
		return models.SealedSecret{}, err
	}

	if err = authorize(ctx, s.gate, current, models.PurposeEncrypt); err != nil {
		log.Warn().Err(err).Str("func", "*secretStore.Seal").Str("key_id", current.ID).Msg("seal refused")
		return models.SealedSecret{}, err
	}

	nonce, ciphertext, err := s.module.Encrypt(ctx, current.ID, plaintext, associatedData)
	if err != nil {
		return models.SealedSecret{}, mapModuleError(current.ID, err)
	}

	sealed := models.SealedSecret{
		ID:             s.ids.Generate(),
		KeyID:          current.ID,
		Algorithm:      current.Algorithm,
		Nonce:          nonce,
		Ciphertext:     ciphertext,
		AssociatedData: associatedData,
		CreatedAt:      s.now().UTC(),
	}

	if err = s.secrets.SaveSecret(ctx, sealed); err != nil {
		log.Err(err).Str("func", "*secretStore.Seal").Msg("error saving sealed secret")
		return models.SealedSecret{}, fmt.Errorf("error saving sealed secret: %w", err)
	}

	log.Debug().Str("func", "*secretStore.Seal").Str("key_id", current.ID).Str("secret_id", sealed.ID).Msg("payload sealed")
	return sealed, nil
}

func (s *secretStore) Unseal(ctx context.Context, sealed models.SealedSecret) ([]byte, error) {
	log := logger.FromContext(ctx)

	current, err := s.currentHandle(ctx, sealed.KeyID)
	if err != nil {
		return nil, err
	}

	if err = authorize(ctx, s.gate, current, models.PurposeDecrypt); err != nil {
		log.Warn().Err(err).Str("func", "*secretStore.Unseal").Str("key_id", current.ID).Msg("unseal refused")
		return nil, err
	}

	if sealed.Algorithm != current.Algorithm {
		return nil, fmt.Errorf("%w: secret is tagged %s but key %q is %s", ErrIntegrity, sealed.Algorithm, current.ID, current.Algorithm)
	}

	plaintext, err := s.module.Decrypt(ctx, current.ID, sealed.Algorithm, sealed.Nonce, sealed.Ciphertext, sealed.AssociatedData)
	if err != nil {
		log.Warn().Err(err).Str("func", "*secretStore.Unseal").Str("key_id", current.ID).Str("secret_id", sealed.ID).Msg("unseal failed")
		return nil, mapModuleError(current.ID, err)
	}

	return plaintext, nil
}

func (s *secretStore) GetSealed(ctx context.Context, id string) (models.SealedSecret, error) {
	sealed, err := s.secrets.GetSecret(ctx, id)
	if isNotFound(err) {
		return models.SealedSecret{}, fmt.Errorf("%w: sealed secret %q", ErrNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretStore.GetSealed").Msg("error getting sealed secret")
		return models.SealedSecret{}, fmt.Errorf("error getting sealed secret: %w", err)
	}

	return sealed, nil
}

func (s *secretStore) ListSealed(ctx context.Context, keyID string) ([]models.SealedSecret, error) {
	if _, err := s.currentHandle(ctx, keyID); err != nil {
		return nil, err
	}

	secrets, err := s.secrets.ListSecrets(ctx, keyID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretStore.ListSealed").Msg("error listing sealed secrets")
		return nil, fmt.Errorf("error listing sealed secrets: %w", err)
	}

	return secrets, nil
}

func (s *secretStore) DeleteSealed(ctx context.Context, id string) error {
	if _, err := s.secrets.DeleteSecret(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretStore.DeleteSealed").Msg("error deleting sealed secret")
		return fmt.Errorf("error deleting sealed secret: %w", err)
	}

	return nil
}

func (s *secretStore) currentHandle(ctx context.Context, keyID string) (models.KeyHandle, error) {
	handle, err := s.keys.GetKey(ctx, keyID)
	if isNotFound(err) {
		return models.KeyHandle{}, fmt.Errorf("%w: key %q", ErrNotFound, keyID)
	}
	if err != nil {
		return models.KeyHandle{}, fmt.Errorf("error getting key: %w", err)
	}

	return handle, nil
}

// mapModuleError translates key module failures into service errors.
func mapModuleError(keyID string, err error) error {
	switch {
	case errors.Is(err, keystore.ErrKeyNotLoaded):
		return fmt.Errorf("%w: key material for %q", ErrNotFound, keyID)
	case errors.Is(err, keystore.ErrDecryptionFailed),
		errors.Is(err, keystore.ErrAlgorithmMismatch):
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	case errors.Is(err, crypto.ErrNotACipher),
		errors.Is(err, crypto.ErrNotASigner):
		return fmt.Errorf("%w: %w", ErrPolicyViolation, err)
	default:
		return fmt.Errorf("key module error: %w", err)
	}
}
