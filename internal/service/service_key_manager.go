// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

// keyManager is the concrete implementation of KeyManager. Handles live in
// the KeyRepository; material is created and destroyed by the module.
type keyManager struct {
	keys      store.KeyRepository
	module    keystore.Module
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewKeyManager(keys store.KeyRepository, module keystore.Module, logger *logger.Logger) KeyManager {
	return &keyManager{
		keys:      keys,
		module:    module,
		validator: validators.NewKeyValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// CreateKey generates material inside the module first; the material's
// primary key guards against concurrent creation of the same identifier.
// If the handle cannot be stored afterwards the material is destroyed again.
func (k *keyManager) CreateKey(ctx context.Context, id string, alg models.Algorithm, policy models.AccessPolicy) (models.KeyHandle, error) {
	log := logger.FromContext(ctx)

	if err := k.validator.Validate(ctx, models.KeyHandle{ID: id, Algorithm: alg, Policy: policy}, validators.FieldAlgorithm); err != nil {
		return models.KeyHandle{}, fmt.Errorf("%w: %w: %w", ErrInvalidDataProvided, ErrUnsupportedAlgorithm, err)
	}

	public, err := k.module.Generate(ctx, id, alg)
	if errors.Is(err, keystore.ErrKeyExists) {
		log.Warn().Str("func", "*keyManager.CreateKey").Str("key_id", id).Msg("key already exists")
		return models.KeyHandle{}, fmt.Errorf("%w: %q", ErrDuplicateKey, id)
	}
	if errors.Is(err, crypto.ErrUnsupportedAlgorithm) {
		return models.KeyHandle{}, fmt.Errorf("%w: %w: %w", ErrInvalidDataProvided, ErrUnsupportedAlgorithm, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*keyManager.CreateKey").Str("key_id", id).Msg("error generating key")
		return models.KeyHandle{}, fmt.Errorf("error generating key: %w", err)
	}

	now := k.now().UTC()
	handle := models.KeyHandle{
		ID:          id,
		Algorithm:   alg,
		Policy:      policy,
		PublicKey:   public,
		Fingerprint: crypto.Fingerprint(alg, id, public),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = k.keys.CreateKey(ctx, handle); err != nil {
		if destroyErr := k.module.Destroy(ctx, id); destroyErr != nil {
			log.Err(destroyErr).Str("func", "*keyManager.CreateKey").Str("key_id", id).Msg("error destroying orphaned key material")
		}
		if errors.Is(err, store.ErrKeyAlreadyExists) {
			return models.KeyHandle{}, fmt.Errorf("%w: %q", ErrDuplicateKey, id)
		}
		log.Err(err).Str("func", "*keyManager.CreateKey").Str("key_id", id).Msg("error saving key handle")
		return models.KeyHandle{}, fmt.Errorf("error saving key handle: %w", err)
	}

	log.Info().Str("func", "*keyManager.CreateKey").
		Str("key_id", id).
		Str("algorithm", string(alg)).
		Str("fingerprint", handle.Fingerprint).
		Msg("key created")
	return handle, nil
}

func (k *keyManager) GetKey(ctx context.Context, id string) (models.KeyHandle, error) {
	handle, err := k.keys.GetKey(ctx, id)
	if isNotFound(err) {
		return models.KeyHandle{}, fmt.Errorf("%w: key %q", ErrNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyManager.GetKey").Msg("error getting key")
		return models.KeyHandle{}, fmt.Errorf("error getting key: %w", err)
	}

	return handle, nil
}

func (k *keyManager) ListKeys(ctx context.Context) ([]models.KeyHandle, error) {
	handles, err := k.keys.ListKeys(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyManager.ListKeys").Msg("error listing keys")
		return nil, fmt.Errorf("error listing keys: %w", err)
	}

	return handles, nil
}

func (k *keyManager) UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy) (models.KeyHandle, error) {
	log := logger.FromContext(ctx)

	handle, err := k.GetKey(ctx, id)
	if err != nil {
		return models.KeyHandle{}, err
	}

	handle.Policy = policy
	if err = k.validator.Validate(ctx, handle, validators.FieldPolicy); err != nil {
		return models.KeyHandle{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	handle.UpdatedAt = k.now().UTC()
	err = k.keys.UpdatePolicy(ctx, id, policy, handle.UpdatedAt)
	if isNotFound(err) {
		return models.KeyHandle{}, fmt.Errorf("%w: key %q", ErrNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*keyManager.UpdatePolicy").Str("key_id", id).Msg("error updating policy")
		return models.KeyHandle{}, fmt.Errorf("error updating policy: %w", err)
	}

	log.Info().Str("func", "*keyManager.UpdatePolicy").
		Str("key_id", id).
		Bool("require_authentication", policy.RequireAuthentication).
		Msg("access policy updated")
	return handle, nil
}

func (k *keyManager) DeleteKey(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	deleted, err := k.keys.DeleteKey(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*keyManager.DeleteKey").Str("key_id", id).Msg("error deleting key handle")
		return fmt.Errorf("error deleting key handle: %w", err)
	}

	// material may exist without a handle after a crash mid-create
	if err = k.module.Destroy(ctx, id); err != nil {
		log.Err(err).Str("func", "*keyManager.DeleteKey").Str("key_id", id).Msg("error destroying key material")
		return fmt.Errorf("error destroying key material: %w", err)
	}

	log.Info().Str("func", "*keyManager.DeleteKey").Str("key_id", id).Bool("existed", deleted).Msg("key deleted")
	return nil
}
