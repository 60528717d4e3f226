package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

// KeyManagerValidationService rejects malformed input before it reaches
// the wrapped KeyManager.
type KeyManagerValidationService struct {
	inner     KeyManager
	validator validators.Validator
}

func NewKeyManagerValidationService() KeyManagerWrapper {
	return &KeyManagerValidationService{
		validator: validators.NewKeyValidator(),
	}
}

func (v *KeyManagerValidationService) CreateKey(ctx context.Context, id string, alg models.Algorithm, policy models.AccessPolicy) (models.KeyHandle, error) {
	req := models.CreateKeyRequest{ID: id, Algorithm: alg, Policy: policy}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.KeyHandle{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateKey(ctx, id, alg, policy)
}

func (v *KeyManagerValidationService) GetKey(ctx context.Context, id string) (models.KeyHandle, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.KeyHandle{}, err
	}

	return v.inner.GetKey(ctx, id)
}

func (v *KeyManagerValidationService) ListKeys(ctx context.Context) ([]models.KeyHandle, error) {
	return v.inner.ListKeys(ctx)
}

// UpdatePolicy checks only the identifier here; the policy depends on the
// key's algorithm and is checked by the wrapped manager.
func (v *KeyManagerValidationService) UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy) (models.KeyHandle, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.KeyHandle{}, err
	}

	return v.inner.UpdatePolicy(ctx, id, policy)
}

func (v *KeyManagerValidationService) DeleteKey(ctx context.Context, id string) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.DeleteKey(ctx, id)
}

func (v *KeyManagerValidationService) Wrap(inner KeyManager) KeyManager {
	v.inner = inner
	return v
}

func (v *KeyManagerValidationService) validateID(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.KeyHandle{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// SecretStoreValidationService rejects malformed input before it reaches
// the wrapped SecretStore.
type SecretStoreValidationService struct {
	inner     SecretStore
	validator validators.Validator
}

func NewSecretStoreValidationService() SecretStoreWrapper {
	return &SecretStoreValidationService{
		validator: validators.NewKeyValidator(),
	}
}

func (v *SecretStoreValidationService) Seal(ctx context.Context, handle models.KeyHandle, plaintext, associatedData []byte) (models.SealedSecret, error) {
	if err := v.validator.Validate(ctx, handle, validators.FieldID); err != nil {
		return models.SealedSecret{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Seal(ctx, handle, plaintext, associatedData)
}

// Unseal only checks the key identifier. A wrong algorithm tag or a missing
// ciphertext is tampering and surfaces as an integrity failure further down.
func (v *SecretStoreValidationService) Unseal(ctx context.Context, sealed models.SealedSecret) ([]byte, error) {
	if err := v.validator.Validate(ctx, sealed, validators.FieldKeyID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Unseal(ctx, sealed)
}

func (v *SecretStoreValidationService) GetSealed(ctx context.Context, id string) (models.SealedSecret, error) {
	if err := validators.ValidateSecretID(id); err != nil {
		return models.SealedSecret{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetSealed(ctx, id)
}

func (v *SecretStoreValidationService) ListSealed(ctx context.Context, keyID string) ([]models.SealedSecret, error) {
	if err := v.validator.Validate(ctx, models.KeyHandle{ID: keyID}, validators.FieldID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListSealed(ctx, keyID)
}

func (v *SecretStoreValidationService) DeleteSealed(ctx context.Context, id string) error {
	if err := validators.ValidateSecretID(id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteSealed(ctx, id)
}

func (v *SecretStoreValidationService) Wrap(inner SecretStore) SecretStore {
	v.inner = inner
	return v
}
