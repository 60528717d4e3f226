package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-key-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the key identifier.
	FieldID = "id"

	// FieldAlgorithm targets the algorithm tag of a key or sealed secret.
	FieldAlgorithm = "algorithm"

	// FieldPolicy targets the access policy; it is checked against the
	// algorithm's purposes.
	FieldPolicy = "policy"

	// FieldSecretID targets the UUID of a sealed secret.
	FieldSecretID = "secret_id"

	// FieldKeyID targets the originating key identifier of a sealed secret.
	FieldKeyID = "key_id"

	// FieldCiphertext targets the ciphertext of a sealed secret.
	FieldCiphertext = "ciphertext"
)

var keyIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// KeyValidator validates key creation requests, key handles and sealed
// secrets.
type KeyValidator struct {
}

func NewKeyValidator() Validator {
	return &KeyValidator{}
}

// Validate checks obj. With no fields every rule for the type applies;
// otherwise only the named fields are checked.
func (v *KeyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateKeyRequest:
		return v.validateKey(ctx, value.ID, value.Algorithm, value.Policy, fields...)
	case *models.CreateKeyRequest:
		return v.validateKey(ctx, value.ID, value.Algorithm, value.Policy, fields...)

	case models.KeyHandle:
		return v.validateKey(ctx, value.ID, value.Algorithm, value.Policy, fields...)
	case *models.KeyHandle:
		return v.validateKey(ctx, value.ID, value.Algorithm, value.Policy, fields...)

	case models.SealedSecret:
		return v.validateSealedSecret(ctx, value, fields...)
	case *models.SealedSecret:
		return v.validateSealedSecret(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *KeyValidator) validateKey(_ context.Context, id string, alg models.Algorithm, policy models.AccessPolicy, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldAlgorithm, FieldPolicy}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if err := validateKeyID(id); err != nil {
				return err
			}
		case FieldAlgorithm:
			if !alg.IsSupported() {
				return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
			}
		case FieldPolicy:
			if err := validatePolicy(alg, policy); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *KeyValidator) validateSealedSecret(_ context.Context, secret models.SealedSecret, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSecretID, FieldKeyID, FieldAlgorithm, FieldCiphertext}
	}

	for _, field := range fields {
		switch field {
		case FieldSecretID:
			if err := ValidateSecretID(secret.ID); err != nil {
				return err
			}
		case FieldKeyID:
			if err := validateKeyID(secret.KeyID); err != nil {
				return err
			}
		case FieldAlgorithm:
			if !secret.Algorithm.IsSupported() {
				return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, secret.Algorithm)
			}
		case FieldCiphertext:
			if len(secret.Ciphertext) == 0 {
				return ErrEmptyCiphertext
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// ValidateSecretID checks that id is a canonical UUID.
func ValidateSecretID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSecretID, err)
	}
	return nil
}

func validateKeyID(id string) error {
	if !keyIDPattern.MatchString(id) {
		return ErrInvalidKeyID
	}
	return nil
}

func validatePolicy(alg models.Algorithm, policy models.AccessPolicy) error {
	if policy.AuthValidity < 0 {
		return ErrNegativeAuthValidity
	}

	seen := make(map[models.Purpose]struct{}, len(policy.AllowedPurposes))
	for _, p := range policy.AllowedPurposes {
		if !alg.Supports(p) {
			return fmt.Errorf("%w: %s cannot %s", ErrPurposeNotSupported, alg, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePurpose, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}
