package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyRepository persists key handles. It never sees key material.
type KeyRepository interface {
	// CreateKey stores a new handle. Returns ErrKeyAlreadyExists on a
	// duplicate identifier.
	CreateKey(ctx context.Context, handle models.KeyHandle) error

	// GetKey returns ErrKeyNotFound when the identifier is unknown.
	GetKey(ctx context.Context, id string) (models.KeyHandle, error)

	// ListKeys returns all handles ordered by identifier.
	ListKeys(ctx context.Context) ([]models.KeyHandle, error)

	// UpdatePolicy replaces the access policy. Returns ErrKeyNotFound when
	// the identifier is unknown.
	UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy, updatedAt time.Time) error

	// DeleteKey removes the handle and every sealed secret produced with it
	// in one transaction. deleted is false when nothing matched.
	DeleteKey(ctx context.Context, id string) (deleted bool, err error)
}

// KeyMaterialRepository persists wrapped key material for the key module.
type KeyMaterialRepository interface {
	// SaveWrappedKey returns ErrKeyAlreadyExists on a duplicate key id.
	SaveWrappedKey(ctx context.Context, wrapped models.WrappedKey) error

	// GetWrappedKey returns ErrKeyNotFound when no material is stored.
	GetWrappedKey(ctx context.Context, keyID string) (models.WrappedKey, error)

	// DeleteWrappedKey is a no-op when nothing is stored.
	DeleteWrappedKey(ctx context.Context, keyID string) error
}

// SecretRepository persists sealed secrets.
type SecretRepository interface {
	SaveSecret(ctx context.Context, secret models.SealedSecret) error

	// GetSecret returns ErrSealedSecretNotFound when the id is unknown.
	GetSecret(ctx context.Context, id string) (models.SealedSecret, error)

	// ListSecrets returns the secrets sealed with keyID, oldest first.
	ListSecrets(ctx context.Context, keyID string) ([]models.SealedSecret, error)

	DeleteSecret(ctx context.Context, id string) (deleted bool, err error)
}

// ProofRevocationRepository remembers revoked proof tokens until they expire.
type ProofRevocationRepository interface {
	// Revoke is idempotent.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, jti string) (bool, error)

	// PurgeExpired removes revocations whose token expired before now and
	// returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
