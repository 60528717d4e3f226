package service

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// KeyManager owns key handles. Key material itself stays in the key module.
type KeyManager interface {
	// CreateKey generates a key inside the module. ErrDuplicateKey if id is
	// taken, ErrInvalidDataProvided for a bad id, algorithm or policy.
	CreateKey(ctx context.Context, id string, alg models.Algorithm, policy models.AccessPolicy) (models.KeyHandle, error)

	// GetKey returns ErrNotFound if id is unknown.
	GetKey(ctx context.Context, id string) (models.KeyHandle, error)

	ListKeys(ctx context.Context) ([]models.KeyHandle, error)

	// UpdatePolicy replaces the key's access policy.
	UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy) (models.KeyHandle, error)

	// DeleteKey irreversibly destroys the key and every secret sealed with
	// it. Deleting an unknown key succeeds.
	DeleteKey(ctx context.Context, id string) error
}

// SecretStore seals payloads under a key and opens them again. The proof of
// presence for gated keys is read from the context (see
// utils.WithProofToken).
type SecretStore interface {
	Seal(ctx context.Context, handle models.KeyHandle, plaintext, associatedData []byte) (models.SealedSecret, error)
	Unseal(ctx context.Context, sealed models.SealedSecret) ([]byte, error)

	GetSealed(ctx context.Context, id string) (models.SealedSecret, error)
	ListSealed(ctx context.Context, keyID string) ([]models.SealedSecret, error)
	DeleteSealed(ctx context.Context, id string) error
}

// AccessGate issues and checks time-boxed proofs of user presence.
type AccessGate interface {
	// Authenticate verifies credential and issues a proof token.
	// ErrInvalidCredential on mismatch.
	Authenticate(ctx context.Context, credential string) (models.ProofToken, error)

	// Check reports whether token satisfies policy. token may be nil. An
	// error is returned only when the check itself could not be performed.
	Check(ctx context.Context, policy models.AccessPolicy, token *models.ProofToken) (bool, error)

	// ParseProof validates a compact token. ErrInvalidProof on failure.
	ParseProof(ctx context.Context, raw string) (models.ProofToken, error)

	// Revoke invalidates token before its expiry.
	Revoke(ctx context.Context, token models.ProofToken) error
}

// SignatureService signs with and verifies against asymmetric keys.
type SignatureService interface {
	Sign(ctx context.Context, handle models.KeyHandle, data []byte) ([]byte, error)
	Verify(ctx context.Context, handle models.KeyHandle, data, signature []byte) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
