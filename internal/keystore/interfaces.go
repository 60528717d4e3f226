package keystore

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// Module is the secure key module. Key material is generated inside it and
// never leaves it in plaintext; callers address keys by identifier only.
type Module interface {
	// Generate creates and persists fresh material for keyID and returns the
	// public half (nil for symmetric algorithms). It fails with
	// ErrKeyExists when material for keyID is already stored.
	Generate(ctx context.Context, keyID string, alg models.Algorithm) (public []byte, err error)

	// Encrypt seals plaintext with the key, authenticating aad.
	Encrypt(ctx context.Context, keyID string, plaintext, aad []byte) (nonce, ciphertext []byte, err error)

	// Decrypt opens a payload produced by Encrypt. alg must match the key's
	// algorithm. Tampering yields ErrDecryptionFailed.
	Decrypt(ctx context.Context, keyID string, alg models.Algorithm, nonce, ciphertext, aad []byte) ([]byte, error)

	Sign(ctx context.Context, keyID string, data []byte) ([]byte, error)
	Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error)

	// Destroy zeroes the key's material and removes its wrapped copy.
	// Destroying an unknown key is not an error.
	Destroy(ctx context.Context, keyID string) error

	// Close zeroes every loaded key. The module is unusable afterwards.
	Close() error
}
