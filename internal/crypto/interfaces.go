package crypto

import "github.com/MKhiriev/go-key-keeper/models"

// KeyWrapper protects key material at rest. The scheme is:
//
//	Salt     = GenerateSalt()                    per key
//	KEK      = DeriveKEK(passphrase, salt)       Argon2id
//	Wrapped  = Wrap(material, KEK)               AES-256-GCM, nonce ‖ ciphertext
//	Material = Unwrap(Wrapped, KEK)
type KeyWrapper interface {
	// GenerateSalt returns 16 random bytes. The salt is stored next to the
	// wrapped material and is not secret.
	GenerateSalt() ([]byte, error)

	// DeriveKEK derives a 256-bit key-encryption key from passphrase and salt.
	DeriveKEK(passphrase, salt []byte) []byte

	// Wrap encrypts material under kek, binding keyID as associated data so a
	// wrapped blob cannot be swapped between keys.
	Wrap(material, kek []byte, keyID string) ([]byte, error)

	// Unwrap reverses Wrap. It fails with [ErrAuthentication] when kek or
	// keyID do not match or the blob was modified.
	Unwrap(wrapped, kek []byte, keyID string) ([]byte, error)
}

// Suite is the algorithm-specific part of key handling.
type Suite interface {
	// Algorithm returns the tag this suite implements.
	Algorithm() models.Algorithm

	// Generate creates fresh key material. public is nil for symmetric
	// algorithms.
	Generate() (material, public []byte, err error)
}

// Cipher is a [Suite] able to seal and open payloads.
type Cipher interface {
	Suite

	// Seal encrypts plaintext and authenticates aad. nonce is empty for
	// algorithms whose ciphertext format carries its own.
	Seal(material, plaintext, aad []byte) (nonce, ciphertext []byte, err error)

	// Open decrypts and verifies. Any tampering yields [ErrAuthentication]
	// or [ErrInvalidNonce].
	Open(material, nonce, ciphertext, aad []byte) ([]byte, error)
}

// Signer is a [Suite] able to sign and verify.
type Signer interface {
	Suite

	Sign(material, data []byte) ([]byte, error)

	// Verify reports whether signature is valid for data under public.
	Verify(public, data, signature []byte) (bool, error)
}
