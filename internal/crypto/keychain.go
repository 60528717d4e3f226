// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyWrapper is the private implementation of [KeyWrapper].
type keyWrapper struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyWrapper constructs a [KeyWrapper] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyWrapper() KeyWrapper {
	return NewKeyWrapperWithParams(1, 64*1024, 4)
}

// NewKeyWrapperWithParams constructs a [KeyWrapper] with explicit Argon2id
// cost parameters; memory is in KiB.
func NewKeyWrapperWithParams(time, memory uint32, threads uint8) KeyWrapper {
	return &keyWrapper{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyWrapper].
func (k *keyWrapper) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKEK implements [KeyWrapper].
func (k *keyWrapper) DeriveKEK(passphrase, salt []byte) []byte {
	return argon2.IDKey(
		passphrase,
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Wrap implements [KeyWrapper]. The blob layout is nonce (12 bytes) ‖
// ciphertext.
func (k *keyWrapper) Wrap(material, kek []byte, keyID string) ([]byte, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	wrapped := gcm.Seal(nil, nonce, material, []byte(keyID))
	return append(nonce, wrapped...), nil
}

// Unwrap implements [KeyWrapper].
func (k *keyWrapper) Unwrap(wrapped, kek []byte, keyID string) ([]byte, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(wrapped) < nonceSize {
		return nil, fmt.Errorf("%w: wrapped key too short", ErrInvalidNonce)
	}

	nonce, ciphertext := wrapped[:nonceSize], wrapped[nonceSize:]

	// A failure here almost always means a wrong master passphrase.
	material, err := gcm.Open(nil, nonce, ciphertext, []byte(keyID))
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap key: %w", ErrAuthentication, err)
	}

	return material, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
