// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keystore implements the secure key module: an HSM-like holder of
// key material.
//
// Material is generated inside the module and kept in locked memory
// ([secret.Buffer]). At rest it is wrapped with a key-encryption key derived
// from the master passphrase (Argon2id, per-key salt) and stored through a
// [store.KeyMaterialRepository]. Keys missing from memory are unwrapped
// lazily on first use. One mutex serialises every module operation.
package keystore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/secret"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/models"
)

type entry struct {
	alg      models.Algorithm
	material *secret.Buffer
	public   []byte
}

type module struct {
	mu         sync.Mutex
	keys       map[string]*entry
	passphrase *secret.Buffer
	wrapper    crypto.KeyWrapper
	repo       store.KeyMaterialRepository
	closed     bool
}

// NewModule creates a module whose at-rest material is wrapped under
// passphrase. The passphrase bytes are moved into locked memory and zeroed
// in the caller's slice.
func NewModule(passphrase []byte, wrapper crypto.KeyWrapper, repo store.KeyMaterialRepository) (Module, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}

	buf, err := secret.NewFromBytes(passphrase)
	if err != nil {
		return nil, fmt.Errorf("error protecting master passphrase: %w", err)
	}

	return &module{
		keys:       make(map[string]*entry),
		passphrase: buf,
		wrapper:    wrapper,
		repo:       repo,
	}, nil
}

func (m *module) Generate(ctx context.Context, keyID string, alg models.Algorithm) ([]byte, error) {
	log := logger.FromContext(ctx)

	suite, err := crypto.SuiteFor(alg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrModuleClosed
	}
	if _, ok := m.keys[keyID]; ok {
		return nil, ErrKeyExists
	}

	material, public, err := suite.Generate()
	if err != nil {
		log.Err(err).Str("func", "*module.Generate").Str("algorithm", string(alg)).Msg("error generating key material")
		return nil, fmt.Errorf("error generating key material: %w", err)
	}
	defer secret.Wipe(material)

	salt, err := m.wrapper.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	kek, err := m.deriveKEK(salt)
	if err != nil {
		return nil, err
	}
	wrapped, err := m.wrapper.Wrap(material, kek, keyID)
	secret.Wipe(kek)
	if err != nil {
		log.Err(err).Str("func", "*module.Generate").Msg("error wrapping key material")
		return nil, fmt.Errorf("error wrapping key material: %w", err)
	}

	err = m.repo.SaveWrappedKey(ctx, models.WrappedKey{
		KeyID:     keyID,
		Algorithm: alg,
		Salt:      salt,
		Material:  wrapped,
		PublicKey: public,
	})
	if errors.Is(err, store.ErrKeyAlreadyExists) {
		return nil, ErrKeyExists
	}
	if err != nil {
		return nil, fmt.Errorf("error saving wrapped key: %w", err)
	}

	buf, err := secret.NewFromBytes(material)
	if err != nil {
		return nil, fmt.Errorf("error protecting key material: %w", err)
	}
	m.keys[keyID] = &entry{alg: alg, material: buf, public: public}

	log.Debug().Str("func", "*module.Generate").Str("key_id", keyID).Bool("mlocked", buf.Locked()).Msg("key material generated")
	return public, nil
}

func (m *module) Encrypt(ctx context.Context, keyID string, plaintext, aad []byte) ([]byte, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.load(ctx, keyID)
	if err != nil {
		return nil, nil, err
	}

	c, err := crypto.CipherFor(e.alg)
	if err != nil {
		return nil, nil, err
	}

	var nonce, ciphertext []byte
	err = e.material.Use(func(key []byte) error {
		var sealErr error
		nonce, ciphertext, sealErr = c.Seal(key, plaintext, aad)
		return sealErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*module.Encrypt").Str("key_id", keyID).Msg("error sealing payload")
		return nil, nil, err
	}

	return nonce, ciphertext, nil
}

func (m *module) Decrypt(ctx context.Context, keyID string, alg models.Algorithm, nonce, ciphertext, aad []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.load(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if e.alg != alg {
		return nil, fmt.Errorf("%w: key is %s, payload is %s", ErrAlgorithmMismatch, e.alg, alg)
	}

	c, err := crypto.CipherFor(e.alg)
	if err != nil {
		return nil, err
	}

	var plaintext []byte
	err = e.material.Use(func(key []byte) error {
		var openErr error
		plaintext, openErr = c.Open(key, nonce, ciphertext, aad)
		return openErr
	})
	if errors.Is(err, crypto.ErrAuthentication) || errors.Is(err, crypto.ErrInvalidNonce) {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

func (m *module) Sign(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.load(ctx, keyID)
	if err != nil {
		return nil, err
	}

	signer, err := crypto.SignerFor(e.alg)
	if err != nil {
		return nil, err
	}

	var signature []byte
	err = e.material.Use(func(key []byte) error {
		var signErr error
		signature, signErr = signer.Sign(key, data)
		return signErr
	})
	if err != nil {
		return nil, err
	}

	return signature, nil
}

func (m *module) Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.load(ctx, keyID)
	if err != nil {
		return false, err
	}

	signer, err := crypto.SignerFor(e.alg)
	if err != nil {
		return false, err
	}

	return signer.Verify(e.public, data, signature)
}

func (m *module) Destroy(ctx context.Context, keyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrModuleClosed
	}

	if e, ok := m.keys[keyID]; ok {
		_ = e.material.Close()
		delete(m.keys, keyID)
	}

	if err := m.repo.DeleteWrappedKey(ctx, keyID); err != nil {
		return fmt.Errorf("error deleting wrapped key: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*module.Destroy").Str("key_id", keyID).Msg("key material destroyed")
	return nil
}

func (m *module) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for id, e := range m.keys {
		errs = append(errs, e.material.Close())
		delete(m.keys, id)
	}
	errs = append(errs, m.passphrase.Close())

	return errors.Join(errs...)
}

// load returns the in-memory entry for keyID, unwrapping it from the
// repository if needed. m.mu must be held.
func (m *module) load(ctx context.Context, keyID string) (*entry, error) {
	if m.closed {
		return nil, ErrModuleClosed
	}
	if e, ok := m.keys[keyID]; ok {
		return e, nil
	}

	log := logger.FromContext(ctx)

	wrapped, err := m.repo.GetWrappedKey(ctx, keyID)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, ErrKeyNotLoaded
	}
	if err != nil {
		return nil, fmt.Errorf("error loading wrapped key: %w", err)
	}

	kek, err := m.deriveKEK(wrapped.Salt)
	if err != nil {
		return nil, err
	}
	material, err := m.wrapper.Unwrap(wrapped.Material, kek, keyID)
	secret.Wipe(kek)
	if err != nil {
		log.Err(err).Str("func", "*module.load").Str("key_id", keyID).Msg("error unwrapping key material")
		return nil, fmt.Errorf("%w: %w", ErrUnwrapFailed, err)
	}

	buf, err := secret.NewFromBytes(material)
	if err != nil {
		secret.Wipe(material)
		return nil, fmt.Errorf("error protecting key material: %w", err)
	}

	e := &entry{alg: wrapped.Algorithm, material: buf, public: wrapped.PublicKey}
	m.keys[keyID] = e

	log.Debug().Str("func", "*module.load").Str("key_id", keyID).Msg("key material unwrapped")
	return e, nil
}

func (m *module) deriveKEK(salt []byte) ([]byte, error) {
	var kek []byte
	err := m.passphrase.Use(func(passphrase []byte) error {
		kek = m.wrapper.DeriveKEK(passphrase, salt)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error deriving key-encryption key: %w", err)
	}

	return kek, nil
}
