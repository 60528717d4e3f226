// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// KeyHandle identifies a key held by the secure key module. It never carries
// private or symmetric key material; only the public half of asymmetric keys
// is exposed.
type KeyHandle struct {
	// ID is the caller-chosen identifier of the key.
	ID string `json:"id"`

	// Algorithm fixes what the key can do and how payloads are sealed.
	Algorithm Algorithm `json:"algorithm"`

	// Policy gates every use of the key.
	Policy AccessPolicy `json:"policy"`

	// PublicKey is the public half of an asymmetric key (age recipient string
	// bytes, raw Ed25519 key, or PKIX-encoded ECDSA key). Nil for symmetric keys.
	PublicKey []byte `json:"public_key,omitempty"`

	// Fingerprint is a hex BLAKE3 digest identifying the key material.
	Fingerprint string `json:"fingerprint"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Purposes returns the purposes the key can currently be used for: the
// algorithm's purposes narrowed by the policy.
func (h KeyHandle) Purposes() []Purpose {
	out := make([]Purpose, 0, 2)
	for _, p := range h.Algorithm.Purposes() {
		if h.Policy.Allows(p) {
			out = append(out, p)
		}
	}
	return out
}

// WrappedKey is the at-rest form of key material: the material encrypted
// under a key-encryption key derived from the master passphrase.
type WrappedKey struct {
	KeyID     string
	Algorithm Algorithm

	// Salt is the Argon2id salt used to derive the wrapping key.
	Salt []byte

	// Material is nonce ‖ AES-256-GCM ciphertext of the private/symmetric key.
	Material []byte

	// PublicKey mirrors [KeyHandle.PublicKey].
	PublicKey []byte
}
