// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SealedSecret is an encrypted payload tied to the key that produced it.
// It is immutable once written.
type SealedSecret struct {
	// ID is a UUIDv7 assigned when the secret is sealed.
	ID string `json:"id"`

	// KeyID names the originating [KeyHandle].
	KeyID string `json:"key_id"`

	// Algorithm is the algorithm tag of the key at sealing time.
	Algorithm Algorithm `json:"algorithm"`

	// Nonce is the per-seal nonce. Empty for X25519-AGE, whose stream format
	// carries its own.
	Nonce []byte `json:"nonce,omitempty"`

	// Ciphertext includes the authentication tag.
	Ciphertext []byte `json:"ciphertext"`

	// AssociatedData is authenticated but not encrypted. It must be supplied
	// unchanged to unseal.
	AssociatedData []byte `json:"associated_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
