// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Algorithm is the tag identifying the cryptographic algorithm bound to a key
// and recorded on every [SealedSecret] produced with that key.
type Algorithm string

const (
	// AES256GCM is AES with a 256-bit key in Galois/Counter Mode.
	AES256GCM Algorithm = "AES-256-GCM"

	// ChaCha20Poly1305 is the IETF ChaCha20-Poly1305 AEAD with a 256-bit key.
	ChaCha20Poly1305 Algorithm = "CHACHA20-POLY1305"

	// XSalsa20Poly1305 is the NaCl secretbox construction.
	XSalsa20Poly1305 Algorithm = "XSALSA20-POLY1305"

	// X25519Age is an age X25519 key pair. Sealing encrypts to the public
	// recipient, unsealing requires the private identity held by the module.
	X25519Age Algorithm = "X25519-AGE"

	// Ed25519 is an Ed25519 signing key pair.
	Ed25519 Algorithm = "ED25519"

	// ECDSAP256 is an ECDSA key pair on NIST P-256 signing SHA-256 digests.
	ECDSAP256 Algorithm = "ECDSA-P256-SHA256"
)

// Purpose is an operation a key may be used for.
type Purpose string

const (
	PurposeEncrypt Purpose = "encrypt"
	PurposeDecrypt Purpose = "decrypt"
	PurposeSign    Purpose = "sign"
	PurposeVerify  Purpose = "verify"
)

// SupportedAlgorithms lists every algorithm the key store can generate.
var SupportedAlgorithms = []Algorithm{
	AES256GCM,
	ChaCha20Poly1305,
	XSalsa20Poly1305,
	X25519Age,
	Ed25519,
	ECDSAP256,
}

// IsSupported reports whether a is one of [SupportedAlgorithms].
func (a Algorithm) IsSupported() bool {
	return slices.Contains(SupportedAlgorithms, a)
}

// IsAsymmetric reports whether keys of this algorithm have a public half.
func (a Algorithm) IsAsymmetric() bool {
	switch a {
	case X25519Age, Ed25519, ECDSAP256:
		return true
	default:
		return false
	}
}

// Purposes returns the full set of purposes keys of this algorithm can serve.
// Unknown algorithms have no purposes.
func (a Algorithm) Purposes() []Purpose {
	switch a {
	case AES256GCM, ChaCha20Poly1305, XSalsa20Poly1305, X25519Age:
		return []Purpose{PurposeEncrypt, PurposeDecrypt}
	case Ed25519, ECDSAP256:
		return []Purpose{PurposeSign, PurposeVerify}
	default:
		return nil
	}
}

// Supports reports whether keys of this algorithm can serve purpose p.
func (a Algorithm) Supports(p Purpose) bool {
	return slices.Contains(a.Purposes(), p)
}
