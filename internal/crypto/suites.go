// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/MKhiriev/go-key-keeper/models"
)

var suites = map[models.Algorithm]Suite{
	models.AES256GCM:        newAESGCMSuite(),
	models.ChaCha20Poly1305: newChaCha20Poly1305Suite(),
	models.XSalsa20Poly1305: newSecretboxSuite(),
	models.X25519Age:        newAgeSuite(),
	models.Ed25519:          newEd25519Suite(),
	models.ECDSAP256:        newECDSAP256Suite(),
}

// SuiteFor returns the suite implementing alg.
func SuiteFor(alg models.Algorithm) (Suite, error) {
	s, ok := suites[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	return s, nil
}

// CipherFor returns the suite implementing alg if it can encrypt.
func CipherFor(alg models.Algorithm) (Cipher, error) {
	s, err := SuiteFor(alg)
	if err != nil {
		return nil, err
	}

	c, ok := s.(Cipher)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotACipher, alg)
	}
	return c, nil
}

// SignerFor returns the suite implementing alg if it can sign.
func SignerFor(alg models.Algorithm) (Signer, error) {
	s, err := SuiteFor(alg)
	if err != nil {
		return nil, err
	}

	signer, ok := s.(Signer)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotASigner, alg)
	}
	return signer, nil
}

// Fingerprint identifies a key without revealing its material: the first
// 16 bytes of BLAKE3(alg ‖ 0 ‖ keyID ‖ 0 ‖ public), hex-encoded.
func Fingerprint(alg models.Algorithm, keyID string, public []byte) string {
	h := blake3.New()
	_, _ = h.Write([]byte(alg))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(keyID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(public)

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}
