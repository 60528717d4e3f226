package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-key-keeper/models"
)

const symmetricKeySize = 32

// aeadSuite implements [Cipher] for any standard AEAD with a 256-bit key.
type aeadSuite struct {
	algorithm models.Algorithm
	newAEAD   func(key []byte) (cipher.AEAD, error)
}

func newAESGCMSuite() Cipher {
	return &aeadSuite{algorithm: models.AES256GCM, newAEAD: newGCM}
}

func newChaCha20Poly1305Suite() Cipher {
	return &aeadSuite{algorithm: models.ChaCha20Poly1305, newAEAD: chacha20poly1305.New}
}

func (s *aeadSuite) Algorithm() models.Algorithm { return s.algorithm }

func (s *aeadSuite) Generate() ([]byte, []byte, error) {
	key := make([]byte, symmetricKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, nil, fmt.Errorf("generate %s key: %w", s.algorithm, err)
	}
	return key, nil, nil
}

func (s *aeadSuite) Seal(material, plaintext, aad []byte) ([]byte, []byte, error) {
	aead, err := s.aead(material)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return nonce, aead.Seal(nil, nonce, plaintext, aad), nil
}

func (s *aeadSuite) Open(material, nonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := s.aead(material)
	if err != nil {
		return nil, err
	}

	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidNonce, aead.NonceSize(), len(nonce))
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return plaintext, nil
}

func (s *aeadSuite) aead(material []byte) (cipher.AEAD, error) {
	if len(material) != symmetricKeySize {
		return nil, fmt.Errorf("%w: %s needs a %d-byte key", ErrInvalidKey, s.algorithm, symmetricKeySize)
	}

	aead, err := s.newAEAD(material)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return aead, nil
}
