package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/MKhiriev/go-key-keeper/models"
)

const secretboxNonceSize = 24

// secretboxSuite implements [Cipher] with NaCl secretbox
// (XSalsa20-Poly1305). Associated data is bound through framing.
type secretboxSuite struct{}

func newSecretboxSuite() Cipher { return secretboxSuite{} }

func (secretboxSuite) Algorithm() models.Algorithm { return models.XSalsa20Poly1305 }

func (secretboxSuite) Generate() ([]byte, []byte, error) {
	key := make([]byte, symmetricKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, nil, fmt.Errorf("generate secretbox key: %w", err)
	}
	return key, nil, nil
}

func (secretboxSuite) Seal(material, plaintext, aad []byte) ([]byte, []byte, error) {
	key, err := secretboxKey(material)
	if err != nil {
		return nil, nil, err
	}

	var nonce [secretboxNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := secretbox.Seal(nil, frame(aad, plaintext), &nonce, key)
	return nonce[:], ciphertext, nil
}

func (secretboxSuite) Open(material, nonce, ciphertext, aad []byte) ([]byte, error) {
	key, err := secretboxKey(material)
	if err != nil {
		return nil, err
	}

	if len(nonce) != secretboxNonceSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidNonce, secretboxNonceSize, len(nonce))
	}

	var n [secretboxNonceSize]byte
	copy(n[:], nonce)

	framed, ok := secretbox.Open(nil, ciphertext, &n, key)
	if !ok {
		return nil, ErrAuthentication
	}

	return unframe(framed, aad)
}

func secretboxKey(material []byte) (*[symmetricKeySize]byte, error) {
	if len(material) != symmetricKeySize {
		return nil, fmt.Errorf("%w: secretbox needs a %d-byte key", ErrInvalidKey, symmetricKeySize)
	}

	var key [symmetricKeySize]byte
	copy(key[:], material)
	return &key, nil
}
