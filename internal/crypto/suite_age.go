package crypto

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/MKhiriev/go-key-keeper/models"
)

// ageSuite implements [Cipher] with age X25519 recipients. Material is the
// AGE-SECRET-KEY-1... identity string, the public half the age1... recipient.
type ageSuite struct{}

func newAgeSuite() Cipher { return ageSuite{} }

func (ageSuite) Algorithm() models.Algorithm { return models.X25519Age }

func (ageSuite) Generate() ([]byte, []byte, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, nil, fmt.Errorf("generating age keypair: %w", err)
	}

	return []byte(identity.String()), []byte(identity.Recipient().String()), nil
}

func (ageSuite) Seal(material, plaintext, aad []byte) ([]byte, []byte, error) {
	identity, err := parseIdentity(material)
	if err != nil {
		return nil, nil, err
	}

	var out bytes.Buffer
	w, err := age.Encrypt(&out, identity.Recipient())
	if err != nil {
		return nil, nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := w.Write(frame(aad, plaintext)); err != nil {
		return nil, nil, fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, nil, fmt.Errorf("finalizing age encryption: %w", err)
	}

	return nil, out.Bytes(), nil
}

func (ageSuite) Open(material, nonce, ciphertext, aad []byte) ([]byte, error) {
	identity, err := parseIdentity(material)
	if err != nil {
		return nil, err
	}

	if len(nonce) != 0 {
		return nil, fmt.Errorf("%w: age ciphertexts carry no external nonce", ErrInvalidNonce)
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	framed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return unframe(framed, aad)
}

func parseIdentity(material []byte) (*age.X25519Identity, error) {
	identity, err := age.ParseX25519Identity(string(material))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return identity, nil
}

// ParseAgeRecipient validates an age1... public key.
func ParseAgeRecipient(public []byte) error {
	if _, err := age.ParseX25519Recipient(string(public)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return nil
}
