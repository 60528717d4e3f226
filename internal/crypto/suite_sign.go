package crypto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/models"
)

// ed25519Suite stores the 32-byte seed as material and the raw 32-byte
// public key as the public half.
type ed25519Suite struct{}

func newEd25519Suite() Signer { return ed25519Suite{} }

func (ed25519Suite) Algorithm() models.Algorithm { return models.Ed25519 }

func (ed25519Suite) Generate() ([]byte, []byte, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return private.Seed(), []byte(public), nil
}

func (ed25519Suite) Sign(material, data []byte) ([]byte, error) {
	if len(material) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes", ErrInvalidKey, ed25519.SeedSize)
	}
	return ed25519.Sign(ed25519.NewKeyFromSeed(material), data), nil
}

func (ed25519Suite) Verify(public, data, signature []byte) (bool, error) {
	if len(public) != ed25519.PublicKeySize {
		return false, fmt.Errorf("%w: ed25519 public key must be %d bytes", ErrInvalidKey, ed25519.PublicKeySize)
	}
	return ed25519.Verify(public, data, signature), nil
}

// ecdsaSuite signs SHA-256 digests on P-256. Material is a SEC 1 DER private
// key, the public half a PKIX DER public key. Signatures are ASN.1 DER.
type ecdsaSuite struct{}

func newECDSAP256Suite() Signer { return ecdsaSuite{} }

func (ecdsaSuite) Algorithm() models.Algorithm { return models.ECDSAP256 }

func (ecdsaSuite) Generate() ([]byte, []byte, error) {
	private, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ecdsa key: %w", err)
	}

	material, err := x509.MarshalECPrivateKey(private)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal ecdsa private key: %w", err)
	}

	public, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal ecdsa public key: %w", err)
	}

	return material, public, nil
}

func (ecdsaSuite) Sign(material, data []byte) ([]byte, error) {
	private, err := x509.ParseECPrivateKey(material)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	digest := sha256.Sum256(data)
	signature, err := ecdsa.SignASN1(rand.Reader, private, digest[:])
	if err != nil {
		return nil, fmt.Errorf("ecdsa sign: %w", err)
	}

	return signature, nil
}

func (ecdsaSuite) Verify(public, data, signature []byte) (bool, error) {
	parsed, err := x509.ParsePKIXPublicKey(public)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok || key.Curve != elliptic.P256() {
		return false, fmt.Errorf("%w: not a P-256 public key", ErrInvalidKey)
	}

	digest := sha256.Sum256(data)
	return ecdsa.VerifyASN1(key, digest[:], signature), nil
}
