// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope encodes sealed secrets into a portable, self-describing
// CBOR document so they can be exported from one vault instance and unsealed
// later by any instance holding the originating key.
//
// The envelope is a CBOR map with small integer keys, encoded with Core
// Deterministic Encoding (RFC 8949 §4.2): the same secret always yields the
// same bytes.
package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/MKhiriev/go-key-keeper/models"
)

// Version is the only envelope layout understood by this package.
const Version = 1

var (
	ErrMalformed          = errors.New("malformed envelope")
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
)

type document struct {
	Version        uint64 `cbor:"1,keyasint"`
	ID             string `cbor:"2,keyasint"`
	KeyID          string `cbor:"3,keyasint"`
	Algorithm      string `cbor:"4,keyasint"`
	Nonce          []byte `cbor:"5,keyasint,omitempty"`
	Ciphertext     []byte `cbor:"6,keyasint"`
	AssociatedData []byte `cbor:"7,keyasint,omitempty"`
	CreatedAt      int64  `cbor:"8,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("envelope: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		MaxMapPairs: 64,
	}.DecMode()
	if err != nil {
		panic("envelope: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes s as a CBOR envelope.
func Marshal(s models.SealedSecret) ([]byte, error) {
	doc := document{
		Version:        Version,
		ID:             s.ID,
		KeyID:          s.KeyID,
		Algorithm:      string(s.Algorithm),
		Nonce:          s.Nonce,
		Ciphertext:     s.Ciphertext,
		AssociatedData: s.AssociatedData,
		CreatedAt:      s.CreatedAt.Unix(),
	}

	b, err := encMode.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a CBOR envelope. Structural problems are reported as
// [ErrMalformed]; the cryptographic content is not checked here.
func Unmarshal(data []byte) (models.SealedSecret, error) {
	var doc document
	if err := decMode.Unmarshal(data, &doc); err != nil {
		return models.SealedSecret{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if doc.Version != Version {
		return models.SealedSecret{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	if doc.KeyID == "" || doc.Algorithm == "" || len(doc.Ciphertext) == 0 {
		return models.SealedSecret{}, fmt.Errorf("%w: key id, algorithm and ciphertext are required", ErrMalformed)
	}

	return models.SealedSecret{
		ID:             doc.ID,
		KeyID:          doc.KeyID,
		Algorithm:      models.Algorithm(doc.Algorithm),
		Nonce:          doc.Nonce,
		Ciphertext:     doc.Ciphertext,
		AssociatedData: doc.AssociatedData,
		CreatedAt:      time.Unix(doc.CreatedAt, 0).UTC(),
	}, nil
}

// EncodeString returns the envelope of s as standard base64.
func EncodeString(s models.SealedSecret) (string, error) {
	b, err := Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeString reverses EncodeString.
func DecodeString(encoded string) (models.SealedSecret, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return models.SealedSecret{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return Unmarshal(b)
}
