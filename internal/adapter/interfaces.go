// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the vault's REST API.
//
// [ServerAdapter] hides the transport from the CLI. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrIntegrity] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running vault. Calls made after a successful
// Authenticate carry the proof token in the Authorization header.
type ServerAdapter interface {
	// SetToken stores the proof token attached to subsequent requests.
	SetToken(token string)
	Token() string

	// Authenticate proves presence and stores the returned token.
	Authenticate(ctx context.Context, credential string) (models.AuthenticateResponse, error)

	// Revoke invalidates the stored token on the server and forgets it.
	Revoke(ctx context.Context) error

	CreateKey(ctx context.Context, req models.CreateKeyRequest) (models.KeyHandle, error)
	GetKey(ctx context.Context, id string) (models.KeyHandle, error)
	ListKeys(ctx context.Context) ([]models.KeyHandle, error)
	UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy) (models.KeyHandle, error)
	DeleteKey(ctx context.Context, id string) error

	Seal(ctx context.Context, keyID string, plaintext, associatedData []byte) (models.SealedSecret, error)

	// Unseal sends either a sealed secret or an exported envelope.
	Unseal(ctx context.Context, req models.UnsealRequest) ([]byte, error)

	Sign(ctx context.Context, keyID string, data []byte) ([]byte, error)
	Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error)

	GetSealed(ctx context.Context, id string) (models.SealedSecret, error)
	ListSealed(ctx context.Context, keyID string) ([]models.SealedSecret, error)
	DeleteSealed(ctx context.Context, id string) error

	// ExportSealed returns the base64 envelope of a sealed secret.
	ExportSealed(ctx context.Context, id string) (string, error)

	ServerVersion(ctx context.Context) (string, error)
}
