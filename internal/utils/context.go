// Package utils provides general-purpose helpers used across the vault:
// context keys, HMAC hashing, JSON response writing, the resty client
// wrapper, proof token signing and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ProofTokenCtxKey is the key under which the caller's proof of presence is
// stored in the context.
var ProofTokenCtxKey = contextKey("proofToken")

// WithProofToken returns a copy of ctx carrying token. Services read it back
// with ProofTokenFromContext before every gated key operation.
func WithProofToken(ctx context.Context, token models.ProofToken) context.Context {
	return context.WithValue(ctx, ProofTokenCtxKey, token)
}

// ProofTokenFromContext returns the proof token stored in ctx.
//
// ok is false when no token is present or the stored value has an
// unexpected type.
func ProofTokenFromContext(ctx context.Context) (models.ProofToken, bool) {
	token, ok := ctx.Value(ProofTokenCtxKey).(models.ProofToken)
	return token, ok
}
