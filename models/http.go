package models

import "time"

// AuthenticateRequest is the body of POST /api/gate/authenticate.
type AuthenticateRequest struct {
	Credential string `json:"credential"`
}

// AuthenticateResponse carries a freshly issued proof token.
type AuthenticateResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateKeyRequest is the body of POST /api/keys.
type CreateKeyRequest struct {
	ID        string       `json:"id"`
	Algorithm Algorithm    `json:"algorithm"`
	Policy    AccessPolicy `json:"policy"`
}

// SealRequest is the body of POST /api/keys/{id}/seal. Byte fields travel
// base64-encoded, as encoding/json does for []byte.
type SealRequest struct {
	Plaintext      []byte `json:"plaintext"`
	AssociatedData []byte `json:"associated_data,omitempty"`
}

// UnsealRequest is the body of POST /api/secrets/unseal. Exactly one of
// Secret and Envelope must be set; Envelope is a base64 CBOR envelope.
type UnsealRequest struct {
	Secret   *SealedSecret `json:"secret,omitempty"`
	Envelope string        `json:"envelope,omitempty"`
}

// UnsealResponse carries recovered plaintext.
type UnsealResponse struct {
	Plaintext []byte `json:"plaintext"`
}

// SignRequest is the body of POST /api/keys/{id}/sign.
type SignRequest struct {
	Data []byte `json:"data"`
}

// SignResponse carries a signature.
type SignResponse struct {
	Signature []byte `json:"signature"`
}

// VerifyRequest is the body of POST /api/keys/{id}/verify.
type VerifyRequest struct {
	Data      []byte `json:"data"`
	Signature []byte `json:"signature"`
}

// VerifyResponse reports a verification result.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// EnvelopeResponse carries a base64 CBOR envelope of a sealed secret.
type EnvelopeResponse struct {
	Envelope string `json:"envelope"`
}
