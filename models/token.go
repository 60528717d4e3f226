package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ProofToken is a time-boxed proof of user presence issued by the access
// gate. It is a signed JWT whose "iat" claim records the authentication
// instant and whose "exp" claim bounds its lifetime.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// for claim access.
type ProofToken struct {
	// Token is the parsed or freshly signed JWT. Excluded from JSON because
	// only the compact string form is meaningful outside the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// AuthenticatedAt returns the instant the presence proof was produced, or
// the zero time if the token carries no "iat" claim.
func (t ProofToken) AuthenticatedAt() time.Time {
	if t.IssuedAt == nil {
		return time.Time{}
	}
	return t.IssuedAt.Time
}

// Expiry returns the "exp" claim, or the zero time if absent.
func (t ProofToken) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t ProofToken) String() string {
	return t.SignedString
}
