package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-key-keeper/models"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateProofToken creates a signed HMAC-SHA256 JWT proving user presence.
//
// Claims:
//   - iss: issuer
//   - sub: subject
//   - jti: id, used for revocation
//   - iat: now, the authentication instant
//   - exp: now + ttl
func GenerateProofToken(issuer, subject, id string, now time.Time, ttl time.Duration, signKey string) (models.ProofToken, error) {
	if issuer == "" || id == "" || ttl <= 0 || signKey == "" {
		return models.ProofToken{}, errors.New("invalid params for generating proof token")
	}

	claims := jwt.RegisteredClaims{
		ID:        id,
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.ProofToken{}, fmt.Errorf("error occurred during signing proof token: %w", err)
	}

	return models.ProofToken{Token: token, RegisteredClaims: claims, SignedString: signed}, nil
}

// ValidateAndParseProofToken verifies the signature (HS256 only), issuer,
// expiry and presence of jti and iat, using now as the current time.
func ValidateAndParseProofToken(tokenString, signKey, issuer string, now time.Time) (models.ProofToken, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.ProofToken{}, fmt.Errorf("error occurred validating and parsing proof token: %w", err)
	}

	if claims.ID == "" || claims.IssuedAt == nil {
		return models.ProofToken{}, errors.New("proof token misses jti or iat claim")
	}

	return models.ProofToken{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
