package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// proofSubject is the "sub" claim of every proof token. The vault has a
// single user; the claim records what was proven.
const proofSubject = "presence"

// accessGate is the concrete implementation of AccessGate.
//
// The presence credential is never kept in plaintext: only its HMAC under
// the application hash key is stored, and incoming credentials are compared
// against it in constant time.
type accessGate struct {
	revocations store.ProofRevocationRepository

	credentialHash string
	hashKey        string

	// tokenSignKey signs and verifies proof tokens (HS256).
	tokenSignKey string
	tokenIssuer  string
	proofTTL     time.Duration

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewAccessGate builds a gate from the gate settings and the application
// hash key.
func NewAccessGate(revocations store.ProofRevocationRepository, cfg config.Gate, hashKey string, logger *logger.Logger) AccessGate {
	return &accessGate{
		revocations:    revocations,
		credentialHash: utils.HashString(cfg.Credential, hashKey),
		hashKey:        hashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		proofTTL:       cfg.ProofTTL,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (g *accessGate) Authenticate(ctx context.Context, credential string) (models.ProofToken, error) {
	log := logger.FromContext(ctx)

	if credential == "" {
		return models.ProofToken{}, fmt.Errorf("%w: empty credential", ErrInvalidDataProvided)
	}

	if !utils.EqualHash(utils.HashString(credential, g.hashKey), g.credentialHash) {
		log.Warn().Str("func", "*accessGate.Authenticate").Msg("wrong presence credential")
		return models.ProofToken{}, ErrInvalidCredential
	}

	token, err := utils.GenerateProofToken(g.tokenIssuer, proofSubject, g.ids.Generate(), g.now(), g.proofTTL, g.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*accessGate.Authenticate").Msg("error generating proof token")
		return models.ProofToken{}, fmt.Errorf("error generating proof token: %w", err)
	}

	log.Info().Str("func", "*accessGate.Authenticate").Str("jti", token.ID).Time("expires_at", token.Expiry()).Msg("presence proven")
	return token, nil
}

func (g *accessGate) Check(ctx context.Context, policy models.AccessPolicy, token *models.ProofToken) (bool, error) {
	if !policy.RequireAuthentication {
		return true, nil
	}

	log := logger.FromContext(ctx)

	if token == nil || token.SignedString == "" {
		log.Debug().Str("func", "*accessGate.Check").Msg("no proof of presence supplied")
		return false, nil
	}

	now := g.now()
	parsed, err := utils.ValidateAndParseProofToken(token.SignedString, g.tokenSignKey, g.tokenIssuer, now)
	if err != nil {
		log.Debug().Err(err).Str("func", "*accessGate.Check").Msg("proof of presence rejected")
		return false, nil
	}

	revoked, err := g.revocations.IsRevoked(ctx, parsed.ID)
	if err != nil {
		log.Err(err).Str("func", "*accessGate.Check").Msg("error checking proof revocation")
		return false, fmt.Errorf("error checking proof revocation: %w", err)
	}
	if revoked {
		log.Debug().Str("func", "*accessGate.Check").Str("jti", parsed.ID).Msg("proof of presence revoked")
		return false, nil
	}

	if validity := policy.AuthValidity.Std(); validity > 0 && now.Sub(parsed.AuthenticatedAt()) > validity {
		log.Debug().Str("func", "*accessGate.Check").
			Time("authenticated_at", parsed.AuthenticatedAt()).
			Dur("auth_validity", validity).
			Msg("proof of presence too old for policy")
		return false, nil
	}

	return true, nil
}

func (g *accessGate) ParseProof(ctx context.Context, raw string) (models.ProofToken, error) {
	token, err := utils.ValidateAndParseProofToken(raw, g.tokenSignKey, g.tokenIssuer, g.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*accessGate.ParseProof").Msg("invalid proof token")
		return models.ProofToken{}, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}

	return token, nil
}

func (g *accessGate) Revoke(ctx context.Context, token models.ProofToken) error {
	parsed, err := g.ParseProof(ctx, token.SignedString)
	if err != nil {
		return err
	}

	if err = g.revocations.Revoke(ctx, parsed.ID, parsed.Expiry()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessGate.Revoke").Msg("error revoking proof token")
		return fmt.Errorf("error revoking proof token: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*accessGate.Revoke").Str("jti", parsed.ID).Msg("proof of presence revoked")
	return nil
}

// authorize enforces purpose and presence for a gated operation on handle.
func authorize(ctx context.Context, gate AccessGate, handle models.KeyHandle, purpose models.Purpose) error {
	if !handle.Algorithm.Supports(purpose) || !handle.Policy.Allows(purpose) {
		return fmt.Errorf("%w: key %q may not be used to %s", ErrPolicyViolation, handle.ID, purpose)
	}

	var token *models.ProofToken
	if t, ok := utils.ProofTokenFromContext(ctx); ok {
		token = &t
	}

	allowed, err := gate.Check(ctx, handle.Policy, token)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: valid proof of presence required for key %q", ErrPolicyViolation, handle.ID)
	}

	return nil
}

// isNotFound reports whether err is any repository "not found" error.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrKeyNotFound) || errors.Is(err, store.ErrSealedSecretNotFound)
}
