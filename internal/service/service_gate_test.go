package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

const (
	testCredential = "4821"
	testHashKey    = "hash-key"
	testSignKey    = "sign-key"
	testIssuer     = "go-key-keeper-test"
)

func testGateConfig() config.Gate {
	return config.Gate{
		Credential:   testCredential,
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
		ProofTTL:     5 * time.Minute,
	}
}

// newTestGate returns the concrete gate so tests can move its clock.
func newTestGate(t *testing.T) (*accessGate, *mock.MockProofRevocationRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	revocations := mock.NewMockProofRevocationRepository(ctrl)
	gate := NewAccessGate(revocations, testGateConfig(), testHashKey, logger.Nop()).(*accessGate)

	return gate, revocations
}

var gatedPolicy = models.AccessPolicy{RequireAuthentication: true}

// ── Authenticate ──────────────────────────────────────────────────────────────

func TestAccessGate_Authenticate(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	_, err := gate.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = gate.Authenticate(ctx, "0000")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	start := time.Now()
	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.WithinDuration(t, start.Add(5*time.Minute), token.Expiry(), 2*time.Second)
}

func TestAccessGate_Authenticate_UniqueTokenIDs(t *testing.T) {
	gate, _ := newTestGate(t)

	first, err := gate.Authenticate(context.Background(), testCredential)
	require.NoError(t, err)
	second, err := gate.Authenticate(context.Background(), testCredential)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

// ── Check ─────────────────────────────────────────────────────────────────────

func TestAccessGate_Check_UngatedPolicyNeedsNoProof(t *testing.T) {
	gate, _ := newTestGate(t)

	ok, err := gate.Check(context.Background(), models.AccessPolicy{}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccessGate_Check_StaleProofOnUngatedPolicy(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)
	gate.now = func() time.Time { return time.Now().Add(time.Hour) }

	for _, proof := range []*models.ProofToken{&token, {SignedString: "garbage"}} {
		ok, err := gate.Check(ctx, models.AccessPolicy{}, proof)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = gate.Check(ctx, gatedPolicy, proof)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestAccessGate_Check_MissingProof(t *testing.T) {
	gate, _ := newTestGate(t)

	ok, err := gate.Check(context.Background(), gatedPolicy, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gate.Check(context.Background(), gatedPolicy, &models.ProofToken{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessGate_Check_ValidProof(t *testing.T) {
	gate, revocations := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)

	revocations.EXPECT().IsRevoked(gomock.Any(), token.ID).Return(false, nil)

	ok, err := gate.Check(ctx, gatedPolicy, &token)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccessGate_Check_ExpiredProof(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)

	gate.now = func() time.Time { return time.Now().Add(6 * time.Minute) }

	ok, err := gate.Check(ctx, gatedPolicy, &token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessGate_Check_ForeignProof(t *testing.T) {
	gate, _ := newTestGate(t)

	foreign, err := utils.GenerateProofToken(testIssuer, "presence", "jti-1", time.Now(), time.Minute, "other-key")
	require.NoError(t, err)

	ok, err := gate.Check(context.Background(), gatedPolicy, &foreign)
	require.NoError(t, err)
	assert.False(t, ok)

	otherIssuer, err := utils.GenerateProofToken("someone-else", "presence", "jti-2", time.Now(), time.Minute, testSignKey)
	require.NoError(t, err)

	ok, err = gate.Check(context.Background(), gatedPolicy, &otherIssuer)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessGate_Check_RevokedProof(t *testing.T) {
	gate, revocations := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)

	revocations.EXPECT().IsRevoked(gomock.Any(), token.ID).Return(true, nil)

	ok, err := gate.Check(ctx, gatedPolicy, &token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessGate_Check_RevocationLookupFails(t *testing.T) {
	gate, revocations := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)

	revocations.EXPECT().IsRevoked(gomock.Any(), token.ID).Return(false, errors.New("db down"))

	ok, err := gate.Check(ctx, gatedPolicy, &token)
	require.Error(t, err)
	assert.False(t, ok)
}

func TestAccessGate_Check_AuthValidity(t *testing.T) {
	gate, revocations := newTestGate(t)
	ctx := context.Background()

	issued := time.Now()
	gate.now = func() time.Time { return issued }
	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)

	revocations.EXPECT().IsRevoked(gomock.Any(), token.ID).Return(false, nil).Times(2)

	policy := models.AccessPolicy{RequireAuthentication: true, AuthValidity: models.Duration(30 * time.Second)}

	gate.now = func() time.Time { return issued.Add(10 * time.Second) }
	ok, err := gate.Check(ctx, policy, &token)
	require.NoError(t, err)
	assert.True(t, ok, "proof within validity window")

	gate.now = func() time.Time { return issued.Add(2 * time.Minute) }
	ok, err = gate.Check(ctx, policy, &token)
	require.NoError(t, err)
	assert.False(t, ok, "proof unexpired but older than the policy allows")
}

// ── ParseProof / Revoke ───────────────────────────────────────────────────────

func TestAccessGate_ParseProof(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	_, err := gate.ParseProof(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidProof)

	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)

	parsed, err := gate.ParseProof(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, token.ID, parsed.ID)
	assert.Equal(t, token.AuthenticatedAt().Unix(), parsed.AuthenticatedAt().Unix())
}

func TestAccessGate_Revoke(t *testing.T) {
	gate, revocations := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Authenticate(ctx, testCredential)
	require.NoError(t, err)

	revocations.EXPECT().
		Revoke(gomock.Any(), token.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, expiresAt time.Time) error {
			assert.Equal(t, token.Expiry().Unix(), expiresAt.Unix())
			return nil
		})

	require.NoError(t, gate.Revoke(ctx, token))

	err = gate.Revoke(ctx, models.ProofToken{SignedString: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidProof)
}

// ── authorize ─────────────────────────────────────────────────────────────────

func TestAuthorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockAccessGate(ctrl)

	aes := models.KeyHandle{ID: "k", Algorithm: models.AES256GCM}
	ctx := context.Background()

	t.Run("purpose outside algorithm", func(t *testing.T) {
		err := authorize(ctx, gate, aes, models.PurposeSign)
		assert.ErrorIs(t, err, ErrPolicyViolation)
	})

	t.Run("purpose outside policy", func(t *testing.T) {
		h := aes
		h.Policy.AllowedPurposes = []models.Purpose{models.PurposeDecrypt}
		err := authorize(ctx, gate, h, models.PurposeEncrypt)
		assert.ErrorIs(t, err, ErrPolicyViolation)
	})

	t.Run("gate refuses", func(t *testing.T) {
		gate.EXPECT().Check(gomock.Any(), aes.Policy, nil).Return(false, nil)
		err := authorize(ctx, gate, aes, models.PurposeEncrypt)
		assert.ErrorIs(t, err, ErrPolicyViolation)
	})

	t.Run("token from context", func(t *testing.T) {
		token := models.ProofToken{SignedString: "t"}
		gate.EXPECT().Check(gomock.Any(), aes.Policy, &token).Return(true, nil)
		err := authorize(utils.WithProofToken(ctx, token), gate, aes, models.PurposeEncrypt)
		assert.NoError(t, err)
	})

	t.Run("gate error", func(t *testing.T) {
		gate.EXPECT().Check(gomock.Any(), aes.Policy, nil).Return(false, assert.AnError)
		err := authorize(ctx, gate, aes, models.PurposeDecrypt)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrPolicyViolation)
	})
}
