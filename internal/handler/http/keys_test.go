package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
)

func TestCreateKey(t *testing.T) {
	f := newHandlerFixture(t)
	policy := models.AccessPolicy{RequireAuthentication: true}
	handle := models.KeyHandle{ID: "db", Algorithm: models.AES256GCM, Policy: policy, Fingerprint: "fp"}

	f.keys.EXPECT().CreateKey(gomock.Any(), "db", models.AES256GCM, policy).Return(handle, nil)
	f.keys.EXPECT().CreateKey(gomock.Any(), "db", models.AES256GCM, policy).Return(models.KeyHandle{}, service.ErrDuplicateKey)

	req := models.CreateKeyRequest{ID: "db", Algorithm: models.AES256GCM, Policy: policy}

	resp, body := f.do(t, http.MethodPost, "/api/keys", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var got models.KeyHandle
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "db", got.ID)
	assert.Equal(t, "fp", got.Fingerprint)

	resp, _ = f.do(t, http.MethodPost, "/api/keys", req)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/api/keys", "not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListKeys_EmptyIsArray(t *testing.T) {
	f := newHandlerFixture(t)
	f.keys.EXPECT().ListKeys(gomock.Any()).Return(nil, nil)

	resp, body := f.do(t, http.MethodGet, "/api/keys", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestGetKey(t *testing.T) {
	f := newHandlerFixture(t)
	f.keys.EXPECT().GetKey(gomock.Any(), "db").Return(models.KeyHandle{ID: "db", Algorithm: models.ChaCha20Poly1305}, nil)

	resp, body := f.do(t, http.MethodGet, "/api/keys/db", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.KeyHandle
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, models.ChaCha20Poly1305, got.Algorithm)
}

func TestDeleteKey(t *testing.T) {
	f := newHandlerFixture(t)
	f.keys.EXPECT().DeleteKey(gomock.Any(), "db").Return(nil)

	resp, body := f.do(t, http.MethodDelete, "/api/keys/db", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
}

func TestUpdatePolicy(t *testing.T) {
	f := newHandlerFixture(t)
	policy := models.AccessPolicy{AllowedPurposes: []models.Purpose{models.PurposeDecrypt}}

	f.keys.EXPECT().UpdatePolicy(gomock.Any(), "db", policy).Return(models.KeyHandle{ID: "db", Policy: policy}, nil)

	resp, body := f.do(t, http.MethodPut, "/api/keys/db/policy", policy)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.KeyHandle
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, policy, got.Policy)
}

func TestSeal(t *testing.T) {
	f := newHandlerFixture(t)
	sealed := models.SealedSecret{ID: "s1", KeyID: "db", Algorithm: models.AES256GCM, Ciphertext: []byte{1, 2, 3}}

	f.secrets.EXPECT().Seal(gomock.Any(), models.KeyHandle{ID: "db"}, []byte("secret"), []byte("ctx")).Return(sealed, nil)
	f.secrets.EXPECT().Seal(gomock.Any(), models.KeyHandle{ID: "gated"}, gomock.Any(), gomock.Any()).
		Return(models.SealedSecret{}, service.ErrPolicyViolation)

	resp, body := f.do(t, http.MethodPost, "/api/keys/db/seal", models.SealRequest{
		Plaintext:      []byte("secret"),
		AssociatedData: []byte("ctx"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got models.SealedSecret
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, sealed.Ciphertext, got.Ciphertext)

	resp, _ = f.do(t, http.MethodPost, "/api/keys/gated/seal", models.SealRequest{Plaintext: []byte("x")})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSignAndVerify(t *testing.T) {
	f := newHandlerFixture(t)
	handle := models.KeyHandle{ID: "signer"}

	f.signatures.EXPECT().Sign(gomock.Any(), handle, []byte("doc")).Return([]byte("sig"), nil)
	f.signatures.EXPECT().Verify(gomock.Any(), handle, []byte("doc"), []byte("sig")).Return(true, nil)

	resp, body := f.do(t, http.MethodPost, "/api/keys/signer/sign", models.SignRequest{Data: []byte("doc")})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var signed models.SignResponse
	require.NoError(t, json.Unmarshal(body, &signed))
	assert.Equal(t, []byte("sig"), signed.Signature)

	resp, body = f.do(t, http.MethodPost, "/api/keys/signer/verify", models.VerifyRequest{Data: []byte("doc"), Signature: signed.Signature})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var verified models.VerifyResponse
	require.NoError(t, json.Unmarshal(body, &verified))
	assert.True(t, verified.Valid)
}

func TestListSealed(t *testing.T) {
	f := newHandlerFixture(t)
	f.secrets.EXPECT().ListSealed(gomock.Any(), "db").Return([]models.SealedSecret{{ID: "s1"}, {ID: "s2"}}, nil)
	f.secrets.EXPECT().ListSealed(gomock.Any(), "gone").Return(nil, service.ErrNotFound)

	resp, body := f.do(t, http.MethodGet, "/api/keys/db/secrets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []models.SealedSecret
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Len(t, got, 2)

	resp, _ = f.do(t, http.MethodGet, "/api/keys/gone/secrets", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
