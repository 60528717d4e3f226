package http

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

const testHashKey = "response-key"

type handlerFixture struct {
	server *httptest.Server

	keys       *mock.MockKeyManager
	secrets    *mock.MockSecretStore
	gate       *mock.MockAccessGate
	signatures *mock.MockSignatureService
	appInfo    *mock.MockAppInfoService
	metrics    *metrics.Metrics
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	utils.InitHasherPool(testHashKey)

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		keys:       mock.NewMockKeyManager(ctrl),
		secrets:    mock.NewMockSecretStore(ctrl),
		gate:       mock.NewMockAccessGate(ctrl),
		signatures: mock.NewMockSignatureService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
		metrics:    metrics.New(),
	}

	services := &service.Services{
		KeyManager:       f.keys,
		SecretStore:      f.secrets,
		AccessGate:       f.gate,
		SignatureService: f.signatures,
		AppInfoService:   f.appInfo,
	}

	f.server = httptest.NewServer(NewHandler(services, f.metrics, logger.Nop()).Init())
	t.Cleanup(f.server.Close)

	return f
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any, header ...string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "identity")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, data
}

func TestVersion(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v0.3.0")

	resp, body := f.do(t, http.MethodGet, "/api/version", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "v0.3.0", string(body))
}

func TestResponseSigning(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v0.3.0")

	resp, body := f.do(t, http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	want := utils.HashString(string(body), testHashKey)
	assert.Equal(t, want, resp.Header.Get(utils.HashHeader))
	_, err := hex.DecodeString(resp.Header.Get(utils.HashHeader))
	assert.NoError(t, err)
}

func TestGzipResponse(t *testing.T) {
	f := newHandlerFixture(t)
	f.keys.EXPECT().ListKeys(gomock.Any()).Return([]models.KeyHandle{{ID: "k"}}, nil)

	req, err := http.NewRequest(http.MethodGet, f.server.URL+"/api/keys", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	// a transport without automatic decompression
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var handles []models.KeyHandle
	require.NoError(t, json.Unmarshal(raw, &handles))
	assert.Equal(t, "k", handles[0].ID)
}

func TestMethodNotAllowed(t *testing.T) {
	f := newHandlerFixture(t)

	resp, _ := f.do(t, http.MethodPatch, "/api/keys/k", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Allow"), http.MethodGet)
	assert.Contains(t, resp.Header.Get("Allow"), http.MethodDelete)

	resp, _ = f.do(t, http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTraceIDHeader(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").Times(2)

	resp, _ := f.do(t, http.MethodGet, "/api/version", nil, "X-Trace-ID", "trace-42")
	assert.Equal(t, "trace-42", resp.Header.Get("X-Trace-ID"))

	resp, _ = f.do(t, http.MethodGet, "/api/version", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v")

	f.do(t, http.MethodGet, "/api/version", nil)

	resp, body := f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `route="/api/version"`)
	assert.Empty(t, resp.Header.Get(utils.HashHeader))
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"unsupported algorithm", service.ErrUnsupportedAlgorithm, http.StatusBadRequest},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"duplicate", service.ErrDuplicateKey, http.StatusConflict},
		{"policy", service.ErrPolicyViolation, http.StatusForbidden},
		{"integrity", service.ErrIntegrity, http.StatusUnprocessableEntity},
		{"credential", service.ErrInvalidCredential, http.StatusUnauthorized},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.keys.EXPECT().GetKey(gomock.Any(), "k").Return(models.KeyHandle{}, tt.err)

			resp, body := f.do(t, http.MethodGet, "/api/keys/k", nil)
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, string(body), assert.AnError.Error())
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	f := newHandlerFixture(t)
	expiry := time.Now().Add(time.Minute).UTC().Truncate(time.Second)
	token := models.ProofToken{
		SignedString:     "a.b.c",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiry)},
	}

	f.gate.EXPECT().Authenticate(gomock.Any(), "4821").Return(token, nil)
	f.gate.EXPECT().Authenticate(gomock.Any(), "0000").Return(models.ProofToken{}, service.ErrInvalidCredential)

	resp, body := f.do(t, http.MethodPost, "/api/gate/authenticate", models.AuthenticateRequest{Credential: "4821"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.AuthenticateResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "a.b.c", got.Token)
	assert.True(t, expiry.Equal(got.ExpiresAt))

	resp, _ = f.do(t, http.MethodPost, "/api/gate/authenticate", models.AuthenticateRequest{Credential: "0000"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/api/gate/authenticate", "{")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRevoke(t *testing.T) {
	f := newHandlerFixture(t)
	token := models.ProofToken{SignedString: "a.b.c"}

	f.gate.EXPECT().ParseProof(gomock.Any(), "a.b.c").Return(token, nil)
	f.gate.EXPECT().Revoke(gomock.Any(), token).Return(nil)

	resp, _ := f.do(t, http.MethodPost, "/api/gate/revoke", nil, "Authorization", "Bearer a.b.c")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/api/gate/revoke", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProofMiddleware(t *testing.T) {
	f := newHandlerFixture(t)
	token := models.ProofToken{SignedString: "a.b.c"}
	sealed := models.SealedSecret{ID: "s", KeyID: "k", Algorithm: models.AES256GCM}

	f.gate.EXPECT().ParseProof(gomock.Any(), "a.b.c").Return(token, nil)
	f.secrets.EXPECT().Seal(gomock.Any(), models.KeyHandle{ID: "k"}, []byte("hi"), []byte(nil)).DoAndReturn(
		func(ctx context.Context, _ models.KeyHandle, _, _ []byte) (models.SealedSecret, error) {
			got, ok := utils.ProofTokenFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, token, got)
			return sealed, nil
		})

	resp, _ := f.do(t, http.MethodPost, "/api/keys/k/seal", models.SealRequest{Plaintext: []byte("hi")},
		"Authorization", "Bearer a.b.c")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = f.do(t, http.MethodGet, "/api/keys", nil, "Authorization", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProofMiddleware_StaleTokenLeftToPolicy(t *testing.T) {
	f := newHandlerFixture(t)
	stale := models.ProofToken{SignedString: "expired.jwt.sig"}

	f.gate.EXPECT().ParseProof(gomock.Any(), "expired.jwt.sig").
		Return(models.ProofToken{}, service.ErrInvalidProof).Times(4)

	// ungated key: the stale token is ignored
	f.signatures.EXPECT().Verify(gomock.Any(), models.KeyHandle{ID: "k"}, []byte("msg"), []byte("sig")).Return(true, nil)
	resp, _ := f.do(t, http.MethodPost, "/api/keys/k/verify",
		models.VerifyRequest{Data: []byte("msg"), Signature: []byte("sig")},
		"Authorization", "Bearer expired.jwt.sig")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	f.secrets.EXPECT().Seal(gomock.Any(), models.KeyHandle{ID: "k"}, []byte("hi"), []byte(nil)).DoAndReturn(
		func(ctx context.Context, _ models.KeyHandle, _, _ []byte) (models.SealedSecret, error) {
			got, ok := utils.ProofTokenFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, stale, got)
			return models.SealedSecret{ID: "s", KeyID: "k", Algorithm: models.AES256GCM}, nil
		})
	resp, _ = f.do(t, http.MethodPost, "/api/keys/k/seal", models.SealRequest{Plaintext: []byte("hi")},
		"Authorization", "Bearer expired.jwt.sig")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// gated key: the service refuses the stale token
	f.secrets.EXPECT().Seal(gomock.Any(), models.KeyHandle{ID: "gated"}, gomock.Any(), gomock.Any()).
		Return(models.SealedSecret{}, service.ErrPolicyViolation)
	resp, _ = f.do(t, http.MethodPost, "/api/keys/gated/seal", models.SealRequest{Plaintext: []byte("hi")},
		"Authorization", "Bearer expired.jwt.sig")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// revoking needs a proof that still verifies
	f.gate.EXPECT().Revoke(gomock.Any(), stale).Return(service.ErrInvalidProof)
	resp, _ = f.do(t, http.MethodPost, "/api/gate/revoke", nil, "Authorization", "Bearer expired.jwt.sig")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
