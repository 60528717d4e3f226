package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and, when hashKey is
// set, verifies the HashSHA256 header of every response.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, hashKey string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: hashKey,
		logger:  logger,
	}
	a.client.OnAfterResponse(a.verifyResponseHash)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Authenticate implements [ServerAdapter]. POST /api/gate/authenticate.
func (h *httpServerAdapter) Authenticate(ctx context.Context, credential string) (models.AuthenticateResponse, error) {
	var result models.AuthenticateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(models.AuthenticateRequest{Credential: credential}).
		Post("/api/gate/authenticate")
	if err != nil {
		return result, fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}
	if err = decode(resp, &result); err != nil {
		return result, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// Revoke implements [ServerAdapter]. POST /api/gate/revoke.
func (h *httpServerAdapter) Revoke(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/gate/revoke")
	if err != nil {
		return fmt.Errorf("revoke request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CreateKey(ctx context.Context, req models.CreateKeyRequest) (models.KeyHandle, error) {
	var handle models.KeyHandle

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(req).
		Post("/api/keys")
	if err != nil {
		return handle, fmt.Errorf("create key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return handle, err
	}

	if err = decode(resp, &handle); err != nil {
		return handle, err
	}
	return handle, nil
}

func (h *httpServerAdapter) GetKey(ctx context.Context, id string) (models.KeyHandle, error) {
	var handle models.KeyHandle

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/keys/{id}")
	if err != nil {
		return handle, fmt.Errorf("get key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return handle, err
	}

	if err = decode(resp, &handle); err != nil {
		return handle, err
	}
	return handle, nil
}

func (h *httpServerAdapter) ListKeys(ctx context.Context) ([]models.KeyHandle, error) {
	resp, err := h.authedRequest(ctx).Get("/api/keys")
	if err != nil {
		return nil, fmt.Errorf("list keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var handles []models.KeyHandle
	if err = decode(resp, &handles); err != nil {
		return handles, err
	}
	return handles, nil
}

func (h *httpServerAdapter) UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy) (models.KeyHandle, error) {
	var handle models.KeyHandle

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(policy).
		Put("/api/keys/{id}/policy")
	if err != nil {
		return handle, fmt.Errorf("update policy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return handle, err
	}

	if err = decode(resp, &handle); err != nil {
		return handle, err
	}
	return handle, nil
}

func (h *httpServerAdapter) DeleteKey(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/keys/{id}")
	if err != nil {
		return fmt.Errorf("delete key request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Seal(ctx context.Context, keyID string, plaintext, associatedData []byte) (models.SealedSecret, error) {
	var sealed models.SealedSecret

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", keyID).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(models.SealRequest{Plaintext: plaintext, AssociatedData: associatedData}).
		Post("/api/keys/{id}/seal")
	if err != nil {
		return sealed, fmt.Errorf("seal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return sealed, err
	}

	if err = decode(resp, &sealed); err != nil {
		return sealed, err
	}
	return sealed, nil
}

func (h *httpServerAdapter) Unseal(ctx context.Context, req models.UnsealRequest) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(req).
		Post("/api/secrets/unseal")
	if err != nil {
		return nil, fmt.Errorf("unseal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result models.UnsealResponse
	if err = decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Plaintext, nil
}

func (h *httpServerAdapter) Sign(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", keyID).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(models.SignRequest{Data: data}).
		Post("/api/keys/{id}/sign")
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result models.SignResponse
	if err = decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Signature, nil
}

func (h *httpServerAdapter) Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", keyID).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(models.VerifyRequest{Data: data, Signature: signature}).
		Post("/api/keys/{id}/verify")
	if err != nil {
		return false, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var result models.VerifyResponse
	if err = decode(resp, &result); err != nil {
		return false, err
	}
	return result.Valid, nil
}

func (h *httpServerAdapter) GetSealed(ctx context.Context, id string) (models.SealedSecret, error) {
	var sealed models.SealedSecret

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/secrets/{id}")
	if err != nil {
		return sealed, fmt.Errorf("get sealed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return sealed, err
	}

	if err = decode(resp, &sealed); err != nil {
		return sealed, err
	}
	return sealed, nil
}

func (h *httpServerAdapter) ListSealed(ctx context.Context, keyID string) ([]models.SealedSecret, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", keyID).
		Get("/api/keys/{id}/secrets")
	if err != nil {
		return nil, fmt.Errorf("list sealed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var secrets []models.SealedSecret
	if err = decode(resp, &secrets); err != nil {
		return secrets, err
	}
	return secrets, nil
}

func (h *httpServerAdapter) DeleteSealed(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/secrets/{id}")
	if err != nil {
		return fmt.Errorf("delete sealed request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ExportSealed(ctx context.Context, id string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/secrets/{id}/envelope")
	if err != nil {
		return "", fmt.Errorf("export sealed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result models.EnvelopeResponse
	if err = decode(resp, &result); err != nil {
		return "", err
	}
	return result.Envelope, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
