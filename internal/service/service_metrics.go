package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/models"
)

// observed turns a policy refusal into metrics.ErrDenied.
func observed(err error) error {
	if errors.Is(err, ErrPolicyViolation) || errors.Is(err, ErrInvalidCredential) {
		return metrics.ErrDenied
	}
	return err
}

type KeyManagerMetricsService struct {
	inner   KeyManager
	metrics *metrics.Metrics
}

func NewKeyManagerMetricsService(m *metrics.Metrics) KeyManagerWrapper {
	return &KeyManagerMetricsService{metrics: m}
}

func (s *KeyManagerMetricsService) CreateKey(ctx context.Context, id string, alg models.Algorithm, policy models.AccessPolicy) (models.KeyHandle, error) {
	handle, err := s.inner.CreateKey(ctx, id, alg, policy)
	s.metrics.ObserveKeyOperation("create", observed(err))
	return handle, err
}

func (s *KeyManagerMetricsService) GetKey(ctx context.Context, id string) (models.KeyHandle, error) {
	handle, err := s.inner.GetKey(ctx, id)
	s.metrics.ObserveKeyOperation("get", observed(err))
	return handle, err
}

func (s *KeyManagerMetricsService) ListKeys(ctx context.Context) ([]models.KeyHandle, error) {
	handles, err := s.inner.ListKeys(ctx)
	s.metrics.ObserveKeyOperation("list", observed(err))
	return handles, err
}

func (s *KeyManagerMetricsService) UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy) (models.KeyHandle, error) {
	handle, err := s.inner.UpdatePolicy(ctx, id, policy)
	s.metrics.ObserveKeyOperation("update_policy", observed(err))
	return handle, err
}

func (s *KeyManagerMetricsService) DeleteKey(ctx context.Context, id string) error {
	err := s.inner.DeleteKey(ctx, id)
	s.metrics.ObserveKeyOperation("delete", observed(err))
	return err
}

func (s *KeyManagerMetricsService) Wrap(inner KeyManager) KeyManager {
	s.inner = inner
	return s
}

type SecretStoreMetricsService struct {
	inner   SecretStore
	metrics *metrics.Metrics
}

func NewSecretStoreMetricsService(m *metrics.Metrics) SecretStoreWrapper {
	return &SecretStoreMetricsService{metrics: m}
}

// Seal is labelled with the algorithm of the produced secret; a refused
// seal has none.
func (s *SecretStoreMetricsService) Seal(ctx context.Context, handle models.KeyHandle, plaintext, associatedData []byte) (models.SealedSecret, error) {
	sealed, err := s.inner.Seal(ctx, handle, plaintext, associatedData)
	alg := sealed.Algorithm
	if alg == "" {
		alg = handle.Algorithm
	}
	s.metrics.ObserveSecretOperation("seal", string(alg), observed(err))
	return sealed, err
}

func (s *SecretStoreMetricsService) Unseal(ctx context.Context, sealed models.SealedSecret) ([]byte, error) {
	plaintext, err := s.inner.Unseal(ctx, sealed)
	s.metrics.ObserveSecretOperation("unseal", string(sealed.Algorithm), observed(err))
	return plaintext, err
}

func (s *SecretStoreMetricsService) GetSealed(ctx context.Context, id string) (models.SealedSecret, error) {
	sealed, err := s.inner.GetSealed(ctx, id)
	s.metrics.ObserveSecretOperation("get", string(sealed.Algorithm), observed(err))
	return sealed, err
}

func (s *SecretStoreMetricsService) ListSealed(ctx context.Context, keyID string) ([]models.SealedSecret, error) {
	secrets, err := s.inner.ListSealed(ctx, keyID)
	s.metrics.ObserveSecretOperation("list", "", observed(err))
	return secrets, err
}

func (s *SecretStoreMetricsService) DeleteSealed(ctx context.Context, id string) error {
	err := s.inner.DeleteSealed(ctx, id)
	s.metrics.ObserveSecretOperation("delete", "", observed(err))
	return err
}

func (s *SecretStoreMetricsService) Wrap(inner SecretStore) SecretStore {
	s.inner = inner
	return s
}

type AccessGateMetricsService struct {
	inner   AccessGate
	metrics *metrics.Metrics
}

func NewAccessGateMetricsService(m *metrics.Metrics) AccessGateWrapper {
	return &AccessGateMetricsService{metrics: m}
}

func (s *AccessGateMetricsService) Authenticate(ctx context.Context, credential string) (models.ProofToken, error) {
	token, err := s.inner.Authenticate(ctx, credential)
	s.metrics.ObserveAuthentication(err)
	return token, err
}

func (s *AccessGateMetricsService) Check(ctx context.Context, policy models.AccessPolicy, token *models.ProofToken) (bool, error) {
	allowed, err := s.inner.Check(ctx, policy, token)
	s.metrics.ObserveGateCheck(allowed, err)
	return allowed, err
}

func (s *AccessGateMetricsService) ParseProof(ctx context.Context, raw string) (models.ProofToken, error) {
	return s.inner.ParseProof(ctx, raw)
}

func (s *AccessGateMetricsService) Revoke(ctx context.Context, token models.ProofToken) error {
	return s.inner.Revoke(ctx, token)
}

func (s *AccessGateMetricsService) Wrap(inner AccessGate) AccessGate {
	s.inner = inner
	return s
}

type SignatureMetricsService struct {
	inner   SignatureService
	metrics *metrics.Metrics
}

func NewSignatureMetricsService(m *metrics.Metrics) SignatureServiceWrapper {
	return &SignatureMetricsService{metrics: m}
}

func (s *SignatureMetricsService) Sign(ctx context.Context, handle models.KeyHandle, data []byte) ([]byte, error) {
	signature, err := s.inner.Sign(ctx, handle, data)
	s.metrics.ObserveKeyOperation("sign", observed(err))
	return signature, err
}

func (s *SignatureMetricsService) Verify(ctx context.Context, handle models.KeyHandle, data, signature []byte) (bool, error) {
	valid, err := s.inner.Verify(ctx, handle, data, signature)
	s.metrics.ObserveKeyOperation("verify", observed(err))
	return valid, err
}

func (s *SignatureMetricsService) Wrap(inner SignatureService) SignatureService {
	s.inner = inner
	return s
}
