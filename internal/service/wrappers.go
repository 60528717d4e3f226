package service

// KeyManagerWrapper decorates a KeyManager with extra behaviour such as
// validation or metrics.
type KeyManagerWrapper interface {
	Wrap(KeyManager) KeyManager
}

// SecretStoreWrapper decorates a SecretStore.
type SecretStoreWrapper interface {
	Wrap(SecretStore) SecretStore
}

// AccessGateWrapper decorates an AccessGate.
type AccessGateWrapper interface {
	Wrap(AccessGate) AccessGate
}

// SignatureServiceWrapper decorates a SignatureService.
type SignatureServiceWrapper interface {
	Wrap(SignatureService) SignatureService
}
