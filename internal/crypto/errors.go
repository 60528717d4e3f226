package crypto

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrNotACipher           = errors.New("algorithm cannot encrypt")
	ErrNotASigner           = errors.New("algorithm cannot sign")
	ErrInvalidKey           = errors.New("invalid key material")
	ErrInvalidNonce         = errors.New("invalid nonce")
	ErrAuthentication       = errors.New("message authentication failed")
)
