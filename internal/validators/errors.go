package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidKeyID         = errors.New("key id must be 1-128 characters of [A-Za-z0-9._-]")
	ErrInvalidSecretID      = errors.New("invalid sealed secret id")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrNegativeAuthValidity = errors.New("auth validity cannot be negative")
	ErrPurposeNotSupported  = errors.New("purpose is not supported by the key algorithm")
	ErrDuplicatePurpose     = errors.New("purpose listed more than once")
	ErrEmptyCiphertext      = errors.New("ciphertext is required")
)
