package service

import "errors"

// Errors callers are expected to match with errors.Is.
var (
	// ErrDuplicateKey is returned by CreateKey when the identifier is taken.
	ErrDuplicateKey = errors.New("key already exists")

	// ErrNotFound is returned when a key or sealed secret does not exist,
	// including when a sealed secret's originating key was deleted.
	ErrNotFound = errors.New("not found")

	// ErrPolicyViolation is returned when the access gate is not satisfied
	// or the key's policy does not allow the requested purpose.
	ErrPolicyViolation = errors.New("access policy violation")

	// ErrIntegrity is returned when a sealed secret fails authentication,
	// its nonce is malformed or its algorithm tag does not match the key.
	ErrIntegrity = errors.New("sealed secret integrity check failed")
)

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrInvalidCredential    = errors.New("invalid credential")
	ErrInvalidProof         = errors.New("invalid proof token")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
