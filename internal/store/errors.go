package store

import "errors"

// Domain errors. Services translate them into their own sentinels.
var (
	// ErrKeyAlreadyExists is returned when a key (or its material) with the
	// same identifier is already stored.
	ErrKeyAlreadyExists = errors.New("key already exists")

	// ErrKeyNotFound is returned when no key or key material matches.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrSealedSecretNotFound is returned when no sealed secret matches.
	ErrSealedSecretNotFound = errors.New("sealed secret was not found")
)

// Infrastructure errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrUnsupportedDSN       = errors.New("unsupported database dsn")
)
