package keystore

import "errors"

var (
	ErrKeyExists         = errors.New("key material already exists")
	ErrKeyNotLoaded      = errors.New("key material not found")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrAlgorithmMismatch = errors.New("algorithm does not match key")
	ErrUnwrapFailed      = errors.New("cannot unwrap key material")
	ErrModuleClosed      = errors.New("key module is closed")
	ErrEmptyPassphrase   = errors.New("master passphrase is empty")
)
