package config

import "errors"

var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidGateConfigs    = errors.New("invalid gate configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
