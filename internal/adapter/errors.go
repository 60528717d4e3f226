package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrIntegrity           = errors.New("integrity check failed")
	ErrInternalServerError = errors.New("internal server error")

	// ErrResponseTampered means the body does not match its HashSHA256
	// header.
	ErrResponseTampered = errors.New("response hash mismatch")
)
