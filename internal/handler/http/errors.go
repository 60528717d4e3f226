// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request input. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrAmbiguousUnsealRequest is returned when an unseal request carries
	// both or neither of a sealed secret and an envelope.
	ErrAmbiguousUnsealRequest = errors.New("exactly one of `secret` and `envelope` is required")
)
