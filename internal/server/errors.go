// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoTransportsConfigured = errors.New("neither an HTTP nor a gRPC address is configured")
)
