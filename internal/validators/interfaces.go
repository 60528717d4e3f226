// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault input before it reaches the key module:
// key identifiers, algorithm tags, access policies against the algorithm's
// purposes, and the shape of sealed secrets.
package validators

import "context"

// Validator checks obj. Named fields restrict the check to those rules;
// with none, every rule for obj's type applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
