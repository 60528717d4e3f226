// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// AccessPolicy holds the rules attached to a [KeyHandle] that gate every use
// of the key. A policy is replaced only through an explicit policy update.
type AccessPolicy struct {
	// RequireAuthentication demands a valid proof of user presence before
	// each private-key operation (seal, unseal, sign).
	RequireAuthentication bool `json:"require_authentication"`

	// AuthValidity limits how long ago the presence proof may have been
	// issued ("require authentication within the last N seconds").
	// Zero accepts any proof that has not expired yet.
	AuthValidity Duration `json:"auth_validity,omitempty"`

	// AllowedPurposes restricts the key to a subset of the purposes its
	// algorithm supports. Empty means every supported purpose.
	AllowedPurposes []Purpose `json:"allowed_purposes,omitempty"`
}

// Allows reports whether the policy permits purpose p.
func (p AccessPolicy) Allows(purpose Purpose) bool {
	if len(p.AllowedPurposes) == 0 {
		return true
	}
	return slices.Contains(p.AllowedPurposes, purpose)
}

// Value implements [driver.Valuer]; policies are stored as JSON text.
func (p AccessPolicy) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (p *AccessPolicy) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = AccessPolicy{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported scan type %T for access policy", src)
	}
}

// Duration is a [time.Duration] that travels through JSON as a Go duration
// string ("30s", "5m") and also accepts plain nanosecond numbers.
type Duration time.Duration

// Std returns d as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}
