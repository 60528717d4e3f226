package secret

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[SECRET]"

// Secret is a byte slice whose formatting, JSON and text encodings are
// redacted. Use Reveal to get at the bytes.
type Secret []byte

// FromString copies s into a Secret.
func FromString(s string) Secret { return Secret(s) }

func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so %v, %#v and %s never print contents.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Reveal returns the underlying bytes without copying.
func (s Secret) Reveal() []byte { return []byte(s) }

// IsEmpty reports whether the secret holds no bytes.
func (s Secret) IsEmpty() bool { return len(s) == 0 }

// Zero overwrites the secret with zeros.
func (s *Secret) Zero() {
	if s == nil {
		return
	}
	Wipe(*s)
}
