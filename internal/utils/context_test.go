package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-key-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "proofToken", ProofTokenCtxKey.String())
}

func TestProofTokenFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   models.ProofToken
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    WithProofToken(context.Background(), models.ProofToken{SignedString: "a.b.c"}),
			want:   models.ProofToken{SignedString: "a.b.c"},
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), ProofTokenCtxKey, "a.b.c"),
		},
		{
			name: "plain string key does not collide",
			ctx:  context.WithValue(context.Background(), "proofToken", models.ProofToken{SignedString: "x"}), //nolint:staticcheck
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProofTokenFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want.SignedString, got.SignedString)
		})
	}
}
