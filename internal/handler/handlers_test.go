package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
)

// Constructors only store the services pointer, so nil is enough here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
	}{
		{"both", config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, true, true},
		{"http only", config.Server{HTTPAddress: ":8080"}, true, false},
		{"grpc only", config.Server{GRPCAddress: ":9090"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, metrics.New(), tt.cfg, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(nil, metrics.New(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
