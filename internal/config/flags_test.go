package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8443", expectedAddr: NetAddress{Port: 8443}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number is a positive integer"},
		{name: "hostname is rejected", input: "example.com:80", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Equal(t, tt.errorMsg, err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:8081",
		"-grpc-address", "localhost:9091",
		"-d", "/tmp/keeper.db",
		"-config", "/etc/keeper.json",
		"-version", "0.9.0",
		"-hash-key", "hk",
		"-master-passphrase", "mp",
		"-log-level", "debug",
		"-gate-credential", "4321",
		"-gate-sign-key", "sk",
		"-gate-issuer", "iss",
		"-gate-proof-ttl", "90s",
		"-request-timeout", "5s",
		"-purge-interval", "2m",
		"-adapter-address", "http://127.0.0.1:8081",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/keeper.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/keeper.json", cfg.JSONFilePath)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, "mp", cfg.App.MasterPassphrase)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "4321", cfg.Gate.Credential)
	assert.Equal(t, "sk", cfg.Gate.TokenSignKey)
	assert.Equal(t, "iss", cfg.Gate.TokenIssuer)
	assert.Equal(t, 90*time.Second, cfg.Gate.ProofTTL)
	assert.Equal(t, 2*time.Minute, cfg.Workers.PurgeInterval)
	assert.Equal(t, "http://127.0.0.1:8081", cfg.Adapter.HTTPAddress)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
}
