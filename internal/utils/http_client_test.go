package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	assert.Equal(t, time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/api/version")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "/api/version", gotPath)
	assert.Equal(t, ContentTypeJSON, gotAccept)
}

func TestNewHTTPClient_NoTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 0)

	assert.Zero(t, client.GetClient().Timeout)
	assert.NotSame(t, client.Client, NewHTTPClient("http://localhost:8080", 0).Client)
}
