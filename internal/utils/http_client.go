package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client the vault CLI talks to the REST API with.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL that asks for JSON.
// A zero timeout leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", ContentTypeJSON)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
