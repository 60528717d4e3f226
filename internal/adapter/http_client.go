package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-key-keeper/internal/utils"
)

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// verifyResponseHash rejects successful bodies whose HashSHA256 header is
// missing or wrong. It is a no-op without a hash key.
func (h *httpServerAdapter) verifyResponseHash(_ *resty.Client, resp *resty.Response) error {
	if h.hashKey == "" || !resp.IsSuccess() || len(resp.Body()) == 0 {
		return nil
	}

	got := resp.Header().Get(utils.HashHeader)
	want := utils.HashString(string(resp.Body()), h.hashKey)
	if !utils.EqualHash(got, want) {
		h.logger.Warn().
			Str("func", "*httpServerAdapter.verifyResponseHash").
			Str("url", resp.Request.URL).
			Msg("response hash mismatch")
		return fmt.Errorf("%w: %s %s", ErrResponseTampered, resp.Request.Method, resp.Request.URL)
	}

	return nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}
	return nil
}
