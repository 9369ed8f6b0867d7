package designfoli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ForwardRequest is a same-origin request passed through to the backend.
type ForwardRequest struct {
	Method        string
	Path          string // relative to the API prefix, without a leading slash
	RawQuery      string
	Authorization string // copied verbatim, scheme included
	Body          []byte
}

// ForwardResponse is the backend's answer, status and body untouched.
type ForwardResponse struct {
	Status int
	Body   []byte
}

// Forward relays a request to {base}/api/v1/{path}. The upstream request is
// always sent as JSON. Only transport failures are errors; any HTTP status is
// returned as-is.
func (c *Client) Forward(ctx context.Context, fr ForwardRequest) (*ForwardResponse, error) {
	target := c.url("/" + strings.TrimPrefix(fr.Path, "/"))
	if fr.RawQuery != "" {
		target += "?" + fr.RawQuery
	}

	var body io.Reader
	if len(fr.Body) > 0 && fr.Method != http.MethodGet && fr.Method != http.MethodDelete {
		body = bytes.NewReader(fr.Body)
	}
	req, err := http.NewRequestWithContext(ctx, fr.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if fr.Authorization != "" {
		req.Header.Set("Authorization", fr.Authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &ForwardResponse{Status: resp.StatusCode, Body: data}, nil
}
