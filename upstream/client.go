// Package upstream is the typed HTTP client for the remote commerce API.
// All durable commerce state (catalog, inventory, orders, accounts)
// lives behind it; the gateway only orchestrates.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx upstream response normalized into an error. The
// message comes from the server's "detail" or "message" field when the
// body decodes; otherwise it falls back to the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %s (HTTP %d)", e.Message, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL is exposed for image URL construction in the product mapper.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, token, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path, token string, body, out any) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	return c.do(req, token, "application/json", out)
}

func (c *Client) sendMultipart(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	return c.do(req, token, contentType, out)
}

func (c *Client) do(req *http.Request, token, contentType string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	// A body that fails to decode is treated as "no body", not as a
	// failed call. The request itself succeeded.
	if err := json.Unmarshal(raw, out); err != nil {
		return nil
	}
	return nil
}

func decodeError(status int, raw []byte) *APIError {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	msg := ""
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err == nil {
			if body.Detail != "" {
				msg = body.Detail
			} else if body.Message != "" {
				msg = body.Message
			}
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// StatusOf maps an error to the HTTP status the gateway should relay:
// upstream errors keep their status, everything else is a 502.
func StatusOf(err error) int {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
