// Package api is the typed client for the challenge platform's REST API.
// It attaches a bearer token to every request, serializes JSON bodies, and
// translates transport and HTTP-status failures into typed errors. It does
// not retry, cache, or queue.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Client talks to the challenge platform.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client for the given base URL and token source.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// post issues a POST with a JSON body and decodes the response into out.
// A nil body sends an empty JSON object.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if body == nil {
		body = struct{}{}
	}
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, &ErrAuthRequired{Err: err}
	}
	if err := checkExpiry(token, c.now()); err != nil {
		return nil, err
	}

	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Context cancellation is not a network fault; report it as-is so
		// superseded requests stay silent.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ErrNetwork{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrNetwork{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// statusError maps a non-2xx response to a typed error.
func statusError(status int, raw []byte) error {
	detail := serverDetail(raw)
	switch status {
	case http.StatusTooManyRequests:
		return &ErrQuotaExceeded{Detail: detail}
	case http.StatusUnauthorized:
		return &ErrAuthRequired{}
	case http.StatusServiceUnavailable:
		return &ErrUnavailable{}
	default:
		return &APIError{Status: status, Detail: detail}
	}
}

// serverDetail extracts the server's detail message, if any.
func serverDetail(raw []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func decode(raw json.RawMessage, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: err}
	}
	return nil
}
