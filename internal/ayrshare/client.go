// Package ayrshare implements the authenticated HTTP client for the Ayrshare
// social media API. Every exported operation maps to exactly one HTTP call;
// all of them funnel through a single request primitive that owns header
// construction and the error-classification policy.
package ayrshare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"

	"github.com/socialops/ayrshare-mcp/internal/logging"
)

const (
	defaultBaseURL = "https://app.ayrshare.com/api"
	defaultTimeout = 30 * time.Second

	envAPIKey     = "AYRSHARE_API_KEY"
	envProfileKey = "AYRSHARE_PROFILE_KEY"
)

// Client issues authenticated requests against the Ayrshare API. It is safe
// for concurrent use; the underlying connection pool is shared across calls.
type Client struct {
	apiKey     string
	profileKey string
	baseURL    string
	httpClient *http.Client
	log        logging.Logger

	closeOnce sync.Once
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New constructs a client. The API key is resolved from the argument first,
// then the AYRSHARE_API_KEY environment variable; without one construction
// fails with an authentication error before any network access. The profile
// key resolves the same way and, when present, is attached to every request.
func New(apiKey, profileKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(envAPIKey)
	}
	if apiKey == "" {
		return nil, newError(KindAuthentication, 0,
			"API key required. Set AYRSHARE_API_KEY environment variable or pass an API key explicitly.", nil)
	}
	if profileKey == "" {
		profileKey = os.Getenv(envProfileKey)
	}

	c := &Client{
		apiKey:     apiKey,
		profileKey: profileKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logging.New(logr.Discard()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases the client's connection pool. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

// request is the shared primitive every operation goes through. The body,
// when non-nil, is sent as JSON; params are appended to the query string.
// Replies with status <400 come back as the raw body, with an empty body
// normalized to an empty JSON object.
func (c *Client) request(ctx context.Context, method, endpoint string, body map[string]any, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, newError(KindTransport, 0, fmt.Sprintf("HTTP request failed: %v", err), err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.profileKey != "" {
		req.Header.Set("Profile-Key", c.profileKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindTransport, 0, fmt.Sprintf("HTTP request failed: %v", err), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransport, 0, fmt.Sprintf("HTTP request failed: %v", err), err)
	}

	c.log.Debug("api call", "method", method, "endpoint", endpoint,
		"status", resp.StatusCode, "duration", time.Since(start).String())

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, newError(KindAuthentication, resp.StatusCode,
			"Invalid API key or authentication failed", nil)
	case resp.StatusCode == http.StatusBadRequest:
		return nil, newError(KindValidation, resp.StatusCode,
			"Invalid request: "+errorMessage(raw), nil)
	case resp.StatusCode >= 400:
		return nil, newError(KindAPI, resp.StatusCode,
			fmt.Sprintf("API error (%d): %s", resp.StatusCode, errorMessage(raw)), nil)
	}

	if len(raw) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return raw, nil
}

// errorMessage extracts the upstream message field from an error body,
// falling back to the raw response text.
func errorMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if msg := gjson.GetBytes(raw, "message"); msg.Exists() {
		return msg.String()
	}
	return string(raw)
}

// object runs a request and decodes the reply into a generic map.
func (c *Client) object(ctx context.Context, method, endpoint string, body map[string]any, params url.Values) (map[string]any, error) {
	raw, err := c.request(ctx, method, endpoint, body, params)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// postResult runs a request and decodes the reply into a PostResponse.
func (c *Client) postResult(ctx context.Context, method, endpoint string, body map[string]any) (*PostResponse, error) {
	raw, err := c.request(ctx, method, endpoint, body, nil)
	if err != nil {
		return nil, err
	}
	var out PostResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// objectList unwraps a named top-level list of objects from the reply. A
// missing field yields an empty list, never an error.
func objectList(raw json.RawMessage, key string) ([]map[string]any, error) {
	return listField[map[string]any](raw, key)
}

// stringList unwraps a named top-level list of strings from the reply.
func stringList(raw json.RawMessage, key string) ([]string, error) {
	return listField[string](raw, key)
}

func listField[T any](raw json.RawMessage, key string) ([]T, error) {
	field := gjson.GetBytes(raw, key)
	if !field.Exists() {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(field.Raw), &out); err != nil {
		return nil, fmt.Errorf("decode %s field: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
