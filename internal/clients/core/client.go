// Package core provides the client for the upstream core lending API
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the CoreClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
	tokens     interfaces.TokenSource
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit. Non-positive values keep the default.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithTokenSource sets the bearer token source
func WithTokenSource(ts interfaces.TokenSource) ClientOption {
	return func(c *Client) {
		c.tokens = ts
	}
}

// SetTokenSource sets the bearer token source after construction. The
// identity client needs this client as its roster, so one of the two
// has to be wired late.
func (c *Client) SetTokenSource(ts interfaces.TokenSource) {
	c.tokens = ts
}

// NewClient creates a new core API client. The base URL comes from
// configuration and has no default; LoadConfig rejects its absence.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an upstream API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorMessage derives the user-facing message for a non-2xx response:
// the JSON body's "message" field when present, otherwise the raw body
// text, otherwise "Error <status>: <statusText>".
func errorMessage(statusCode int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text != "" {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			return payload.Message
		}
		return text
	}
	return fmt.Sprintf("Error %d: %s", statusCode, http.StatusText(statusCode))
}

// do performs a rate-limited JSON request. A bearer token is attached
// when the token source yields one; its absence does not block the call.
// A 2xx response with an empty body leaves result untouched.
func (c *Client) do(ctx context.Context, method, path string, body any, result *any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.attachToken(ctx, req)

	c.logger.Debug().Str("method", method).Str("path", path).Msg("Core API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, respBody),
			Endpoint:   path,
		}
	}

	if result == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

func (c *Client) attachToken(ctx context.Context, req *http.Request) {
	// Per-request token (staff session) wins over the service token source.
	if token := common.ResolveBearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return
	}
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// getList fetches a path and unwraps the list payload. Backends answer
// either with a bare array or with the array under a wrapper key.
func (c *Client) getList(ctx context.Context, path string) ([]any, error) {
	var raw any
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return unwrapList(raw), nil
}

// getObject fetches a path and unwraps the single-object payload.
func (c *Client) getObject(ctx context.Context, path string) (map[string]any, error) {
	var raw any
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return unwrapObject(raw), nil
}

// sendObject issues a mutating request and unwraps the object response.
// Endpoints that answer with an empty body yield an empty map.
func (c *Client) sendObject(ctx context.Context, method, path string, body any) (map[string]any, error) {
	var raw any
	if err := c.do(ctx, method, path, body, &raw); err != nil {
		return nil, err
	}
	return unwrapObject(raw), nil
}

// wrapper keys observed across backend generations
var listWrapperKeys = []string{"data", "docs", "resultados", "items"}

func unwrapList(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range listWrapperKeys {
			if inner, ok := v[key].([]any); ok {
				return inner
			}
		}
	}
	return []any{}
}

func unwrapObject(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		for _, key := range listWrapperKeys {
			if inner, ok := v[key].(map[string]any); ok {
				return inner
			}
		}
		return v
	}
	return map[string]any{}
}

// uploadMultipart posts file data as multipart/form-data. Used by the
// client photo upload; all other requests are JSON.
func (c *Client) uploadMultipart(ctx context.Context, path, fieldName, filename string, file io.Reader) (map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.attachToken(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, respBody),
			Endpoint:   path,
		}
	}

	var raw any
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return unwrapObject(raw), nil
}

// Ensure Client implements CoreClient
var _ interfaces.CoreClient = (*Client)(nil)
