package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"femee-arena-client/pkg/apierror"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token, or "" when the client
// should send unauthenticated. The session store satisfies this.
type TokenSource interface {
	Token() string
}

// Config holds settings for creating a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
}

// Client is the single egress point for all backend calls. It attaches
// the bearer credential, enforces the fixed request timeout, and maps
// every failure into the apierror taxonomy. On HTTP 401 it notifies the
// registered handler instead of mutating session state itself, so the
// session owner stays the only writer.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource

	mu             sync.RWMutex
	onUnauthorized func()
}

// New creates a client for the given backend.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: cfg.Tokens,
	}
}

// SetUnauthorizedHandler registers the callback invoked once per 401
// response, regardless of which call triggered it.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.base + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Network(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorStatus(method, path, resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleErrorStatus applies the uniform response policy: 401 notifies
// the unauthorized handler, 403/500 are logged for diagnostics, and
// every status propagates to the caller unchanged.
func (c *Client) handleErrorStatus(method, path string, status int, body []byte) error {
	apiErr := apierror.FromResponse(status, body)

	switch status {
	case http.StatusUnauthorized:
		c.mu.RLock()
		fn := c.onUnauthorized
		c.mu.RUnlock()
		if fn != nil {
			fn()
		}
	case http.StatusForbidden:
		log.Printf("[APIClient] access denied on %s %s: %s", method, path, apiErr.Message)
	case http.StatusInternalServerError:
		log.Printf("[APIClient] backend error on %s %s: %s", method, path, apiErr.Message)
	}

	return apiErr
}

// classifyTransport maps a failed round trip into the error taxonomy:
// a deadline becomes Timeout, anything else NetworkError.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apierror.Timeout(err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return apierror.Timeout(err)
	}
	return apierror.Network(err)
}
