// Package api implements the authenticated request pipeline to the
// PrinterMonitor backend: one client object constructed at process start
// with the base endpoint, attaching the cached bearer credential to every
// outbound call. A single request/response round trip per call, no retry,
// no circuit breaking; failures surface directly to the caller.
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

	"printwatch/internal/logging"
)

// TokenSource yields the cached bearer credential, empty when absent.
// The pipeline reads it per outbound call, so eviction by the session store
// takes effect immediately.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the HTTP client for the backend API. Resource groups hang off
// it and share the same pipeline.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     logging.Logger

	Auth     *AuthGroup
	Printers *PrinterGroup
	Metrics  *MetricsGroup
	Devices  *DeviceGroup
	Subnets  *SubnetGroup
	Billing  *BillingGroup
}

// New creates a client for the backend at baseURL. The base endpoint is
// fixed for the lifetime of the client.
func New(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
	c.Auth = &AuthGroup{c: c}
	c.Printers = &PrinterGroup{c: c}
	c.Metrics = &MetricsGroup{c: c}
	c.Devices = &DeviceGroup{c: c}
	c.Subnets = &SubnetGroup{c: c}
	c.Billing = &BillingGroup{c: c}
	return c
}

// BaseURL returns the configured base endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one round trip: marshal body (if any), attach the bearer
// credential when one is cached, send, and decode the response into out
// (if non-nil). Non-2xx responses come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	token, err := c.tokens.Token(ctx)
	if err != nil {
		// A broken token cache should not block the call; the backend
		// rejects the request if authentication was required.
		c.log.Warn(ctx, "credential read failed, sending unauthenticated", "error", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		apiErr := &Error{Status: resp.StatusCode, Detail: eb.text()}
		c.log.Debug(ctx, "backend rejected request",
			"method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// doBearer is a body-less round trip with an explicitly supplied bearer
// credential, bypassing the token store. Used for the one call that must
// outlive the cached credential: server-side session invalidation after
// the local eviction already happened.
func (c *Client) doBearer(ctx context.Context, method, path, token string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &Error{Status: resp.StatusCode, Detail: eb.text()}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
