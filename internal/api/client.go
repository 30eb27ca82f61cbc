// Package api is the stateless gateway to the HD notes backend. Every
// operation maps one-to-one onto a REST endpoint, decodes the shared
// {success, message, data} envelope, and normalizes failures into
// RemoteError. The gateway never retries and never caches; retry
// policy and state reconciliation belong to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer credential. An empty string
// means no session; the request is sent unauthenticated and the
// backend decides what to do with it.
type TokenSource interface {
	Token() string
}

// Client talks to the backend. It holds no mutable state of its own;
// the credential is read from the TokenSource at call time so a login
// or logout takes effect on the next request.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// New creates a gateway client. baseURL should include the /api prefix,
// e.g. "http://localhost:5000/api".
func New(baseURL string, tokens TokenSource, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one request/response cycle. body (if non-nil) is JSON
// encoded; on success the envelope's data field is decoded into out
// (if non-nil). fallback is the user-facing message used when the
// backend's envelope has none, or when the request never completed.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api: request failed", "method", method, "path", path, "err", err)
		return &RemoteError{Status: 0, Message: fallback, cause: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("api: request",
		"method", method, "path", path,
		"status", resp.StatusCode, "dur", time.Since(start))

	// Non-2xx is a failure regardless of envelope contents; the body's
	// message, when present, is the user-facing error text.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var env envelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return &RemoteError{Status: resp.StatusCode, Message: msg}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &RemoteError{Status: resp.StatusCode, Message: fallback, cause: err}
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &RemoteError{Status: resp.StatusCode, Message: fallback, cause: err}
		}
	}
	return nil
}

// IsRemote reports whether err is a gateway error and returns it.
func IsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
