// Package api is the typed client for the electoral administration REST API.
//
// Every operation issues exactly one HTTP request bounded by the configured
// timeout. Failures come back as *Error so callers can branch on the kind.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/sufragio/internal/config"
	"github.com/alexanderramin/sufragio/internal/contract"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 8 << 20

// Client talks to the electoral API. It is safe for concurrent use.
type Client struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	observer Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client from the API section of the configuration.
func New(cfg config.APIConfig, observer Observer, opts ...Option) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout(),
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

type rawResponse struct {
	status int
	body   []byte
}

// do performs a single request and returns the raw body of a 2xx response.
// Non-2xx responses and transport failures are returned as *Error.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) (*rawResponse, error) {
	start := time.Now()
	requestID := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.send(ctx, op, method, path, requestID, payload)

	event := CallEvent{
		Op:        op,
		Method:    method,
		Path:      path,
		Latency:   time.Since(start),
		RequestID: requestID,
		ErrorCode: Code(err),
	}
	var apiErr *Error
	switch {
	case resp != nil:
		event.Status = resp.status
	case errors.As(err, &apiErr):
		event.Status = apiErr.Status
	}
	c.observer.OnCallComplete(ctx, event)

	return resp, err
}

func (c *Client) send(ctx context.Context, op, method, path, requestID string, payload any) (*rawResponse, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: marshaling request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, networkError(ctx, op, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return nil, networkError(ctx, op, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &Error{
			Kind:    KindRemote,
			Op:      op,
			Status:  httpResp.StatusCode,
			Message: remoteMessage(httpResp.StatusCode, respBody),
		}
	}
	return &rawResponse{status: httpResp.StatusCode, body: respBody}, nil
}

func networkError(ctx context.Context, op string, err error) *Error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Kind: KindNetwork, Op: op, Message: "request timed out", Err: ErrTimeout}
	}
	if ctx.Err() != nil {
		return &Error{Kind: KindNetwork, Op: op, Message: "request canceled", Err: ctx.Err()}
	}
	return &Error{Kind: KindNetwork, Op: op, Message: "could not reach the API", Err: err}
}

// remoteMessage prefers the server's {"message": ...} body and falls back to
// the status text.
func remoteMessage(status int, body []byte) string {
	var eb contract.ErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && strings.TrimSpace(eb.Message) != "" {
		return eb.Message
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", status)
}
