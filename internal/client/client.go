package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MikhailRaia/url-shortener-client/internal/logger"
	"github.com/MikhailRaia/url-shortener-client/internal/model"
)

const (
	shortenPath = "/shorten"
	healthPath  = "/monitoring/health"
)

// Client talks to the shortening service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets a per-call timeout. Zero keeps the HTTP client's own
// timeout. It applies regardless of where it appears among the options.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New creates a Client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c
}

// Shorten sends one POST /shorten call and returns the decoded reply.
func (c *Client) Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error) {
	var result model.ShortenResponse

	body, err := json.Marshal(req)
	if err != nil {
		return result, &TransportError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+shortenPath, bytes.NewReader(body))
	if err != nil {
		return result, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if id, ok := logger.RequestIDFromContext(ctx); ok {
		httpReq.Header.Set("X-Request-ID", id)
	}

	l := logger.FromContext(ctx)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		l.Debug().Err(err).Msg("Shorten call failed")
		return result, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		l.Debug().Int("status", resp.StatusCode).Msg("Shorten call rejected")
		return result, &RejectionError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, &TransportError{Err: err}
	}

	if result.ShortCode == "" {
		return result, &TransportError{Err: ErrMissingShortCode}
	}

	return result, nil
}

// Ping checks the service health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}
