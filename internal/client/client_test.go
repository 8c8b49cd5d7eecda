package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MikhailRaia/url-shortener-client/internal/logger"
	"github.com/MikhailRaia/url-shortener-client/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	requestID   string
	body        map[string]interface{}
}

func newServiceStub(t *testing.T, status int, reply string, captured *capturedRequest) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.method = r.Method
			captured.path = r.URL.Path
			captured.contentType = r.Header.Get("Content-Type")
			captured.requestID = r.Header.Get("X-Request-ID")

			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			captured.body = map[string]interface{}{}
			require.NoError(t, json.Unmarshal(raw, &captured.body))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestShorten_RequestShape(t *testing.T) {
	days := 7

	tests := []struct {
		name     string
		request  model.ShortenRequest
		wantBody map[string]interface{}
	}{
		{
			name:     "custom code omitted when empty",
			request:  model.ShortenRequest{URL: "https://go.dev/doc"},
			wantBody: map[string]interface{}{"url": "https://go.dev/doc"},
		},
		{
			name:    "custom code sent verbatim",
			request: model.ShortenRequest{URL: "https://go.dev/doc", CustomCode: " My_Code "},
			wantBody: map[string]interface{}{
				"url":         "https://go.dev/doc",
				"custom_code": " My_Code ",
			},
		},
		{
			name:    "optional title and expiry",
			request: model.ShortenRequest{URL: "https://go.dev", Title: "Go", ExpireAfterDays: &days},
			wantBody: map[string]interface{}{
				"url":               "https://go.dev",
				"title":             "Go",
				"expire_after_days": float64(7),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured capturedRequest
			server := newServiceStub(t, http.StatusOK, `{"short_code":"abc123"}`, &captured)

			resp, err := New(server.URL).Shorten(context.Background(), tt.request)
			require.NoError(t, err)

			assert.Equal(t, "abc123", resp.ShortCode)
			assert.Equal(t, http.MethodPost, captured.method)
			assert.Equal(t, "/shorten", captured.path)
			assert.Equal(t, "application/json", captured.contentType)
			assert.Equal(t, tt.wantBody, captured.body)
		})
	}
}

func TestShorten_ForwardsRequestID(t *testing.T) {
	var captured capturedRequest
	server := newServiceStub(t, http.StatusCreated, `{"short_code":"abc123"}`, &captured)

	ctx := logger.WithRequestID(context.Background(), "sub-42")
	_, err := New(server.URL+"/").Shorten(ctx, model.ShortenRequest{URL: "https://go.dev"})
	require.NoError(t, err)

	assert.Equal(t, "sub-42", captured.requestID)
	assert.Equal(t, "/shorten", captured.path)
}

func TestShorten_Rejection(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError, http.StatusMultipleChoices} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := newServiceStub(t, status, `{"detail":"Short code 'abc' already exists"}`, nil)

			_, err := New(server.URL).Shorten(context.Background(), model.ShortenRequest{URL: "https://go.dev"})
			require.Error(t, err)

			assert.Equal(t, "Failed to create short URL", err.Error())
			assert.True(t, IsRejection(err))

			var rejection *RejectionError
			require.True(t, errors.As(err, &rejection))
			assert.Equal(t, status, rejection.StatusCode)
		})
	}
}

func TestShorten_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	_, err := New(serverURL).Shorten(context.Background(), model.ShortenRequest{URL: "https://go.dev"})
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.False(t, IsRejection(err))
	assert.Equal(t, transportErr.Err.Error(), err.Error())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestShorten_MalformedBaseURL(t *testing.T) {
	_, err := New("://bad").Shorten(context.Background(), model.ShortenRequest{URL: "https://go.dev"})
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestShorten_UnreadableReply(t *testing.T) {
	server := newServiceStub(t, http.StatusOK, `not json`, nil)

	_, err := New(server.URL).Shorten(context.Background(), model.ShortenRequest{URL: "https://go.dev"})
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestShorten_MissingShortCode(t *testing.T) {
	server := newServiceStub(t, http.StatusOK, `{"url":"https://go.dev"}`, nil)

	_, err := New(server.URL).Shorten(context.Background(), model.ShortenRequest{URL: "https://go.dev"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingShortCode)
}

func TestShorten_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	_, err := New(server.URL, WithTimeout(20*time.Millisecond)).Shorten(context.Background(), model.ShortenRequest{URL: "https://go.dev"})
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c := New("http://localhost", WithHTTPClient(hc))
	assert.Same(t, hc, c.httpClient)

	c = New("http://localhost", WithHTTPClient(hc), WithTimeout(2*time.Second))
	assert.Equal(t, 2*time.Second, c.httpClient.Timeout)
	assert.Equal(t, time.Second, hc.Timeout)
}

func TestWithTimeout_OptionOrder(t *testing.T) {
	tests := []struct {
		name string
		opts func(hc *http.Client) []Option
		want time.Duration
	}{
		{
			name: "Timeout before client",
			opts: func(hc *http.Client) []Option { return []Option{WithTimeout(2 * time.Second), WithHTTPClient(hc)} },
			want: 2 * time.Second,
		},
		{
			name: "Timeout after client",
			opts: func(hc *http.Client) []Option { return []Option{WithHTTPClient(hc), WithTimeout(2 * time.Second)} },
			want: 2 * time.Second,
		},
		{
			name: "Zero timeout keeps client timeout",
			opts: func(hc *http.Client) []Option { return []Option{WithHTTPClient(hc), WithTimeout(0)} },
			want: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := &http.Client{Timeout: time.Second}
			c := New("http://localhost", tt.opts(hc)...)

			assert.Equal(t, tt.want, c.httpClient.Timeout)
			assert.Equal(t, time.Second, hc.Timeout)
		})
	}
}

func TestPing(t *testing.T) {
	var gotPath string
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	require.NoError(t, New(healthy.URL).Ping(context.Background()))
	assert.Equal(t, "/monitoring/health", gotPath)

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	assert.EqualError(t, New(broken.URL).Ping(context.Background()), "health check returned status 503")
}
