package clients

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "s2c-backend"

	maxResponseBytes = 1 << 20
)

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrResponseTooLarge        = fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)
)

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Post(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, http.Header, error)
}

type Option func(*HTTPClient)

func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *HTTPClient) {
		c.userAgent = userAgent
	}
}

// HTTPClient is a thin wrapper over http.Client for JSON APIs of
// third-party providers.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	if h.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}

// Post sends body and reads at most 1 MiB of the response. Non-2xx statuses
// are returned as is, not as errors.
func (h *HTTPClient) Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return
	}
	if headers != nil {
		req.Header = headers.Clone()
	}

	resp, err := h.Do(req)
	if err != nil {
		return
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return
	}
	if len(respBody) > maxResponseBytes {
		return 0, nil, nil, ErrResponseTooLarge
	}
	statusCode = resp.StatusCode
	respHeaders = resp.Header

	return
}
