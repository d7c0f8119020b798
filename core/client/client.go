package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is used when the configured timeout is not positive.
const DefaultTimeout = 5 * time.Second

// Response is the fully read result of a single request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ContentType returns the Content-Type header, or "" when absent.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// Client defines the interface for requests against the server under test.
type Client interface {
	// Get issues a GET request for path relative to the base URL and reads the whole body.
	Get(ctx context.Context, path string) (*Response, error)
	// BaseURL returns the URL paths are resolved against.
	BaseURL() string
}

// NewClient creates a new HTTP client for baseURL based on the configuration.
func NewClient(baseURL string, cfg Config) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// One connection per request, each phase bounded by the same timeout
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: timeout,
		}).DialContext,
		DisableKeepAlives:     true,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &httpClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: cfg.UserAgent,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

type httpClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func (c *httpClient) BaseURL() string {
	return c.baseURL
}

func (c *httpClient) Get(ctx context.Context, path string) (*Response, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
