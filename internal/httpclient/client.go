package httpclient

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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"magnitb2b/internal/logging"
)

// HTTPError represents a non-2xx response with the body captured for debugging.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

// Doer is the subset of *http.Client the transport needs. It exists so
// tests can swap in a double without a network.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options tunes the underlying transport. The zero value gives a 30s
// timeout, instrumented default transport, and no client-side throttling.
type Options struct {
	Timeout time.Duration
	// HTTPClient replaces the built-in client entirely when set. Retries,
	// proxies, TLS config and the like belong to whoever supplies it.
	HTTPClient Doer
	// RateLimit is requests per minute against the remote; zero disables
	// the limiter.
	RateLimit int
	Burst     int
}

type Client struct {
	baseURL string
	client  Doer
	limiter *rate.Limiter
	logger  logging.Logger
}

// New creates an instrumented HTTP client for talking to an external service.
// baseURL should be like "https://b2b-api.magnit.ru/api" (no trailing slash).
func New(baseURL string, opts Options, logger logging.Logger) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}

	doer := opts.HTTPClient
	if doer == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		doer = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RateLimit)/60.0), burst)
	}

	if logger == nil {
		logger = logging.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  doer,
		limiter: limiter,
		logger:  logger,
	}, nil
}

// BaseURL reports the configured gateway root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one call to the remote. Exactly one of JSON and Form
// may be set; both nil means no body.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	// JSON is marshaled as the request body with Content-Type application/json.
	JSON any
	// Form is sent url-encoded with Content-Type application/x-www-form-urlencoded.
	Form url.Values
}

// Response carries the status code and the raw body. A non-2xx status is
// not an error at this level; callers decide what codes mean.
type Response struct {
	StatusCode int
	Body       []byte
}

// buildURL joins the base URL with a path and optional query parameters.
// Plain concatenation keeps path prefixes of the base URL intact.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// Do performs the request and returns the status code plus the raw body.
// It fails only on transport-level problems (marshal, network, read).
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	urlStr, err := c.buildURL(r.Path, r.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.JSON != nil:
		b, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case r.Form != nil:
		body = strings.NewReader(r.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, urlStr, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vals := range r.Header {
		req.Header.Del(k)
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(rc io.ReadCloser) {
		_ = rc.Close()
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// DoJSON performs the request and decodes the JSON response into out.
// out should be a pointer to a struct/map/slice/etc.
// If the status code >= 400, it returns *HTTPError.
func (c *Client) DoJSON(ctx context.Context, r Request, out any) error {
	resp, err := c.Do(ctx, r)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		c.logger.Error("external http error",
			"status", resp.StatusCode,
			"method", r.Method,
			"path", r.Path,
		)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Message:    string(resp.Body),
		}
	}

	if len(resp.Body) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("unmarshal body: %w", err)
	}

	return nil
}
