// Package b2b is a client SDK for the Magnit B2B gateway: orders,
// last-mile delivery claims, Magnit Post parcels and pickup points, and
// Magnit Market seller catalog management.
//
// The client holds the OAuth client credentials and lazily exchanges them
// for an access token on the first call. The same token is sent as
// "Authorization: Bearer ..." to the order/delivery APIs and as "x-api-key"
// to the Magnit Market seller API. No expiry tracking or re-authentication
// on rejection is performed; a token, once obtained or injected, lives as
// long as the client.
package b2b

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"magnitb2b/internal/config"
	"magnitb2b/internal/httpclient"
	"magnitb2b/internal/logging"
)

// The two fixed gateways. UseDemo selects the UAT one.
const (
	ProductionBaseURL = "https://b2b-api.magnit.ru/api"
	DemoBaseURL       = "https://b2b-api-gateway.uat.ya.magnit.ru/api"
)

// DefaultScopes is what Authenticate requests when the caller passes none.
var DefaultScopes = []string{"openid", "last-mile:claims"}

var validate = validator.New()

// Options configures a Client.
type Options struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	// UseDemo points the client at the UAT gateway.
	UseDemo bool
	// BaseURL overrides the gateway entirely (tests, corporate proxies).
	// Leave empty to select by UseDemo.
	BaseURL string

	// Transport tuning, passed through to the HTTP layer unmodified.
	Timeout    time.Duration
	HTTPClient httpclient.Doer
	RateLimit  int
	Burst      int

	Logger logging.Logger
}

// Client talks to the Magnit B2B gateway. Safe for concurrent use; the
// token field is guarded and at most one authentication is issued per
// unauthenticated client.
type Client struct {
	http   *httpclient.Client
	logger logging.Logger

	clientID     string
	clientSecret string

	authMu      sync.Mutex // serializes lazy authentication
	mu          sync.RWMutex
	accessToken string
}

// New creates a client from Options. ClientID and ClientSecret are required.
func New(opts Options) (*Client, error) {
	if err := validate.Struct(&opts); err != nil {
		return nil, fmt.Errorf("invalid client options: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	baseURL := ProductionBaseURL
	if opts.UseDemo {
		baseURL = DemoBaseURL
	}
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	httpCli, err := httpclient.New(baseURL, httpclient.Options{
		Timeout:    opts.Timeout,
		HTTPClient: opts.HTTPClient,
		RateLimit:  opts.RateLimit,
		Burst:      opts.Burst,
	}, logger.With("component", "b2b_http"))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         httpCli,
		logger:       logger,
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
	}, nil
}

// NewFromConfig creates a client from environment-driven configuration.
func NewFromConfig(cfg config.B2BConfig, logger logging.Logger) (*Client, error) {
	return New(Options{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		UseDemo:      cfg.UseDemo,
		Timeout:      cfg.Timeout,
		RateLimit:    cfg.RateLimit,
		Burst:        cfg.Burst,
		Logger:       logger,
	})
}

// BaseURL reports the gateway the client is bound to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// TokenResponse is the provider's client-credentials grant response. Fields
// are returned as-is, without further validation.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
	IDToken     string `json:"id_token,omitempty"`
}

// Authenticate exchanges the client credentials for an access token and
// stores it on the client. Passing no scopes requests DefaultScopes.
func (c *Client) Authenticate(ctx context.Context, scopes ...string) (*TokenResponse, error) {
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("scope", strings.Join(scopes, " "))
	form.Set("grant_type", "client_credentials")

	var tok TokenResponse
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v2/oauth/token",
		Form:   form,
	}, &tok)
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	if tok.AccessToken == "" {
		return nil, &AuthError{Err: errors.New("token response contains no access_token")}
	}

	c.mu.Lock()
	c.accessToken = tok.AccessToken
	c.mu.Unlock()

	c.logger.Debug("authenticated against b2b gateway", "scope", tok.Scope)

	return &tok, nil
}

// EnsureAuthenticated obtains a token with DefaultScopes if none is held.
// It never refreshes: a held token is trusted for the client's lifetime.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	c.mu.RLock()
	held := c.accessToken != ""
	c.mu.RUnlock()
	if held {
		return nil
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()

	// Re-check: another caller may have authenticated while we waited.
	c.mu.RLock()
	held = c.accessToken != ""
	c.mu.RUnlock()
	if held {
		return nil
	}

	_, err := c.Authenticate(ctx)
	return err
}

// SetAccessToken injects a token obtained out-of-band, bypassing the
// authentication flow.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// AccessToken returns the currently held token, empty if unauthenticated.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// headerFamily selects how the token is presented to an API family.
type headerFamily int

const (
	bearerAuth headerFamily = iota // Authorization: Bearer <token>
	apiKeyAuth                     // x-api-key: <token>, Magnit Market
)

func (c *Client) authHeader(ctx context.Context, family headerFamily) (http.Header, error) {
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	h := http.Header{}
	switch family {
	case apiKeyAuth:
		h.Set("x-api-key", c.AccessToken())
	default:
		h.Set("Authorization", "Bearer "+c.AccessToken())
	}
	return h, nil
}

// callJSON runs one authenticated request and returns the decoded body.
func (c *Client) callJSON(ctx context.Context, family headerFamily, method, path string, query url.Values, extra http.Header, body any) (map[string]any, error) {
	header, err := c.authHeader(ctx, family)
	if err != nil {
		return nil, err
	}
	for k, vals := range extra {
		for _, v := range vals {
			header.Add(k, v)
		}
	}

	var out map[string]any
	err = c.http.DoJSON(ctx, httpclient.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Header: header,
		JSON:   body,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// callStatus runs one authenticated request and reports whether the gateway
// answered with exactly the wanted status code. Any body is discarded.
func (c *Client) callStatus(ctx context.Context, family headerFamily, method, path string, body any, want int) (bool, error) {
	header, err := c.authHeader(ctx, family)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: method,
		Path:   path,
		Header: header,
		JSON:   body,
	})
	if err != nil {
		return false, err
	}
	return resp.StatusCode == want, nil
}
