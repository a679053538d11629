package homeassistant

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/StefanBossbaly/home-assistant-rest/internal/httpclient"
	"github.com/StefanBossbaly/home-assistant-rest/internal/middleware"
	"github.com/StefanBossbaly/home-assistant-rest/internal/response"
	"github.com/StefanBossbaly/home-assistant-rest/observability"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client is a Home Assistant REST API client.
//
// A Client holds no mutable state between calls: every method issues an
// independent request and is safe for concurrent use.
type Client struct {
	baseURL     *url.URL
	httpClient  *httpclient.Client
	diagnostics bool
}

// ClientConfig holds configuration for the Home Assistant client.
type ClientConfig struct {
	// BaseURL is the base URL of the Home Assistant instance,
	// e.g. "http://homeassistant.local:8123".
	BaseURL string

	// Token is the long-lived access token used as a bearer token on
	// every request.
	Token string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout (defaults to 30 seconds).
	Timeout time.Duration

	// TLSConfig overrides TLS settings, e.g. for instances behind
	// self-signed certificates (optional).
	TLSConfig *tls.Config

	// RateLimitPerMinute enables an opt-in client-side rate limiter.
	// Zero (the default) disables rate limiting entirely: the client
	// imposes no ordering or throttling of its own.
	RateLimitPerMinute int

	// Diagnostics enables enhanced decode errors that carry the JSON
	// field path of the value that failed to deserialize. Useful when
	// chasing schema drift against the upstream instance.
	Diagnostics bool

	// Logger for observability (optional, uses noop logger if nil).
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil).
	Metrics observability.MetricsRecorder
}

// New creates a new Home Assistant client with default settings.
//
// New does not contact the instance; it only validates the base URL. Call
// Status to verify that the API is reachable.
//
// Example:
//
//	client, err := homeassistant.New("http://homeassistant.local:8123", token)
func New(baseURL, token string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		BaseURL: baseURL,
		Token:   token,
	})
}

// NewWithConfig creates a new Home Assistant client with custom configuration.
// Use this when you need to customize timeouts, TLS, observability hooks or
// the opt-in rate limiter.
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Token == "" {
		return nil, ErrEmptyToken
	}

	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	// Middleware chain from outside in: observability first so it sees the
	// full request lifecycle, then the opt-in rate limiter, then auth.
	mw := []httpclient.Middleware{
		middleware.Observability(cfg.Logger, cfg.Metrics),
	}
	if cfg.RateLimitPerMinute > 0 {
		mw = append(mw, middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: rate.NewLimiter(rate.Limit(float64(cfg.RateLimitPerMinute)/60.0), cfg.RateLimitPerMinute),
			Logger:  cfg.Logger,
			Metrics: cfg.Metrics,
		}))
	}
	mw = append(mw, middleware.BearerAuth(cfg.Token))
	if cfg.TLSConfig != nil {
		mw = append(mw, middleware.TLSConfig(cfg.TLSConfig))
	}

	opts := []httpclient.Option{
		httpclient.WithTimeout(timeout),
		httpclient.WithMiddleware(mw...),
	}
	if cfg.HTTPClient != nil {
		opts = append([]httpclient.Option{httpclient.WithHTTPClient(cfg.HTTPClient)}, opts...)
	}

	return &Client{
		baseURL:     base,
		httpClient:  httpclient.New(opts...),
		diagnostics: cfg.Diagnostics,
	}, nil
}

// parseBaseURL validates the base URL at construction time so that a
// misconfigured client fails early with a descriptive error.
func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("base URL is required")
	}

	base, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", raw)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Newf("base URL %q must use http or https", raw)
	}
	if base.Host == "" {
		return nil, errors.Newf("base URL %q has no host", raw)
	}

	return base, nil
}

// endpointURL joins an API endpoint path and optional query parameters onto
// the base URL. The endpoint always begins with /api.
func (c *Client) endpointURL(endpoint string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + endpoint
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do issues a request and returns the raw response body. Non-2xx responses
// are converted to *APIError; transport failures are passed through wrapped.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL(endpoint, query), reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, endpoint)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFromResponse(resp.StatusCode, data)
	}

	return data, nil
}

// getJSON issues a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	data, err := c.do(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return err
	}
	return c.decode(data, out)
}

// getText issues a GET request against an endpoint that responds with plain text.
func (c *Client) getText(ctx context.Context, endpoint string) (string, error) {
	data, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// getBytes issues a GET request and returns the raw response bytes.
func (c *Client) getBytes(ctx context.Context, endpoint string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, nil)
}

// postJSON issues a POST request with a JSON body and decodes the JSON
// response into out.
func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, endpoint, nil, body)
	if err != nil {
		return err
	}
	return c.decode(data, out)
}

// postText issues a POST request with a JSON body against an endpoint that
// responds with plain text.
func (c *Client) postText(ctx context.Context, endpoint string, body any) (string, error) {
	data, err := c.do(ctx, http.MethodPost, endpoint, nil, body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Client) decode(data []byte, out any) error {
	if c.diagnostics {
		return response.DecodeWithPath(data, out)
	}
	return response.Decode(data, out)
}
