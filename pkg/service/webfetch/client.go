package webfetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/corpix/uarand"
	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

const defaultTimeout = 15 * time.Second

// Client is the shared outbound HTTP client for third-party data APIs and
// page fetches. One logical fetch per handler call; no retry, no rate
// limiting. A hung upstream is bounded only by the client timeout.
type Client struct {
	httpClient *http.Client
	userAgent  func() string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent pins the User-Agent instead of rotating random ones
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = func() string { return ua }
	}
}

// New creates a Client with sane defaults
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: uarand.GetRandom,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request. Non-2xx responses are returned as errors; the
// caller owns the body otherwise.
func (c *Client) Get(ctx context.Context, url string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request failed", goerr.V("url", url))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, goerr.Wrap(model.ErrUpstreamFailure, "unexpected status",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode))
	}

	return resp, nil
}

// GetJSON performs a GET request and decodes the JSON body into out
func (c *Client) GetJSON(ctx context.Context, url string, header http.Header, out any) error {
	resp, err := c.Get(ctx, url, header)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return goerr.Wrap(err, "failed to decode JSON response", goerr.V("url", url))
	}
	return nil
}

// GetHTML performs a GET request and parses the body as an HTML document
func (c *Client) GetHTML(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := c.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse HTML", goerr.V("url", url))
	}
	return doc, nil
}
