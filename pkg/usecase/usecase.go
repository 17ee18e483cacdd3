package usecase

import (
	"context"
	"time"

	"github.com/dt-bots/kotori/pkg/domain/interfaces"
	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/dt-bots/kotori/pkg/domain/types"
	"github.com/dt-bots/kotori/pkg/service/metrics"
	"github.com/dt-bots/kotori/pkg/service/webfetch"
)

// Config holds the optional provider credentials. Absence of either key
// degrades the affected handler to a fallback source instead of disabling it.
type Config struct {
	UnsplashAccessKey string
	IPInfoToken       string
}

// Request carries the request-scoped values a handler needs. Handlers receive
// these explicitly instead of capturing them in per-request closures.
type Request struct {
	// Args is the argument text for the matched command, possibly empty
	Args string
	// Text is the full message text; the URL preview fallback reads it
	Text        string
	ChannelID   types.ChannelID
	UserID      types.SlackUserID
	ResponseURL string
}

// Commands implements the handler set. One instance is built at startup and
// shared across requests; it holds no per-request state.
type Commands struct {
	slack     interfaces.SlackClient
	web       *webfetch.Client
	metrics   *metrics.Metrics
	cfg       Config
	endpoints Endpoints
	now       func() time.Time
}

// Option configures Commands
type Option func(*Commands)

// WithEndpoints overrides the third-party endpoint table (used by tests)
func WithEndpoints(e Endpoints) Option {
	return func(c *Commands) {
		c.endpoints = e
	}
}

// WithClock overrides the time source (used by beat-time tests)
func WithClock(now func() time.Time) Option {
	return func(c *Commands) {
		c.now = now
	}
}

// New creates the command handler set
func New(slackClient interfaces.SlackClient, web *webfetch.Client, m *metrics.Metrics, cfg Config, opts ...Option) *Commands {
	c := &Commands{
		slack:     slackClient,
		web:       web,
		metrics:   m,
		cfg:       cfg,
		endpoints: DefaultEndpoints(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// reply delivers text back to wherever the request came from
func (c *Commands) reply(ctx context.Context, req Request, text string) error {
	return c.slack.Deliver(ctx, model.Message{
		ChannelID:   req.ChannelID,
		Text:        text,
		ResponseURL: req.ResponseURL,
	})
}

// countUpstream records the outcome of one third-party call
func (c *Commands) countUpstream(provider string, err error) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.UpstreamRequestsTotal.WithLabelValues(provider, status).Inc()
}
