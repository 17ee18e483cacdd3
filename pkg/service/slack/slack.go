package slack

import (
	"context"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/dt-bots/kotori/pkg/domain/types"
	"github.com/dt-bots/kotori/pkg/service/metrics"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service provides outbound Slack messaging. It implements
// interfaces.SlackClient.
type Service struct {
	client  *slack.Client
	metrics *metrics.Metrics
}

// New creates a Slack service. An empty token disables the bot-token delivery
// path; response-URL delivery keeps working without it. Extra options are
// passed to the underlying client (tests use slack.OptionAPIURL).
func New(token string, m *metrics.Metrics, opts ...slack.Option) *Service {
	svc := &Service{metrics: m}
	if token != "" {
		svc.client = slack.New(token, opts...)
	}
	return svc
}

// Deliver sends a message. Interactive replies go to the one-shot response
// URL with an in-channel marker; everything else goes through
// chat.postMessage with link and media unfurling disabled, since the bot
// builds its own previews.
func (s *Service) Deliver(ctx context.Context, msg model.Message) error {
	if msg.Mode() == model.DeliveryResponseURL {
		err := slack.PostWebhookContext(ctx, msg.ResponseURL, &slack.WebhookMessage{
			Text:         msg.Text,
			ResponseType: slack.ResponseTypeInChannel,
		})
		if err != nil {
			s.count(model.DeliveryResponseURL, "error")
			return goerr.Wrap(err, "failed to post to response URL")
		}
		s.count(model.DeliveryResponseURL, "ok")
		return nil
	}

	if s.client == nil {
		// Configuration error, not a runtime failure. The message is dropped
		// but the condition is observable via logs and metrics.
		ctxlog.From(ctx).Warn("bot token not configured, dropping message",
			"channel", msg.ChannelID,
		)
		s.count(model.DeliveryBotToken, "dropped")
		return nil
	}

	_, _, err := s.client.PostMessageContext(ctx, msg.ChannelID.String(),
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionDisableLinkUnfurl(),
		slack.MsgOptionDisableMediaUnfurl(),
	)
	if err != nil {
		s.count(model.DeliveryBotToken, "error")
		return goerr.Wrap(err, "failed to post message to Slack",
			goerr.V("channel", msg.ChannelID))
	}
	s.count(model.DeliveryBotToken, "ok")
	return nil
}

// UserInfo fetches a user's profile via users.info
func (s *Service) UserInfo(ctx context.Context, userID types.SlackUserID) (*slack.User, error) {
	if s.client == nil {
		return nil, goerr.Wrap(model.ErrConfigMissing, "bot token required for users.info")
	}
	user, err := s.client.GetUserInfoContext(ctx, userID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch user info", goerr.V("user", userID))
	}
	return user, nil
}

func (s *Service) count(mode model.DeliveryMode, status string) {
	if s.metrics != nil {
		s.metrics.DeliveriesTotal.WithLabelValues(string(mode), status).Inc()
	}
}
