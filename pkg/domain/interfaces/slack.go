package interfaces

import (
	"context"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/dt-bots/kotori/pkg/domain/types"
	"github.com/slack-go/slack"
)

// SlackClient is the outbound Slack surface handlers depend on. The concrete
// implementation lives in pkg/service/slack.
type SlackClient interface {
	// Deliver sends a formatted message, choosing between the response-URL
	// path and the bot-token path based on the message itself.
	Deliver(ctx context.Context, msg model.Message) error

	// UserInfo fetches a user's profile via users.info.
	UserInfo(ctx context.Context, userID types.SlackUserID) (*slack.User, error)
}
