package model

import "github.com/dt-bots/kotori/pkg/domain/types"

// DeliveryMode selects how an outbound message reaches Slack.
type DeliveryMode string

const (
	// DeliveryResponseURL posts to the one-shot response URL of an
	// interaction.
	DeliveryResponseURL DeliveryMode = "response_url"
	// DeliveryBotToken posts through chat.postMessage with the bot token.
	DeliveryBotToken DeliveryMode = "bot_token"
)

// Message is a formatted reply produced by a handler and consumed exactly
// once by delivery. Delivery is best-effort; there is no retry state.
type Message struct {
	ChannelID   types.ChannelID
	Text        string
	ResponseURL string
}

// Mode returns the delivery mode. A response URL always wins; it is present
// only for the interactive path and never combined with token delivery for
// the same event.
func (m Message) Mode() DeliveryMode {
	if m.ResponseURL != "" {
		return DeliveryResponseURL
	}
	return DeliveryBotToken
}
