package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration. The bot token is optional: without it the
// bot can still answer slash commands through response URLs, but event-path
// deliveries are dropped with a warning.
type Slack struct {
	BotToken string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for chat.postMessage and users.info",
			Category:    "Slack",
			Sources:     cli.EnvVars("KOTORI_SLACK_BOT_TOKEN"),
			Destination: &s.BotToken,
		},
	}
}

// IsConfigured checks whether token-based delivery is available
func (s *Slack) IsConfigured() bool {
	return s.BotToken != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_bot_token", s.BotToken != ""),
	)
}
