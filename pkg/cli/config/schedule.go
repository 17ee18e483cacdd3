package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Schedule holds the quote-of-the-day schedule configuration. The push is
// disabled unless a target channel is set.
type Schedule struct {
	QotdCron    string
	QotdChannel string
}

// Flags returns CLI flags for Schedule configuration
func (s *Schedule) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "qotd-cron",
			Usage:       "Cron expression for the scheduled quote-of-the-day push",
			Category:    "Schedule",
			Value:       "0 9 * * *",
			Sources:     cli.EnvVars("KOTORI_QOTD_CRON"),
			Destination: &s.QotdCron,
		},
		&cli.StringFlag{
			Name:        "qotd-channel",
			Usage:       "Channel ID receiving the scheduled quote of the day",
			Category:    "Schedule",
			Sources:     cli.EnvVars("KOTORI_QOTD_CHANNEL"),
			Destination: &s.QotdChannel,
		},
	}
}

// Enabled reports whether the scheduled push should run
func (s *Schedule) Enabled() bool {
	return s.QotdChannel != ""
}

// LogValue returns structured log value
func (s Schedule) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("qotd_cron", s.QotdCron),
		slog.Bool("has_qotd_channel", s.QotdChannel != ""),
	)
}
