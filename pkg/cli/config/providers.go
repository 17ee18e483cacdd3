package config

import (
	"log/slog"

	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Providers holds optional third-party API credentials. Missing keys degrade
// the affected handlers to fallback sources instead of disabling them.
type Providers struct {
	UnsplashAccessKey string
	IPInfoToken       string
}

// Flags returns CLI flags for Providers configuration
func (p *Providers) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "unsplash-access-key",
			Usage:       "Unsplash access key for random image lookups",
			Category:    "Providers",
			Sources:     cli.EnvVars("KOTORI_UNSPLASH_ACCESS_KEY"),
			Destination: &p.UnsplashAccessKey,
		},
		&cli.StringFlag{
			Name:        "ipinfo-token",
			Usage:       "ipinfo.io API token for IP lookups",
			Category:    "Providers",
			Sources:     cli.EnvVars("KOTORI_IPINFO_TOKEN"),
			Destination: &p.IPInfoToken,
		},
	}
}

// Configure converts the provider credentials into the handler config
func (p *Providers) Configure() usecase.Config {
	return usecase.Config{
		UnsplashAccessKey: p.UnsplashAccessKey,
		IPInfoToken:       p.IPInfoToken,
	}
}

// LogValue returns structured log value
func (p Providers) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_unsplash_access_key", p.UnsplashAccessKey != ""),
		slog.Bool("has_ipinfo_token", p.IPInfoToken != ""),
	)
}
