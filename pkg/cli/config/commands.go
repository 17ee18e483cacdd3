package config

import (
	"log/slog"
	"os"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Commands holds the optional command-set file path
type Commands struct {
	File string
}

// Flags returns CLI flags for Commands configuration
func (c *Commands) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "commands-file",
			Usage:       "YAML file enabling/disabling commands (all enabled if omitted)",
			Category:    "Commands",
			Sources:     cli.EnvVars("KOTORI_COMMANDS_FILE"),
			Destination: &c.File,
		},
	}
}

// Configure loads the command set, returning the default set when no file is
// configured.
func (c *Commands) Configure() (*model.CommandSet, error) {
	if c.File == "" {
		return model.DefaultCommandSet(), nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read command set file", goerr.V("path", c.File))
	}

	var set model.CommandSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, goerr.Wrap(err, "failed to parse command set file", goerr.V("path", c.File))
	}
	if err := set.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid command set", goerr.V("path", c.File))
	}
	return &set, nil
}

// LogValue returns structured log value
func (c Commands) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", c.File),
	)
}
