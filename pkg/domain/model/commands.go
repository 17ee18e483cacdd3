package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// CommandSet controls which commands a deployment exposes. Historically the
// bot shipped as two near-identical entry points with different command
// tables; this replaces the split with one dispatcher configured by a
// feature set.
type CommandSet struct {
	// Enabled, when non-empty, is an allow-list of command tokens.
	Enabled []string `yaml:"enabled"`
	// Disabled removes commands from the default (everything-on) set.
	// Mutually exclusive with Enabled.
	Disabled []string `yaml:"disabled"`
	// URLPreviews toggles the no-command fallback on the message path.
	URLPreviews *bool `yaml:"url_previews"`
}

// DefaultCommandSet enables every command and the URL preview fallback.
func DefaultCommandSet() *CommandSet {
	return &CommandSet{}
}

// Validate checks the configuration for contradictions.
func (s *CommandSet) Validate() error {
	if len(s.Enabled) > 0 && len(s.Disabled) > 0 {
		return goerr.New("enabled and disabled lists are mutually exclusive")
	}
	for _, name := range append(append([]string{}, s.Enabled...), s.Disabled...) {
		if !strings.HasPrefix(name, "/") {
			return goerr.New("command names must start with '/'", goerr.V("name", name))
		}
	}
	return nil
}

// IsEnabled reports whether a command token is part of this set.
func (s *CommandSet) IsEnabled(name string) bool {
	if len(s.Enabled) > 0 {
		for _, n := range s.Enabled {
			if n == name {
				return true
			}
		}
		return false
	}
	for _, n := range s.Disabled {
		if n == name {
			return false
		}
	}
	return true
}

// PreviewsEnabled reports whether the URL preview fallback is active.
func (s *CommandSet) PreviewsEnabled() bool {
	if s.URLPreviews == nil {
		return true
	}
	return *s.URLPreviews
}
