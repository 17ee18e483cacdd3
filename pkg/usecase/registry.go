package usecase

import (
	"context"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/dt-bots/kotori/pkg/domain/types"
)

// HandlerFunc runs one command to completion. Upstream failures are converted
// into user-visible text inside the handler; the returned error covers only
// delivery problems and is logged, never surfaced to the user.
type HandlerFunc func(ctx context.Context, req Request) error

// Descriptor binds a command token to its handler. The table is pure: no
// request-scoped state is captured.
type Descriptor struct {
	Name types.CommandName
	Run  HandlerFunc
}

// Descriptors returns the full command table
func (c *Commands) Descriptors() []Descriptor {
	return []Descriptor{
		{Name: "/help", Run: c.HandleHelp},
		{Name: "/qotd", Run: c.HandleQuoteOfTheDay},
		{Name: "/trivia", Run: c.HandleTrivia},
		{Name: "/dadjoke", Run: c.HandleDadJoke},
		{Name: "/urban", Run: c.HandleUrban},
		{Name: "/beat", Run: c.HandleBeat},
		{Name: "/dt-search", Run: c.HandleSearch},
		{Name: "/userinfo", Run: c.HandleUserInfo},
		{Name: "/dt-poll", Run: c.HandlePoll},
		{Name: "/dt-remind", Run: c.HandleRemind},
		{Name: "/weather", Run: c.HandleWeather},
		{Name: "/dns", Run: c.HandleDNS},
		{Name: "/website", Run: c.HandleWebsite},
		{Name: "/disify", Run: c.HandleDisify},
		{Name: "/song", Run: c.HandleSong},
		{Name: "/ip", Run: c.HandleIPLookup},
		{Name: "/axolotl", Run: c.HandleAxolotl},
		{Name: "/catfact", Run: c.HandleCatFact},
		{Name: "/dogfact", Run: c.HandleDogFact},
		{Name: "/errorid", Run: c.HandleHTTPCat},
	}
}

// Registry resolves command tokens to handlers. It is built once at startup
// from the command set and never mutated afterwards. Matching is
// exact-string and case-sensitive.
type Registry struct {
	entries  map[types.CommandName]HandlerFunc
	fallback HandlerFunc
}

// NewRegistry builds a registry from the handler set, filtered by the
// deployment's command set.
func NewRegistry(c *Commands, set *model.CommandSet) *Registry {
	if set == nil {
		set = model.DefaultCommandSet()
	}

	entries := make(map[types.CommandName]HandlerFunc)
	for _, d := range c.Descriptors() {
		if set.IsEnabled(d.Name.String()) {
			entries[d.Name] = d.Run
		}
	}

	r := &Registry{entries: entries}
	if set.PreviewsEnabled() {
		r.fallback = c.HandleURLPreviews
	}
	return r
}

// Lookup returns the handler for a command token
func (r *Registry) Lookup(name types.CommandName) (HandlerFunc, bool) {
	h, ok := r.entries[name]
	return h, ok
}

// Fallback returns the handler for plain messages with no matching command
// (the URL preview sub-handler), if enabled.
func (r *Registry) Fallback() (HandlerFunc, bool) {
	if r.fallback == nil {
		return nil, false
	}
	return r.fallback, true
}
