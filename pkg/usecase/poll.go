package usecase

import (
	"context"
	"fmt"
)

// HandlePoll posts a reaction-based poll message. No state is kept; the
// "poll" is just the message and its reactions.
func (c *Commands) HandlePoll(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide a poll question. Usage: `/dt-poll questionhere`")
	}
	return c.reply(ctx, req, fmt.Sprintf("📊 *Poll:* %s\nReact with :thumbsup: or :thumbsdown:", req.Args))
}

// HandleRemind acknowledges a reminder. Persistence is out of scope, so the
// acknowledgment is the whole feature.
func (c *Commands) HandleRemind(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide a reminder. Usage: `/dt-remind Do something`")
	}
	return c.reply(ctx, req, fmt.Sprintf("⏰ *Reminder set:* %s", req.Args))
}
