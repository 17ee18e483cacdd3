package usecase

import (
	"context"
	"fmt"
	"net/http"
)

type dadJokeResponse struct {
	Joke string `json:"joke"`
}

// HandleDadJoke fetches a random dad joke
func (c *Commands) HandleDadJoke(ctx context.Context, req Request) error {
	header := http.Header{}
	header.Set("Accept", "application/json")

	var resp dadJokeResponse
	err := c.web.GetJSON(ctx, c.endpoints.DadJoke, header, &resp)
	c.countUpstream("icanhazdadjoke", err)
	if err != nil || resp.Joke == "" {
		return c.reply(ctx, req, "Failed to fetch dad joke, looks like the bot also does not like dad jokes")
	}

	return c.reply(ctx, req, fmt.Sprintf("😂 *Dad Joke:*\n%s", resp.Joke))
}
