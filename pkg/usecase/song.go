package usecase

import (
	"context"
	"fmt"
	"net/url"
)

// HandleSong replies with search links for the given song name
func (c *Commands) HandleSong(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide a song name. Usage: `/song song name`")
	}

	escaped := url.QueryEscape(req.Args)
	return c.reply(ctx, req, fmt.Sprintf(
		"🎵 *Song Search:* %s\n"+
			"YouTube: https://www.youtube.com/results?search_query=%s\n"+
			"Spotify: https://open.spotify.com/search/%s",
		req.Args, escaped, escaped))
}
