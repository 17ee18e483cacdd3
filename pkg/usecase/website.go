package usecase

import (
	"context"
	"fmt"
	"strings"
)

// HandleWebsite fetches a page and reports its title and meta description
func (c *Commands) HandleWebsite(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide a domain. Usage: `/website example.com`")
	}

	target := req.Args
	if !strings.HasPrefix(target, "http") {
		target = "https://" + target
	}

	doc, err := c.web.GetHTML(ctx, target)
	c.countUpstream("website", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to fetch website info :(  Try again later")
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "No title"
	}
	description, _ := doc.Find(`meta[name="description"]`).Attr("content")
	if description == "" {
		description = "No description"
	}

	return c.reply(ctx, req, fmt.Sprintf(
		"🌍 *Website Preview for:* %s\nTitle: %s\nDescription: %s",
		req.Args, title, description))
}
