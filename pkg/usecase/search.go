package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type duckDuckGoResponse struct {
	AbstractText  string `json:"AbstractText"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// HandleSearch queries the DuckDuckGo instant answer API
func (c *Commands) HandleSearch(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide a search query. Usage: `/dt-search queryhere`")
	}

	escaped := url.QueryEscape(req.Args)
	var resp duckDuckGoResponse
	err := c.web.GetJSON(ctx, fmt.Sprintf("%s/?q=%s&format=json&no_html=1", c.endpoints.DuckDuckGo, escaped), nil, &resp)
	c.countUpstream("duckduckgo", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to search :(  Try again later")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 *Search Results for %q:*\n", req.Args)

	if resp.AbstractText != "" {
		b.WriteString(resp.AbstractText)
		b.WriteString("\n")
	} else if len(resp.RelatedTopics) > 0 {
		count := 0
		for _, topic := range resp.RelatedTopics {
			line := topic.Text
			if line == "" {
				line = strings.TrimPrefix(topic.FirstURL, "https://")
			}
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteString("\n")
			if count++; count == 3 {
				break
			}
		}
	}

	fmt.Fprintf(&b, "More results: https://duckduckgo.com/?q=%s", escaped)
	return c.reply(ctx, req, b.String())
}
