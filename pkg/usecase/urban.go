package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type urbanResponse struct {
	List []struct {
		Definition string `json:"definition"`
		Example    string `json:"example"`
		ThumbsUp   int    `json:"thumbs_up"`
		ThumbsDown int    `json:"thumbs_down"`
	} `json:"list"`
}

// HandleUrban looks up a term on Urban Dictionary
func (c *Commands) HandleUrban(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide a term. Usage: `/urban term`")
	}

	var resp urbanResponse
	err := c.web.GetJSON(ctx, fmt.Sprintf("%s?term=%s", c.endpoints.UrbanDictionary, url.QueryEscape(req.Args)), nil, &resp)
	c.countUpstream("urban_dictionary", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to fetch Urban Dictionary definition.")
	}
	if len(resp.List) == 0 {
		return c.reply(ctx, req, fmt.Sprintf("No definition found for %q.", req.Args))
	}

	top := resp.List[0]
	definition := stripBrackets(top.Definition)
	example := ""
	if top.Example != "" {
		example = fmt.Sprintf("*Example:*\n> %s", stripBrackets(top.Example))
	}

	return c.reply(ctx, req, fmt.Sprintf(
		"📚 *Urban Dictionary: %s*\n%s\n\n%s\n\n👍 %d 👎 %d",
		req.Args, definition, example, top.ThumbsUp, top.ThumbsDown))
}

// stripBrackets removes Urban Dictionary's cross-reference markup
func stripBrackets(s string) string {
	return strings.NewReplacer("[", "", "]", "").Replace(s)
}
