package usecase

import (
	"context"
	"fmt"
	"net/url"
)

type disifyResponse struct {
	Disposable bool `json:"disposable"`
	DNS        bool `json:"dns"`
	Format     bool `json:"format"`
}

// HandleDisify checks whether an email address is disposable
func (c *Commands) HandleDisify(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide an email. Usage: `/disify email@example.com`")
	}

	var resp disifyResponse
	err := c.web.GetJSON(ctx, fmt.Sprintf("%s/%s", c.endpoints.Disify, url.PathEscape(req.Args)), nil, &resp)
	c.countUpstream("disify", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to check email.")
	}

	return c.reply(ctx, req, fmt.Sprintf(
		"📧 *Disify Info:*\nEmail: %s\nDisposable: %s\nDomain Exists: %s\nFormat Valid: %s",
		req.Args, yesNo(resp.Disposable), yesNo(resp.DNS), yesNo(resp.Format)))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
