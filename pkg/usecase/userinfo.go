package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/dt-bots/kotori/pkg/domain/types"
)

var mentionPattern = regexp.MustCompile(`<@(\w+)>`)

// HandleUserInfo fetches a mentioned user's profile. Without a mention the
// invoking user is looked up, which is what the slash-command path always did.
func (c *Commands) HandleUserInfo(ctx context.Context, req Request) error {
	userID := req.UserID
	if m := mentionPattern.FindStringSubmatch(req.Args); m != nil {
		userID = types.SlackUserID(m[1])
	} else if req.Args != "" {
		return c.reply(ctx, req, "Please mention a user. Usage: `/userinfo @username`")
	}
	if userID == "" {
		return c.reply(ctx, req, "Please mention a user. Usage: `/userinfo @username`")
	}

	user, err := c.slack.UserInfo(ctx, userID)
	c.countUpstream("slack_users_info", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to fetch user info.")
	}

	title := user.Profile.Title
	if title == "" {
		title = "None"
	}
	return c.reply(ctx, req, fmt.Sprintf(
		"👤 *User Info:*\n"+
			"Name: %s\n"+
			"Display Name: %s\n"+
			"Title: %s\n"+
			"ID: %s\n"+
			"Time Zone: %s (%s)",
		user.RealName, user.Profile.DisplayName, title, user.ID, user.TZLabel, user.TZ))
}
