package usecase

import "context"

const helpText = "🤖 *Kotori Help*\n" +
	"*General Commands:*\n" +
	"/help - Show this menu\n" +
	"/qotd - Get the quote of the day\n" +
	"/trivia - Get a random trivia question\n" +
	"/dadjoke - Get a random dad joke\n" +
	"/urban <term> - Look up a term on Urban Dictionary\n" +
	"/beat [time/@XXX] - Convert between .beat time and regular time\n" +
	"\n" +
	"*Utility Commands:*\n" +
	"/dt-search <query> - Search the web\n" +
	"/userinfo @user - Get user info\n" +
	"/dt-poll <question> - Create a poll\n" +
	"/dt-remind <task> - Set a reminder\n" +
	"/weather <city> - Get weather info\n" +
	"\n" +
	"*Tech Tools:*\n" +
	"/dns <domain> - DNS record lookup\n" +
	"/website <domain> - Website info\n" +
	"/disify <email> - Disposable email check\n" +
	"/ip <ip> - Get IP info\n" +
	"/errorid <code> - View HTTP cat for status code\n" +
	"\n" +
	"*Fun Commands:*\n" +
	"/song <name> - Search for a song\n" +
	"/axolotl - Random axolotl image\n" +
	"/catfact - Random cat fact\n" +
	"/dogfact - Random dog fact\n" +
	"\n" +
	"*Automatic Features:*\n" +
	"URLs in messages will generate previews with screenshots"

// HandleHelp sends the static help menu
func (c *Commands) HandleHelp(ctx context.Context, req Request) error {
	return c.reply(ctx, req, helpText)
}
