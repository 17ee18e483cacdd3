package usecase

import (
	"context"
	"fmt"

	"github.com/dt-bots/kotori/pkg/domain/model"
	"github.com/dt-bots/kotori/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
)

type quotableResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type quotesRestResponse struct {
	Contents struct {
		Quotes []struct {
			Quote  string `json:"quote"`
			Author string `json:"author"`
		} `json:"quotes"`
	} `json:"contents"`
}

type zenQuotesResponse []struct {
	Quote  string `json:"q"`
	Author string `json:"a"`
}

// HandleQuoteOfTheDay fetches and posts the quote of the day
func (c *Commands) HandleQuoteOfTheDay(ctx context.Context, req Request) error {
	quote, author, ok := c.fetchQuote(ctx)
	if !ok {
		return c.reply(ctx, req, "Could not fetch quote of the day. Try again later.")
	}
	return c.reply(ctx, req, fmt.Sprintf("💬 *Quote of the Day:*\n> \"%s\" — *%s*", quote, author))
}

// PushQuoteOfTheDay posts the quote of the day to a fixed channel. Used by
// the schedule service and the /qotd HTTP trigger.
func (c *Commands) PushQuoteOfTheDay(ctx context.Context, channelID types.ChannelID) error {
	quote, author, ok := c.fetchQuote(ctx)
	text := "Could not fetch quote of the day. Try again later."
	if ok {
		text = fmt.Sprintf("💬 *Quote of the Day:*\n> \"%s\" — *%s*", quote, author)
	}
	return c.slack.Deliver(ctx, model.Message{ChannelID: channelID, Text: text})
}

// fetchQuote tries each provider in order until one yields a usable
// quote+author pair.
func (c *Commands) fetchQuote(ctx context.Context) (quote, author string, ok bool) {
	logger := ctxlog.From(ctx)

	var quotable quotableResponse
	err := c.web.GetJSON(ctx, c.endpoints.Quotable, nil, &quotable)
	c.countUpstream("quotable", err)
	if err == nil && quotable.Content != "" && quotable.Author != "" {
		return quotable.Content, quotable.Author, true
	}
	logger.Debug("quotable failed, trying next provider", "error", err)

	var rest quotesRestResponse
	err = c.web.GetJSON(ctx, c.endpoints.QuotesRest, nil, &rest)
	c.countUpstream("quotes_rest", err)
	if err == nil && len(rest.Contents.Quotes) > 0 {
		q := rest.Contents.Quotes[0]
		if q.Quote != "" && q.Author != "" {
			return q.Quote, q.Author, true
		}
	}
	logger.Debug("quotes.rest failed, trying next provider", "error", err)

	var zen zenQuotesResponse
	err = c.web.GetJSON(ctx, c.endpoints.ZenQuotes, nil, &zen)
	c.countUpstream("zenquotes", err)
	if err == nil && len(zen) > 0 && zen[0].Quote != "" && zen[0].Author != "" {
		return zen[0].Quote, zen[0].Author, true
	}
	logger.Debug("all quote providers failed", "error", err)

	return "", "", false
}
