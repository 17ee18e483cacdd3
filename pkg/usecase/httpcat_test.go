package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dt-bots/kotori/pkg/service/webfetch"
	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newCommands(fake *fakeSlack, opts ...usecase.Option) *usecase.Commands {
	return usecase.New(fake, webfetch.New(), nil, usecase.Config{}, opts...)
}

func TestHandleHTTPCat(t *testing.T) {
	t.Run("valid code builds image URL", func(t *testing.T) {
		fake := &fakeSlack{}
		c := newCommands(fake)

		gt.NoError(t, c.HandleHTTPCat(context.Background(), usecase.Request{Args: "404", ChannelID: "C1"}))
		gt.True(t, strings.Contains(fake.lastText(), "https://http.cat/404"))
	})

	t.Run("code outside allow-list returns the list", func(t *testing.T) {
		fake := &fakeSlack{}
		c := newCommands(fake)

		gt.NoError(t, c.HandleHTTPCat(context.Background(), usecase.Request{Args: "999", ChannelID: "C1"}))

		text := fake.lastText()
		gt.True(t, strings.Contains(text, "Invalid HTTP status code"))
		gt.True(t, strings.Contains(text, "404"))
		gt.False(t, strings.Contains(text, "http.cat/999"))
	})

	t.Run("non-numeric argument is rejected", func(t *testing.T) {
		fake := &fakeSlack{}
		c := newCommands(fake)

		gt.NoError(t, c.HandleHTTPCat(context.Background(), usecase.Request{Args: "teapot", ChannelID: "C1"}))
		gt.True(t, strings.Contains(fake.lastText(), "Invalid HTTP status code"))
	})

	t.Run("missing argument returns usage", func(t *testing.T) {
		fake := &fakeSlack{}
		c := newCommands(fake)

		gt.NoError(t, c.HandleHTTPCat(context.Background(), usecase.Request{ChannelID: "C1"}))
		gt.True(t, strings.Contains(fake.lastText(), "Usage: `/errorid 404`"))
	})
}
