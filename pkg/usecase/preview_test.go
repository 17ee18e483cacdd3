package usecase_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestExtractURLs(t *testing.T) {
	gt.Equal(t, usecase.ExtractURLs("see https://example.com/a and http://example.org today"),
		[]string{"https://example.com/a", "http://example.org"})
	gt.Equal(t, usecase.ExtractURLs("no links here"), []string(nil))
	// Angle brackets terminate a URL (Slack wraps links in <...>)
	gt.Equal(t, usecase.ExtractURLs("<https://example.com/x>"), []string{"https://example.com/x"})
}

func TestHandleURLPreviews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bad", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/good", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head>
			<title>Plain Title</title>
			<meta name="description" content="plain description">
			<meta property="og:title" content="OG Title">
			<meta property="og:description" content="OG description">
			<meta property="og:image" content="https://example.com/og.png">
		</head><body></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fake := &fakeSlack{}
	c := newCommands(fake)

	badURL := srv.URL + "/bad"
	goodURL := srv.URL + "/good"

	t.Run("mixed success keeps input order", func(t *testing.T) {
		req := usecase.Request{
			Text:      fmt.Sprintf("check %s and %s", badURL, goodURL),
			ChannelID: "C1",
		}
		gt.NoError(t, c.HandleURLPreviews(context.Background(), req))

		paragraphs := strings.Split(fake.lastText(), "\n\n")
		gt.Equal(t, len(paragraphs), 2)

		// Failed URL degrades to a one-line fallback without a screenshot
		gt.True(t, strings.Contains(paragraphs[0], badURL))
		gt.True(t, strings.Contains(paragraphs[0], "Could not fetch additional details"))
		gt.False(t, strings.Contains(paragraphs[0], "Screenshot"))

		// Open Graph values win over plain title/description
		gt.True(t, strings.Contains(paragraphs[1], "OG Title"))
		gt.True(t, strings.Contains(paragraphs[1], "OG description"))
		gt.True(t, strings.Contains(paragraphs[1], "https://example.com/og.png"))
		gt.True(t, strings.Contains(paragraphs[1], "image.thum.io"))
	})

	t.Run("falls back to plain tags without Open Graph", func(t *testing.T) {
		mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, `<html><head><title>Only Title</title></head><body></body></html>`)
		})

		fake := &fakeSlack{}
		c := newCommands(fake)
		req := usecase.Request{Text: srv.URL + "/plain", ChannelID: "C1"}
		gt.NoError(t, c.HandleURLPreviews(context.Background(), req))

		text := fake.lastText()
		gt.True(t, strings.Contains(text, "Only Title"))
		gt.True(t, strings.Contains(text, "No description found"))
	})

	t.Run("no URLs sends nothing", func(t *testing.T) {
		fake := &fakeSlack{}
		c := newCommands(fake)
		gt.NoError(t, c.HandleURLPreviews(context.Background(), usecase.Request{Text: "hello", ChannelID: "C1"}))
		gt.Equal(t, len(fake.messages()), 0)
	})
}
