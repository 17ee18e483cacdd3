package usecase

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>\]]+`)

// extractURLs returns all URL-shaped substrings in input order
func extractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// HandleURLPreviews is the fallback for plain messages: every URL in the text
// is fetched concurrently and rendered as a title/description/screenshot
// block. One URL failing degrades only its own block; input order is
// preserved in the joined message. Nothing is sent when the text has no URLs.
func (c *Commands) HandleURLPreviews(ctx context.Context, req Request) error {
	urls := extractURLs(req.Text)
	if len(urls) == 0 {
		return nil
	}

	previews := make([]string, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range urls {
		g.Go(func() error {
			previews[i] = c.previewURL(gctx, u)
			return nil
		})
	}
	// Workers never return errors; degraded previews stand in for failures
	_ = g.Wait()

	return c.reply(ctx, req, strings.Join(previews, "\n\n"))
}

// previewURL builds one preview block. Open Graph values take precedence over
// the plain title and meta description.
func (c *Commands) previewURL(ctx context.Context, target string) string {
	doc, err := c.web.GetHTML(ctx, target)
	if err != nil {
		c.countPreview("error")
		return fmt.Sprintf("🔗 *URL Preview:*\n%s\n(Could not fetch additional details)", target)
	}
	c.countPreview("ok")

	title := metaProperty(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		title = "No title found"
	}

	description := metaProperty(doc, "og:description")
	if description == "" {
		description, _ = doc.Find(`meta[name="description"]`).Attr("content")
	}
	if description == "" {
		description = "No description found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔗 *%s*\n%s\n%s", strings.TrimSpace(title), strings.TrimSpace(description), target)
	if image := metaProperty(doc, "og:image"); image != "" {
		fmt.Fprintf(&b, "\n🌅 *Preview Image:*\n%s", image)
	}
	fmt.Fprintf(&b, "\n🖼️ *Screenshot Preview:*\n%s/%s", c.endpoints.Screenshot, url.QueryEscape(target))
	return b.String()
}

func metaProperty(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).Attr("content")
	return strings.TrimSpace(content)
}

func (c *Commands) countPreview(status string) {
	if c.metrics != nil {
		c.metrics.PreviewsTotal.WithLabelValues(status).Inc()
	}
}
