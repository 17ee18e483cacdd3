package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type dnsResponse struct {
	Answer []struct {
		Name string `json:"name"`
		Type int    `json:"type"`
		Data string `json:"data"`
	} `json:"Answer"`
}

// HandleDNS resolves A records through the Cloudflare DNS-over-HTTPS API
func (c *Commands) HandleDNS(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide a domain. Usage: `/dns example.com`")
	}

	header := http.Header{}
	header.Set("Accept", "application/dns-json")

	var resp dnsResponse
	err := c.web.GetJSON(ctx, fmt.Sprintf("%s?name=%s&type=A", c.endpoints.CloudflareDNS, url.QueryEscape(req.Args)), header, &resp)
	c.countUpstream("cloudflare_dns", err)
	if err != nil {
		return c.reply(ctx, req, "DNS Lookup failed.")
	}

	answers := "No DNS records found."
	if len(resp.Answer) > 0 {
		lines := make([]string, 0, len(resp.Answer))
		for _, a := range resp.Answer {
			lines = append(lines, fmt.Sprintf("%s (%d) → %s", a.Name, a.Type, a.Data))
		}
		answers = strings.Join(lines, "\n")
	}

	return c.reply(ctx, req, fmt.Sprintf("🌐 DNS Lookup for *%s*:\n%s", req.Args, answers))
}
