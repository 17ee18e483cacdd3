package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type ipInfoResponse struct {
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"`
	Org      string `json:"org"`
	Timezone string `json:"timezone"`
	Error    *struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"error"`
}

type ipAPIResponse struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryName string `json:"country_name"`
	Org         string `json:"org"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

// HandleIPLookup looks up an IP address on ipinfo.io, falling back to
// ipapi.co when the primary provider fails. Both failing yields the generic
// failure string, never a partially filled template.
func (c *Commands) HandleIPLookup(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide an IP address. Usage: `/ip 1.1.1.1`")
	}

	if text, err := c.lookupIPInfo(ctx, req.Args); err == nil {
		return c.reply(ctx, req, text)
	} else {
		ctxlog.From(ctx).Debug("primary IP provider failed, trying fallback", "error", err)
	}

	if text, err := c.lookupIPAPI(ctx, req.Args); err == nil {
		return c.reply(ctx, req, text)
	}

	return c.reply(ctx, req, "IP lookup failed :( Please try again later.")
}

func (c *Commands) lookupIPInfo(ctx context.Context, ip string) (string, error) {
	target := fmt.Sprintf("%s/%s/json?token=%s", c.endpoints.IPInfo, url.PathEscape(ip), url.QueryEscape(c.cfg.IPInfoToken))

	var resp ipInfoResponse
	err := c.web.GetJSON(ctx, target, nil, &resp)
	if err == nil && resp.Error != nil {
		err = goerr.New("ipinfo error", goerr.V("message", resp.Error.Message))
	}
	c.countUpstream("ipinfo", err)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"🌍 *IP Info for %s:*\n"+
			"City: %s\n"+
			"Region: %s\n"+
			"Country: %s\n"+
			"Location: %s\n"+
			"Organization: %s\n"+
			"Timezone: %s",
		ip,
		orUnknown(resp.City), orUnknown(resp.Region), orUnknown(resp.Country),
		orUnknown(resp.Loc), orUnknown(resp.Org), orUnknown(resp.Timezone)), nil
}

func (c *Commands) lookupIPAPI(ctx context.Context, ip string) (string, error) {
	target := fmt.Sprintf("%s/%s/json/", c.endpoints.IPAPI, url.PathEscape(ip))

	var resp ipAPIResponse
	err := c.web.GetJSON(ctx, target, nil, &resp)
	if err == nil && resp.Error {
		err = goerr.New("ipapi error", goerr.V("reason", resp.Reason))
	}
	c.countUpstream("ipapi", err)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"🌍 *IP Info for %s:*\n"+
			"City: %s\n"+
			"Region: %s\n"+
			"Country: %s\n"+
			"ISP: %s",
		ip,
		orUnknown(resp.City), orUnknown(resp.Region), orUnknown(resp.CountryName), orUnknown(resp.Org)), nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
