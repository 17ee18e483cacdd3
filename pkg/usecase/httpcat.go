package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// validHTTPCodes is the fixed allow-list of status codes http.cat serves
var validHTTPCodes = []int{
	100, 101, 200, 201, 202, 204, 206, 207, 300, 301, 302, 303, 304, 305, 307,
	400, 401, 402, 403, 404, 405, 406, 408, 409, 410, 411, 412, 413, 414, 415,
	416, 417, 418, 420, 421, 422, 423, 424, 425, 426, 429, 431, 444, 450, 451,
	500, 502, 503, 504, 506, 507, 508, 509, 510, 511, 599,
}

// HandleHTTPCat validates the status code against the allow-list before
// building the image URL; no outbound call is made.
func (c *Commands) HandleHTTPCat(ctx context.Context, req Request) error {
	if req.Args == "" {
		return c.reply(ctx, req, "Please provide an HTTP status code. Usage: `/errorid 404`")
	}

	code, err := strconv.Atoi(strings.TrimSpace(req.Args))
	if err != nil || !isValidHTTPCode(code) {
		return c.reply(ctx, req, fmt.Sprintf(
			"Invalid HTTP status code. Try one of these:\n%s", joinCodes(validHTTPCodes)))
	}

	return c.reply(ctx, req, fmt.Sprintf("🐱 *HTTP Cat %d:*\n%s/%d", code, c.endpoints.HTTPCat, code))
}

func isValidHTTPCode(code int) bool {
	for _, v := range validHTTPCodes {
		if v == code {
			return true
		}
	}
	return false
}

func joinCodes(codes []int) string {
	parts := make([]string, len(codes))
	for i, v := range codes {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
