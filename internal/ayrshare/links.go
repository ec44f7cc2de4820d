package ayrshare

import "context"

// ShortenLink creates a shortened URL, optionally with a custom slug.
func (c *Client) ShortenLink(ctx context.Context, longURL, customSlug string) (map[string]any, error) {
	body := map[string]any{"url": longURL}
	if customSlug != "" {
		body["customSlug"] = customSlug
	}
	return c.object(ctx, "POST", "/links/shorten", body, nil)
}

// LinkAnalytics fetches click metrics for a shortened link.
func (c *Client) LinkAnalytics(ctx context.Context, linkID string) (map[string]any, error) {
	return c.object(ctx, "POST", "/links/analytics", map[string]any{"id": linkID}, nil)
}
