package ayrshare

import (
	"context"
	"net/url"
	"strconv"
)

// SocialFeed fetches the feed of one platform.
func (c *Client) SocialFeed(ctx context.Context, platform string, limit int) ([]map[string]any, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	raw, err := c.request(ctx, "GET", "/feed/"+platform, nil, params)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "posts")
}

// AllFeeds fetches the feeds of every connected platform, keyed by platform.
func (c *Client) AllFeeds(ctx context.Context, limit int) (map[string]any, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return c.object(ctx, "GET", "/feed", nil, params)
}
