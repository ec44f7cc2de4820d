package ayrshare

import (
	"context"
	"net/url"
)

// SuggestHashtags returns hashtag suggestions for the given content.
func (c *Client) SuggestHashtags(ctx context.Context, content, platform string) ([]string, error) {
	body := map[string]any{"content": content}
	if platform != "" {
		body["platform"] = platform
	}
	raw, err := c.request(ctx, "POST", "/hashtags/suggest", body, nil)
	if err != nil {
		return nil, err
	}
	return stringList(raw, "hashtags")
}

// TrendingHashtags lists what is currently trending on a platform.
func (c *Client) TrendingHashtags(ctx context.Context, platform, region string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("platform", platform)
	if region != "" {
		params.Set("region", region)
	}
	raw, err := c.request(ctx, "GET", "/hashtags/trending", nil, params)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "hashtags")
}

// AnalyzeHashtag fetches performance metrics for one hashtag.
func (c *Client) AnalyzeHashtag(ctx context.Context, hashtag, timeRange string) (map[string]any, error) {
	body := map[string]any{"hashtag": hashtag}
	if timeRange != "" {
		body["timeRange"] = timeRange
	}
	return c.object(ctx, "POST", "/hashtags/analyze", body, nil)
}
