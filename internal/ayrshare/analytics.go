package ayrshare

import "context"

// PostAnalytics fetches engagement metrics for one post, optionally scoped
// to specific platforms. Analytics queries are POSTs on the remote API even
// though they are reads.
func (c *Client) PostAnalytics(ctx context.Context, postID string, platforms []string) (*AnalyticsResponse, error) {
	body := map[string]any{"id": postID}
	if len(platforms) > 0 {
		body["platforms"] = platforms
	}
	data, err := c.object(ctx, "POST", "/analytics/post", body, nil)
	if err != nil {
		return nil, err
	}
	return &AnalyticsResponse{Data: data}, nil
}

// SocialAnalytics fetches network-level metrics across platforms.
func (c *Client) SocialAnalytics(ctx context.Context, platforms []string) (*AnalyticsResponse, error) {
	data, err := c.object(ctx, "POST", "/analytics/social", map[string]any{"platforms": platforms}, nil)
	if err != nil {
		return nil, err
	}
	return &AnalyticsResponse{Data: data, Platforms: platforms}, nil
}

// ProfileAnalytics fetches account-level metrics such as follower counts
// and demographics.
func (c *Client) ProfileAnalytics(ctx context.Context, platforms []string) (*AnalyticsResponse, error) {
	body := map[string]any{}
	if len(platforms) > 0 {
		body["platforms"] = platforms
	}
	data, err := c.object(ctx, "POST", "/analytics/profile", body, nil)
	if err != nil {
		return nil, err
	}
	return &AnalyticsResponse{Data: data, Platforms: platforms}, nil
}
