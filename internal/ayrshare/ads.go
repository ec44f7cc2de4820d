package ayrshare

import "context"

// CreateAd turns an existing post into a paid ad.
func (c *Client) CreateAd(ctx context.Context, postID string, budget float64, durationDays int, targeting map[string]any) (map[string]any, error) {
	body := map[string]any{
		"postId":   postID,
		"budget":   budget,
		"duration": durationDays,
	}
	if len(targeting) > 0 {
		body["targeting"] = targeting
	}
	return c.object(ctx, "POST", "/ads/create", body, nil)
}

// AdAnalytics fetches performance metrics for an ad.
func (c *Client) AdAnalytics(ctx context.Context, adID string) (map[string]any, error) {
	return c.object(ctx, "POST", "/ads/analytics", map[string]any{"id": adID}, nil)
}

// UpdateAd changes an ad's budget or status. A zero budget and empty status
// leave the corresponding fields unchanged.
func (c *Client) UpdateAd(ctx context.Context, adID string, budget float64, status string) (map[string]any, error) {
	body := map[string]any{"id": adID}
	if budget > 0 {
		body["budget"] = budget
	}
	if status != "" {
		body["status"] = status
	}
	return c.object(ctx, "PATCH", "/ads", body, nil)
}

// DeleteAd stops and removes an ad.
func (c *Client) DeleteAd(ctx context.Context, adID string) (map[string]any, error) {
	return c.object(ctx, "DELETE", "/ads", map[string]any{"id": adID}, nil)
}
