package ayrshare

import "context"

// History fetches recent posts. When lastRecords is positive it takes
// precedence over lastDays; otherwise lastDays selects the window.
func (c *Client) History(ctx context.Context, lastDays, lastRecords int) ([]map[string]any, error) {
	body := map[string]any{}
	if lastRecords > 0 {
		body["lastRecords"] = lastRecords
	} else {
		body["lastDays"] = lastDays
	}
	raw, err := c.request(ctx, "POST", "/history", body, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "posts")
}

// HistoryByID fetches one post's history record.
func (c *Client) HistoryByID(ctx context.Context, historyID string) (map[string]any, error) {
	return c.object(ctx, "GET", "/history/"+historyID, nil, nil)
}

// ScheduledPosts lists every post still waiting to publish.
func (c *Client) ScheduledPosts(ctx context.Context) ([]map[string]any, error) {
	raw, err := c.request(ctx, "GET", "/history/scheduled", nil, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "posts")
}

// AutoRepostSeries lists the posts belonging to an evergreen series.
func (c *Client) AutoRepostSeries(ctx context.Context, autoRepostID string) ([]map[string]any, error) {
	raw, err := c.request(ctx, "GET", "/history/auto-repost/"+autoRepostID, nil, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "posts")
}
