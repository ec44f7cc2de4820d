package ayrshare

import "context"

// VerifyMediaURL checks that a media URL is reachable and well formed.
func (c *Client) VerifyMediaURL(ctx context.Context, mediaURL string) (map[string]any, error) {
	body := map[string]any{"url": mediaURL}
	return c.object(ctx, "POST", "/utils/verify-media", body, nil)
}

// Timezones lists the timezone identifiers the API accepts.
func (c *Client) Timezones(ctx context.Context) ([]string, error) {
	raw, err := c.request(ctx, "GET", "/utils/timezones", nil, nil)
	if err != nil {
		return nil, err
	}
	return stringList(raw, "timezones")
}

// ConvertTimezone converts a timestamp between two timezones.
func (c *Client) ConvertTimezone(ctx context.Context, timeStr, fromTimezone, toTimezone string) (map[string]any, error) {
	body := map[string]any{
		"time":         timeStr,
		"fromTimezone": fromTimezone,
		"toTimezone":   toTimezone,
	}
	return c.object(ctx, "POST", "/utils/convert-time", body, nil)
}
