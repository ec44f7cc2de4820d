package ayrshare

import "context"

// ValidatePost dry-runs post content against platform rules without publishing.
func (c *Client) ValidatePost(ctx context.Context, post string, platforms []string, extra map[string]any) (map[string]any, error) {
	body := map[string]any{
		"post":      post,
		"platforms": platforms,
	}
	mergeExtra(body, extra)
	return c.object(ctx, "POST", "/validate/post", body, nil)
}

// ValidateMedia checks a media URL against a platform's format requirements.
func (c *Client) ValidateMedia(ctx context.Context, mediaURL, platform string) (map[string]any, error) {
	body := map[string]any{
		"url":      mediaURL,
		"platform": platform,
	}
	return c.object(ctx, "POST", "/validate/media", body, nil)
}

// ValidateScheduleTime checks a schedule date for validity on a platform.
func (c *Client) ValidateScheduleTime(ctx context.Context, scheduleDate, platform string) (map[string]any, error) {
	body := map[string]any{
		"scheduleDate": scheduleDate,
		"platform":     platform,
	}
	return c.object(ctx, "POST", "/validate/schedule", body, nil)
}
