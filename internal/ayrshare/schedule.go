package ayrshare

import "context"

// SetAutoSchedule configures automatic posting times. The config map uses
// the remote wire spellings (times, days, platforms, timezone).
func (c *Client) SetAutoSchedule(ctx context.Context, scheduleConfig map[string]any) (map[string]any, error) {
	return c.object(ctx, "POST", "/auto-schedule/set", scheduleConfig, nil)
}

// GetAutoSchedule fetches the current auto-schedule configuration.
func (c *Client) GetAutoSchedule(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "GET", "/auto-schedule", nil, nil)
}

// UpdateAutoSchedule replaces the auto-schedule configuration.
func (c *Client) UpdateAutoSchedule(ctx context.Context, scheduleConfig map[string]any) (map[string]any, error) {
	return c.object(ctx, "PUT", "/auto-schedule/update", scheduleConfig, nil)
}

// DeleteAutoSchedule removes the auto-schedule.
func (c *Client) DeleteAutoSchedule(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "DELETE", "/auto-schedule", nil, nil)
}
