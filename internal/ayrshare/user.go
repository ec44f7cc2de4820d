package ayrshare

import "context"

// UserInfo fetches the account details.
func (c *Client) UserInfo(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "GET", "/user", nil, nil)
}

// UpdateUserSettings replaces account settings.
func (c *Client) UpdateUserSettings(ctx context.Context, settings map[string]any) (map[string]any, error) {
	return c.object(ctx, "PUT", "/user/update", settings, nil)
}

// APILimits fetches quota and current usage.
func (c *Client) APILimits(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "GET", "/user/limits", nil, nil)
}
