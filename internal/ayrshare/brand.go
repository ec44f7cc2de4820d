package ayrshare

import "context"

// CreateBrandProfile stores brand identity assets (name, logo, colors).
func (c *Client) CreateBrandProfile(ctx context.Context, brandData map[string]any) (map[string]any, error) {
	return c.object(ctx, "POST", "/brand/create", brandData, nil)
}

// BrandAssets fetches the stored brand assets and templates.
func (c *Client) BrandAssets(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "GET", "/brand", nil, nil)
}

// UpdateBrandSettings replaces brand profile settings.
func (c *Client) UpdateBrandSettings(ctx context.Context, brandData map[string]any) (map[string]any, error) {
	return c.object(ctx, "PUT", "/brand/update", brandData, nil)
}
