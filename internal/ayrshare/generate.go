package ayrshare

import "context"

// GeneratePostText asks the remote service to draft post text from a prompt.
func (c *Client) GeneratePostText(ctx context.Context, prompt, platform, tone string) (map[string]any, error) {
	body := map[string]any{"prompt": prompt}
	if platform != "" {
		body["platform"] = platform
	}
	if tone != "" {
		body["tone"] = tone
	}
	return c.object(ctx, "POST", "/generate/text", body, nil)
}

// GenerateHashtags asks the remote service to produce hashtags for content.
func (c *Client) GenerateHashtags(ctx context.Context, content string, count int) (map[string]any, error) {
	body := map[string]any{"content": content}
	if count > 0 {
		body["count"] = count
	}
	return c.object(ctx, "POST", "/generate/hashtags", body, nil)
}

// GenerateCaption asks the remote service to caption an image.
func (c *Client) GenerateCaption(ctx context.Context, imageURL, style string) (map[string]any, error) {
	body := map[string]any{"imageUrl": imageURL}
	if style != "" {
		body["style"] = style
	}
	return c.object(ctx, "POST", "/generate/caption", body, nil)
}
