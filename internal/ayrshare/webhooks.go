package ayrshare

import "context"

// CreateWebhook subscribes an endpoint URL to remote events.
func (c *Client) CreateWebhook(ctx context.Context, hookURL string, events []string) (map[string]any, error) {
	body := map[string]any{"url": hookURL, "events": events}
	return c.object(ctx, "POST", "/webhooks", body, nil)
}

// ListWebhooks lists all webhook subscriptions.
func (c *Client) ListWebhooks(ctx context.Context) ([]map[string]any, error) {
	raw, err := c.request(ctx, "GET", "/webhooks", nil, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "webhooks")
}

// UpdateWebhook changes a subscription's URL or event list.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID, hookURL string, events []string) (map[string]any, error) {
	body := map[string]any{"id": webhookID}
	if hookURL != "" {
		body["url"] = hookURL
	}
	if len(events) > 0 {
		body["events"] = events
	}
	return c.object(ctx, "PATCH", "/webhooks", body, nil)
}

// DeleteWebhook removes a subscription.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (map[string]any, error) {
	return c.object(ctx, "DELETE", "/webhooks", map[string]any{"id": webhookID}, nil)
}
