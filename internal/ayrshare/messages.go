package ayrshare

import "context"

// SendMessage sends a direct message on one platform.
func (c *Client) SendMessage(ctx context.Context, platform, recipientID, message string, mediaURLs []string) (*PostResponse, error) {
	body := map[string]any{
		"platform":    platform,
		"recipientId": recipientID,
		"message":     message,
	}
	if len(mediaURLs) > 0 {
		body["mediaUrls"] = mediaURLs
	}
	return c.postResult(ctx, "POST", "/messages/send", body)
}

// Conversations lists direct-message conversations for a platform.
func (c *Client) Conversations(ctx context.Context, platform string, limit int) ([]map[string]any, error) {
	body := map[string]any{"platform": platform}
	if limit > 0 {
		body["limit"] = limit
	}
	raw, err := c.request(ctx, "POST", "/messages/conversations", body, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "conversations")
}

// ConversationMessages fetches the messages of one conversation.
func (c *Client) ConversationMessages(ctx context.Context, conversationID, platform string, limit int) ([]map[string]any, error) {
	body := map[string]any{
		"conversationId": conversationID,
		"platform":       platform,
	}
	if limit > 0 {
		body["limit"] = limit
	}
	raw, err := c.request(ctx, "POST", "/messages/get", body, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "messages")
}

// MarkMessagesRead marks direct messages as read.
func (c *Client) MarkMessagesRead(ctx context.Context, messageIDs []string, platform string) (map[string]any, error) {
	body := map[string]any{
		"messageIds": messageIDs,
		"platform":   platform,
	}
	return c.object(ctx, "POST", "/messages/read", body, nil)
}
