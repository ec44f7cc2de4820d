package ayrshare

import "context"

// Comments fetches the comments on a post.
func (c *Client) Comments(ctx context.Context, postID string, platforms []string) ([]map[string]any, error) {
	body := map[string]any{"id": postID}
	if len(platforms) > 0 {
		body["platforms"] = platforms
	}
	raw, err := c.request(ctx, "POST", "/comments", body, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "comments")
}

// AddComment posts a comment on an existing post.
func (c *Client) AddComment(ctx context.Context, postID, commentText string, platforms []string) (*PostResponse, error) {
	body := map[string]any{"id": postID, "comment": commentText}
	if len(platforms) > 0 {
		body["platforms"] = platforms
	}
	return c.postResult(ctx, "POST", "/comments/post", body)
}

// ReplyToComment answers an existing comment on one platform.
func (c *Client) ReplyToComment(ctx context.Context, commentID, replyText, platform string) (*PostResponse, error) {
	body := map[string]any{
		"commentId": commentID,
		"comment":   replyText,
		"platform":  platform,
	}
	return c.postResult(ctx, "POST", "/comments/reply", body)
}

// DeleteComment removes a comment, optionally from specific platforms.
func (c *Client) DeleteComment(ctx context.Context, commentID string, platforms []string) (map[string]any, error) {
	body := map[string]any{"id": commentID}
	if len(platforms) > 0 {
		body["platforms"] = platforms
	}
	return c.object(ctx, "DELETE", "/comments", body, nil)
}
