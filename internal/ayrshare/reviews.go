package ayrshare

import "context"

// Reviews fetches Google Business Profile reviews, optionally for one
// location.
func (c *Client) Reviews(ctx context.Context, locationID string) ([]map[string]any, error) {
	body := map[string]any{}
	if locationID != "" {
		body["locationId"] = locationID
	}
	raw, err := c.request(ctx, "POST", "/reviews", body, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "reviews")
}

// ReplyToReview posts a response to a review.
func (c *Client) ReplyToReview(ctx context.Context, reviewID, responseText string) (map[string]any, error) {
	body := map[string]any{
		"reviewId": reviewID,
		"response": responseText,
	}
	return c.object(ctx, "POST", "/reviews/reply", body, nil)
}

// DeleteReviewResponse removes a previously posted review response.
func (c *Client) DeleteReviewResponse(ctx context.Context, reviewID string) (map[string]any, error) {
	return c.object(ctx, "DELETE", "/reviews/reply", map[string]any{"reviewId": reviewID}, nil)
}
