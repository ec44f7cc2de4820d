package ayrshare

import (
	"context"
	"net/url"
	"strconv"
)

// UploadMedia copies a file at a public URL into the media library.
func (c *Client) UploadMedia(ctx context.Context, fileURL, fileName string) (map[string]any, error) {
	body := map[string]any{"url": fileURL}
	if fileName != "" {
		body["fileName"] = fileName
	}
	return c.object(ctx, "POST", "/media/upload", body, nil)
}

// ValidateMediaURL checks a media URL for accessibility and format.
func (c *Client) ValidateMediaURL(ctx context.Context, mediaURL string) (map[string]any, error) {
	return c.object(ctx, "POST", "/media/validate", map[string]any{"url": mediaURL}, nil)
}

// UnsplashImage fetches an Unsplash image, by search query or by ID.
func (c *Client) UnsplashImage(ctx context.Context, query, imageID string) (map[string]any, error) {
	body := map[string]any{}
	if query != "" {
		body["query"] = query
	}
	if imageID != "" {
		body["imageId"] = imageID
	}
	return c.object(ctx, "POST", "/media/unsplash", body, nil)
}

// ListMedia lists uploaded media, paginated by cursor.
func (c *Client) ListMedia(ctx context.Context, limit int, cursor string) ([]map[string]any, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	raw, err := c.request(ctx, "GET", "/media", nil, params)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "media")
}

// MediaDetails fetches one media item.
func (c *Client) MediaDetails(ctx context.Context, mediaID string) (map[string]any, error) {
	return c.object(ctx, "GET", "/media/"+mediaID, nil, nil)
}

// DeleteMedia removes a media item from the library.
func (c *Client) DeleteMedia(ctx context.Context, mediaID string) (map[string]any, error) {
	return c.object(ctx, "DELETE", "/media/"+mediaID, nil, nil)
}
