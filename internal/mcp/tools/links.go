package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// LinkService covers the URL shortener endpoints.
type LinkService interface {
	ShortenLink(ctx context.Context, longURL, customSlug string) (map[string]any, error)
	LinkAnalytics(ctx context.Context, linkID string) (map[string]any, error)
}

type ShortenURLHandler struct{ Service LinkService }

func (h *ShortenURLHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	longURL := stringArg(args, "url")
	customSlug := stringArg(args, "custom_slug")

	result, err := h.Service.ShortenLink(ctx, longURL, customSlug)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":        "success",
		"original_url":  longURL,
		"shortened_url": result["shortUrl"],
		"link_id":       result["id"],
		"custom_slug":   orNil(customSlug),
		"result":        result,
	}), nil
}

type LinkAnalyticsHandler struct{ Service LinkService }

func (h *LinkAnalyticsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkID := stringArg(req.GetArguments(), "link_id")

	analytics, err := h.Service.LinkAnalytics(ctx, linkID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":    "success",
		"link_id":   linkID,
		"analytics": analytics,
	}), nil
}
