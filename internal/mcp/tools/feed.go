package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// FeedService covers reading platform feeds.
type FeedService interface {
	SocialFeed(ctx context.Context, platform string, limit int) ([]map[string]any, error)
	AllFeeds(ctx context.Context, limit int) (map[string]any, error)
}

type PlatformFeedHandler struct{ Service FeedService }

func (h *PlatformFeedHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	platform := stringArg(args, "platform")

	posts, err := h.Service.SocialFeed(ctx, platform, intArg(args, "limit", 0))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"platform":    platform,
		"total_posts": len(posts),
		"posts":       posts,
	}), nil
}

type AllFeedsHandler struct{ Service FeedService }

func (h *AllFeedsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.AllFeeds(ctx, intArg(req.GetArguments(), "limit", 0))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status": "success",
		"feeds":  result,
	}), nil
}
