package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryService covers post history lookups beyond the history resource.
type HistoryService interface {
	HistoryByID(ctx context.Context, historyID string) (map[string]any, error)
	ScheduledPosts(ctx context.Context) ([]map[string]any, error)
	AutoRepostSeries(ctx context.Context, autoRepostID string) ([]map[string]any, error)
}

type HistoryByIDHandler struct{ Service HistoryService }

func (h *HistoryByIDHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.HistoryByID(ctx, stringArg(req.GetArguments(), "history_id"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status": "success",
		"post":   result,
	}), nil
}

type ScheduledPostsHandler struct{ Service HistoryService }

func (h *ScheduledPostsHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	posts, err := h.Service.ScheduledPosts(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":          "success",
		"total_scheduled": len(posts),
		"posts":           posts,
	}), nil
}

type RepostSeriesHandler struct{ Service HistoryService }

func (h *RepostSeriesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	autoRepostID := stringArg(req.GetArguments(), "auto_repost_id")

	posts, err := h.Service.AutoRepostSeries(ctx, autoRepostID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":         "success",
		"auto_repost_id": autoRepostID,
		"total_posts":    len(posts),
		"posts":          posts,
	}), nil
}
