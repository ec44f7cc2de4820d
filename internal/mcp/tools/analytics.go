package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

// AnalyticsService covers the post, social and profile analytics endpoints.
type AnalyticsService interface {
	PostAnalytics(ctx context.Context, postID string, platforms []string) (*ayrshare.AnalyticsResponse, error)
	SocialAnalytics(ctx context.Context, platforms []string) (*ayrshare.AnalyticsResponse, error)
	ProfileAnalytics(ctx context.Context, platforms []string) (*ayrshare.AnalyticsResponse, error)
}

type PostAnalyticsHandler struct{ Service AnalyticsService }

func (h *PostAnalyticsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	postID := stringArg(args, "post_id")
	platforms := stringSliceArg(args, "platforms")

	analytics, err := h.Service.PostAnalytics(ctx, postID, platforms)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":    "success",
		"post_id":   postID,
		"analytics": analytics.Data,
		"platforms": platformsOrAll(platforms),
	}), nil
}

type SocialAnalyticsHandler struct{ Service AnalyticsService }

func (h *SocialAnalyticsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platforms := stringSliceArg(req.GetArguments(), "platforms")

	analytics, err := h.Service.SocialAnalytics(ctx, platforms)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":    "success",
		"platforms": platforms,
		"analytics": analytics.Data,
	}), nil
}

type ProfileAnalyticsHandler struct{ Service AnalyticsService }

func (h *ProfileAnalyticsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platforms := stringSliceArg(req.GetArguments(), "platforms")

	analytics, err := h.Service.ProfileAnalytics(ctx, platforms)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":    "success",
		"platforms": platformsOrAll(platforms),
		"analytics": analytics.Data,
	}), nil
}
