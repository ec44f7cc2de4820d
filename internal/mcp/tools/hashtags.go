package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HashtagService covers hashtag discovery and analysis.
type HashtagService interface {
	SuggestHashtags(ctx context.Context, content, platform string) ([]string, error)
	TrendingHashtags(ctx context.Context, platform, region string) ([]map[string]any, error)
	AnalyzeHashtag(ctx context.Context, hashtag, timeRange string) (map[string]any, error)
}

type SuggestHashtagsHandler struct{ Service HashtagService }

func (h *SuggestHashtagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	hashtags, err := h.Service.SuggestHashtags(ctx,
		stringArg(args, "content"), stringArg(args, "platform"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":            "success",
		"hashtags":          hashtags,
		"total_suggestions": len(hashtags),
	}), nil
}

type TrendingHashtagsHandler struct{ Service HashtagService }

func (h *TrendingHashtagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	platform := stringArg(args, "platform")
	region := stringArg(args, "region")

	hashtags, err := h.Service.TrendingHashtags(ctx, platform, region)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":            "success",
		"platform":          platform,
		"region":            orDefault(region, "global"),
		"trending_hashtags": hashtags,
		"total_trending":    len(hashtags),
	}), nil
}

type AnalyzeHashtagHandler struct{ Service HashtagService }

func (h *AnalyzeHashtagHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	hashtag := stringArg(args, "hashtag")
	timeRange := stringArg(args, "time_range")

	result, err := h.Service.AnalyzeHashtag(ctx, hashtag, timeRange)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":     "success",
		"hashtag":    hashtag,
		"time_range": orDefault(timeRange, "default"),
		"analytics":  result,
	}), nil
}
