package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ValidateService covers the pre-flight validation endpoints.
type ValidateService interface {
	ValidatePost(ctx context.Context, post string, platforms []string, extra map[string]any) (map[string]any, error)
	ValidateMedia(ctx context.Context, mediaURL, platform string) (map[string]any, error)
	ValidateScheduleTime(ctx context.Context, scheduleDate, platform string) (map[string]any, error)
}

type ValidatePostHandler struct{ Service ValidateService }

func (h *ValidatePostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	postData := mapArg(req.GetArguments(), "post_data")

	post := stringArg(postData, "post")
	platforms := stringSliceArg(postData, "platforms")
	extra := make(map[string]any, len(postData))
	for k, v := range postData {
		if k == "post" || k == "platforms" {
			continue
		}
		extra[k] = v
	}

	result, err := h.Service.ValidatePost(ctx, post, platforms, extra)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":   "success",
		"valid":    validField(result),
		"issues":   issuesField(result),
		"warnings": warningsField(result),
		"result":   result,
	}), nil
}

type ValidateMediaHandler struct{ Service ValidateService }

func (h *ValidateMediaHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	mediaURL := stringArg(args, "media_url")
	platform := stringArg(args, "platform")

	result, err := h.Service.ValidateMedia(ctx, mediaURL, platform)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":    "success",
		"media_url": mediaURL,
		"platform":  platform,
		"valid":     validField(result),
		"issues":    issuesField(result),
		"result":    result,
	}), nil
}

type ValidateScheduleHandler struct{ Service ValidateService }

func (h *ValidateScheduleHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	scheduleDate := stringArg(args, "schedule_date")
	platform := stringArg(args, "platform")

	result, err := h.Service.ValidateScheduleTime(ctx, scheduleDate, platform)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":        "success",
		"schedule_date": scheduleDate,
		"platform":      platform,
		"valid":         validField(result),
		"issues":        issuesField(result),
		"result":        result,
	}), nil
}

func warningsField(result map[string]any) any {
	if v, ok := result["warnings"]; ok {
		return v
	}
	return []any{}
}
