package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// UtilService covers the API's utility endpoints.
type UtilService interface {
	VerifyMediaURL(ctx context.Context, mediaURL string) (map[string]any, error)
	Timezones(ctx context.Context) ([]string, error)
	ConvertTimezone(ctx context.Context, timeStr, fromTimezone, toTimezone string) (map[string]any, error)
}

type VerifyMediaHandler struct{ Service UtilService }

func (h *VerifyMediaHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaURL := stringArg(req.GetArguments(), "url")

	result, err := h.Service.VerifyMediaURL(ctx, mediaURL)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":  "success",
		"url":     mediaURL,
		"valid":   validField(result),
		"issues":  issuesField(result),
		"details": result,
	}), nil
}

type ListTimezonesHandler struct{ Service UtilService }

func (h *ListTimezonesHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timezones, err := h.Service.Timezones(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":          "success",
		"total_timezones": len(timezones),
		"timezones":       timezones,
	}), nil
}

type ConvertTimeHandler struct{ Service UtilService }

func (h *ConvertTimeHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	timeStr := stringArg(args, "time")
	fromTZ := stringArg(args, "from_tz")
	toTZ := stringArg(args, "to_tz")

	result, err := h.Service.ConvertTimezone(ctx, timeStr, fromTZ, toTZ)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":         "success",
		"original_time":  timeStr,
		"from_timezone":  fromTZ,
		"to_timezone":    toTZ,
		"converted_time": result["convertedTime"],
		"result":         result,
	}), nil
}
