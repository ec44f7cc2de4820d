package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GenerateService covers the AI content generation endpoints.
type GenerateService interface {
	GeneratePostText(ctx context.Context, prompt, platform, tone string) (map[string]any, error)
	GenerateHashtags(ctx context.Context, content string, count int) (map[string]any, error)
	GenerateCaption(ctx context.Context, imageURL, style string) (map[string]any, error)
}

type GeneratePostTextHandler struct{ Service GenerateService }

func (h *GeneratePostTextHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	result, err := h.Service.GeneratePostText(ctx,
		stringArg(args, "prompt"),
		stringArg(args, "platform"),
		stringArg(args, "tone"),
	)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":         "success",
		"generated_text": result["text"],
		"result":         result,
	}), nil
}

type GenerateHashtagsHandler struct{ Service GenerateService }

func (h *GenerateHashtagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	result, err := h.Service.GenerateHashtags(ctx,
		stringArg(args, "content"), intArg(args, "count", 0))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":   "success",
		"hashtags": result["hashtags"],
		"result":   result,
	}), nil
}

type GenerateCaptionHandler struct{ Service GenerateService }

func (h *GenerateCaptionHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	result, err := h.Service.GenerateCaption(ctx,
		stringArg(args, "image_url"), stringArg(args, "style"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":  "success",
		"caption": result["caption"],
		"result":  result,
	}), nil
}
