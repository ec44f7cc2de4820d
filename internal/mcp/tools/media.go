package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MediaService covers the media library and the Unsplash integration.
type MediaService interface {
	UploadMedia(ctx context.Context, fileURL, fileName string) (map[string]any, error)
	ValidateMediaURL(ctx context.Context, mediaURL string) (map[string]any, error)
	UnsplashImage(ctx context.Context, query, imageID string) (map[string]any, error)
	ListMedia(ctx context.Context, limit int, cursor string) ([]map[string]any, error)
	MediaDetails(ctx context.Context, mediaID string) (map[string]any, error)
	DeleteMedia(ctx context.Context, mediaID string) (map[string]any, error)
}

type UploadMediaHandler struct{ Service MediaService }

func (h *UploadMediaHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	fileURL := stringArg(args, "file_url")
	fileName := stringArg(args, "file_name")

	result, err := h.Service.UploadMedia(ctx, fileURL, fileName)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":       "success",
		"uploaded":     true,
		"original_url": fileURL,
		"library_url":  result["url"],
		"file_name":    orNil(fileName),
		"details":      result,
	}), nil
}

type ValidateMediaURLHandler struct{ Service MediaService }

func (h *ValidateMediaURLHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaURL := stringArg(req.GetArguments(), "media_url")

	result, err := h.Service.ValidateMediaURL(ctx, mediaURL)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":  "success",
		"valid":   validField(result),
		"url":     mediaURL,
		"issues":  issuesField(result),
		"details": result,
	}), nil
}

type UnsplashImageHandler struct{ Service MediaService }

func (h *UnsplashImageHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := stringArg(args, "query")
	imageID := stringArg(args, "image_id")
	if query == "" && imageID == "" {
		return validationError("Either query or image_id must be provided"), nil
	}

	result, err := h.Service.UnsplashImage(ctx, query, imageID)
	if err != nil {
		return nil, err
	}

	resolvedID := any(imageID)
	if imageID == "" {
		resolvedID = result["id"]
	}
	return jsonResult(map[string]any{
		"status":       "success",
		"image_url":    result["url"],
		"query":        orNil(query),
		"image_id":     resolvedID,
		"attribution":  result["attribution"],
		"photographer": result["photographer"],
		"details":      result,
	}), nil
}

type ListMediaHandler struct{ Service MediaService }

func (h *ListMediaHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intArg(req.GetArguments(), "limit", 0)

	media, err := h.Service.ListMedia(ctx, limit, "")
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"total_media": len(media),
		"media":       media,
	}), nil
}

type MediaDetailsHandler struct{ Service MediaService }

func (h *MediaDetailsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.MediaDetails(ctx, stringArg(req.GetArguments(), "media_id"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status": "success",
		"media":  result,
	}), nil
}

type DeleteMediaHandler struct{ Service MediaService }

func (h *DeleteMediaHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mediaID := stringArg(req.GetArguments(), "media_id")

	result, err := h.Service.DeleteMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":   "success",
		"media_id": mediaID,
		"deleted":  true,
		"result":   result,
	}), nil
}

// validField reads the remote "valid" flag, defaulting to true when absent.
func validField(result map[string]any) any {
	if v, ok := result["valid"]; ok {
		return v
	}
	return true
}

// issuesField reads the remote "issues" list, defaulting to empty.
func issuesField(result map[string]any) any {
	if v, ok := result["issues"]; ok {
		return v
	}
	return []any{}
}
