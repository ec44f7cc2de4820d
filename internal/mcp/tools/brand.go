package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// BrandService covers brand identity configuration.
type BrandService interface {
	CreateBrandProfile(ctx context.Context, brandData map[string]any) (map[string]any, error)
	BrandAssets(ctx context.Context) (map[string]any, error)
	UpdateBrandSettings(ctx context.Context, brandData map[string]any) (map[string]any, error)
}

type CreateBrandProfileHandler struct{ Service BrandService }

func (h *CreateBrandProfileHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.CreateBrandProfile(ctx, mapArg(req.GetArguments(), "brand_data"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":        "success",
		"brand_created": true,
		"result":        result,
	}), nil
}

type BrandAssetsHandler struct{ Service BrandService }

func (h *BrandAssetsHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.BrandAssets(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status": "success",
		"brand":  result,
	}), nil
}

type UpdateBrandSettingsHandler struct{ Service BrandService }

func (h *UpdateBrandSettingsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.UpdateBrandSettings(ctx, mapArg(req.GetArguments(), "brand_data"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":        "success",
		"brand_updated": true,
		"result":        result,
	}), nil
}
