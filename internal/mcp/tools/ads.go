package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// AdService covers ad campaign creation and management.
type AdService interface {
	CreateAd(ctx context.Context, postID string, budget float64, durationDays int, targeting map[string]any) (map[string]any, error)
	AdAnalytics(ctx context.Context, adID string) (map[string]any, error)
	UpdateAd(ctx context.Context, adID string, budget float64, status string) (map[string]any, error)
	DeleteAd(ctx context.Context, adID string) (map[string]any, error)
}

type CreateAdHandler struct{ Service AdService }

func (h *CreateAdHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	postID := stringArg(args, "post_id")
	budget, _ := floatArg(args, "budget")
	duration := intArg(args, "duration", 0)

	result, err := h.Service.CreateAd(ctx, postID, budget, duration, mapArg(args, "targeting"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":   "success",
		"ad_id":    result["id"],
		"post_id":  postID,
		"budget":   budget,
		"duration": duration,
		"result":   result,
	}), nil
}

type AdAnalyticsHandler struct{ Service AdService }

func (h *AdAnalyticsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	adID := stringArg(req.GetArguments(), "ad_id")

	analytics, err := h.Service.AdAnalytics(ctx, adID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":    "success",
		"ad_id":     adID,
		"analytics": analytics,
	}), nil
}

type UpdateAdHandler struct{ Service AdService }

func (h *UpdateAdHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	adID := stringArg(args, "ad_id")
	budget, hasBudget := floatArg(args, "budget")
	status := stringArg(args, "status")

	result, err := h.Service.UpdateAd(ctx, adID, budget, status)
	if err != nil {
		return nil, err
	}

	newBudget := any(nil)
	if hasBudget {
		newBudget = budget
	}
	return jsonResult(map[string]any{
		"status":     "success",
		"ad_id":      adID,
		"updated":    true,
		"new_budget": newBudget,
		"new_status": orNil(status),
		"result":     result,
	}), nil
}

type StopAdHandler struct{ Service AdService }

func (h *StopAdHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	adID := stringArg(req.GetArguments(), "ad_id")

	result, err := h.Service.DeleteAd(ctx, adID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":  "success",
		"ad_id":   adID,
		"stopped": true,
		"result":  result,
	}), nil
}
