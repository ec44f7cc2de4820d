package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// UserService covers account-level settings and quota queries.
type UserService interface {
	UserInfo(ctx context.Context) (map[string]any, error)
	UpdateUserSettings(ctx context.Context, settings map[string]any) (map[string]any, error)
	APILimits(ctx context.Context) (map[string]any, error)
}

type AccountInfoHandler struct{ Service UserService }

func (h *AccountInfoHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.UserInfo(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":  "success",
		"account": result,
	}), nil
}

type UpdateAccountSettingsHandler struct{ Service UserService }

func (h *UpdateAccountSettingsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.UpdateUserSettings(ctx, mapArg(req.GetArguments(), "settings"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":           "success",
		"settings_updated": true,
		"result":           result,
	}), nil
}

type APILimitsHandler struct{ Service UserService }

func (h *APILimitsHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.APILimits(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status": "success",
		"limits": result,
	}), nil
}
