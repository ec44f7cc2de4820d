package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ScheduleService covers the auto-schedule configuration endpoints.
type ScheduleService interface {
	SetAutoSchedule(ctx context.Context, scheduleConfig map[string]any) (map[string]any, error)
	GetAutoSchedule(ctx context.Context) (map[string]any, error)
	UpdateAutoSchedule(ctx context.Context, scheduleConfig map[string]any) (map[string]any, error)
	DeleteAutoSchedule(ctx context.Context) (map[string]any, error)
}

type SetAutoScheduleHandler struct{ Service ScheduleService }

func (h *SetAutoScheduleHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.SetAutoSchedule(ctx, mapArg(req.GetArguments(), "schedule_config"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":           "success",
		"schedule_created": true,
		"result":           result,
	}), nil
}

type GetAutoScheduleHandler struct{ Service ScheduleService }

func (h *GetAutoScheduleHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.GetAutoSchedule(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":   "success",
		"schedule": result,
	}), nil
}

type UpdateAutoScheduleHandler struct{ Service ScheduleService }

func (h *UpdateAutoScheduleHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.UpdateAutoSchedule(ctx, mapArg(req.GetArguments(), "schedule_config"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":           "success",
		"schedule_updated": true,
		"result":           result,
	}), nil
}

type DeleteAutoScheduleHandler struct{ Service ScheduleService }

func (h *DeleteAutoScheduleHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.DeleteAutoSchedule(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":           "success",
		"schedule_removed": true,
		"result":           result,
	}), nil
}
