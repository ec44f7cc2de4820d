package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// WebhookService covers webhook subscription management.
type WebhookService interface {
	CreateWebhook(ctx context.Context, hookURL string, events []string) (map[string]any, error)
	ListWebhooks(ctx context.Context) ([]map[string]any, error)
	UpdateWebhook(ctx context.Context, webhookID, hookURL string, events []string) (map[string]any, error)
	DeleteWebhook(ctx context.Context, webhookID string) (map[string]any, error)
}

type CreateWebhookHandler struct{ Service WebhookService }

func (h *CreateWebhookHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	hookURL := stringArg(args, "url")
	events := stringSliceArg(args, "events")

	result, err := h.Service.CreateWebhook(ctx, hookURL, events)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":     "success",
		"webhook_id": result["id"],
		"url":        hookURL,
		"events":     events,
		"result":     result,
	}), nil
}

type ListWebhooksHandler struct{ Service WebhookService }

func (h *ListWebhooksHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhooks, err := h.Service.ListWebhooks(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":         "success",
		"total_webhooks": len(webhooks),
		"webhooks":       webhooks,
	}), nil
}

type UpdateWebhookHandler struct{ Service WebhookService }

func (h *UpdateWebhookHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	webhookID := stringArg(args, "webhook_id")

	result, err := h.Service.UpdateWebhook(ctx, webhookID,
		stringArg(args, "url"), stringSliceArg(args, "events"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":     "success",
		"webhook_id": webhookID,
		"updated":    true,
		"result":     result,
	}), nil
}

type DeleteWebhookHandler struct{ Service WebhookService }

func (h *DeleteWebhookHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhookID := stringArg(req.GetArguments(), "webhook_id")

	result, err := h.Service.DeleteWebhook(ctx, webhookID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":     "success",
		"webhook_id": webhookID,
		"deleted":    true,
		"result":     result,
	}), nil
}
