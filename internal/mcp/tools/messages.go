package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

// MessageService covers direct messaging. All endpoints need the Business
// Plan remotely; the server passes requests through regardless.
type MessageService interface {
	SendMessage(ctx context.Context, platform, recipientID, message string, mediaURLs []string) (*ayrshare.PostResponse, error)
	Conversations(ctx context.Context, platform string, limit int) ([]map[string]any, error)
	ConversationMessages(ctx context.Context, conversationID, platform string, limit int) ([]map[string]any, error)
	MarkMessagesRead(ctx context.Context, messageIDs []string, platform string) (map[string]any, error)
}

type SendMessageHandler struct{ Service MessageService }

func (h *SendMessageHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	platform := stringArg(args, "platform")
	recipientID := stringArg(args, "recipient_id")

	resp, err := h.Service.SendMessage(ctx, platform, recipientID,
		stringArg(args, "message"), stringSliceArg(args, "media_urls"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":       "success",
		"message_id":   resp.ID,
		"platform":     platform,
		"recipient_id": recipientID,
		"warnings":     resp.Warnings,
	}), nil
}

type ConversationsHandler struct{ Service MessageService }

func (h *ConversationsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	platform := stringArg(args, "platform")

	conversations, err := h.Service.Conversations(ctx, platform, intArg(args, "limit", 0))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":              "success",
		"platform":            platform,
		"total_conversations": len(conversations),
		"conversations":       conversations,
	}), nil
}

type ConversationHistoryHandler struct{ Service MessageService }

func (h *ConversationHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	conversationID := stringArg(args, "conversation_id")
	platform := stringArg(args, "platform")

	messages, err := h.Service.ConversationMessages(ctx, conversationID, platform, intArg(args, "limit", 0))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":          "success",
		"conversation_id": conversationID,
		"platform":        platform,
		"total_messages":  len(messages),
		"messages":        messages,
	}), nil
}

type MarkMessagesReadHandler struct{ Service MessageService }

func (h *MarkMessagesReadHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	messageIDs := stringSliceArg(args, "message_ids")
	platform := stringArg(args, "platform")

	result, err := h.Service.MarkMessagesRead(ctx, messageIDs, platform)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"marked_read": len(messageIDs),
		"platform":    platform,
		"result":      result,
	}), nil
}
