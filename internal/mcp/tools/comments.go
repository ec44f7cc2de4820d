package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

// CommentService covers the comments endpoints.
type CommentService interface {
	Comments(ctx context.Context, postID string, platforms []string) ([]map[string]any, error)
	AddComment(ctx context.Context, postID, commentText string, platforms []string) (*ayrshare.PostResponse, error)
	ReplyToComment(ctx context.Context, commentID, replyText, platform string) (*ayrshare.PostResponse, error)
	DeleteComment(ctx context.Context, commentID string, platforms []string) (map[string]any, error)
}

type GetCommentsHandler struct{ Service CommentService }

func (h *GetCommentsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	postID := stringArg(args, "post_id")
	platforms := stringSliceArg(args, "platforms")

	comments, err := h.Service.Comments(ctx, postID, platforms)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":         "success",
		"post_id":        postID,
		"total_comments": len(comments),
		"comments":       comments,
		"platforms":      platformsOrAll(platforms),
	}), nil
}

type AddCommentHandler struct{ Service CommentService }

func (h *AddCommentHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	postID := stringArg(args, "post_id")
	platforms := stringSliceArg(args, "platforms")

	resp, err := h.Service.AddComment(ctx, postID, stringArg(args, "comment_text"), platforms)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":     "success",
		"comment_id": resp.ID,
		"post_id":    postID,
		"platforms":  platformsOrAll(platforms),
		"warnings":   resp.Warnings,
	}), nil
}

type ReplyToCommentHandler struct{ Service CommentService }

func (h *ReplyToCommentHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	commentID := stringArg(args, "comment_id")
	platform := stringArg(args, "platform")

	resp, err := h.Service.ReplyToComment(ctx, commentID, stringArg(args, "reply_text"), platform)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":     "success",
		"reply_id":   resp.ID,
		"comment_id": commentID,
		"platform":   platform,
		"warnings":   resp.Warnings,
	}), nil
}

type DeleteCommentHandler struct{ Service CommentService }

func (h *DeleteCommentHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	commentID := stringArg(args, "comment_id")
	platforms := stringSliceArg(args, "platforms")

	result, err := h.Service.DeleteComment(ctx, commentID, platforms)
	if err != nil {
		return nil, err
	}

	deletedFrom := any("all platforms")
	if len(platforms) > 0 {
		deletedFrom = platforms
	}
	return jsonResult(map[string]any{
		"status":       "success",
		"comment_id":   commentID,
		"deleted_from": deletedFrom,
		"result":       result,
	}), nil
}
