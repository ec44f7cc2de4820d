package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewService covers Google Business Profile reviews.
type ReviewService interface {
	Reviews(ctx context.Context, locationID string) ([]map[string]any, error)
	ReplyToReview(ctx context.Context, reviewID, responseText string) (map[string]any, error)
	DeleteReviewResponse(ctx context.Context, reviewID string) (map[string]any, error)
}

type GetReviewsHandler struct{ Service ReviewService }

func (h *GetReviewsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID := stringArg(req.GetArguments(), "location_id")

	reviews, err := h.Service.Reviews(ctx, locationID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":        "success",
		"total_reviews": len(reviews),
		"reviews":       reviews,
		"location_id":   orDefault(locationID, "all"),
	}), nil
}

type ReplyToReviewHandler struct{ Service ReviewService }

func (h *ReplyToReviewHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	reviewID := stringArg(args, "review_id")

	result, err := h.Service.ReplyToReview(ctx, reviewID, stringArg(args, "response_text"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":    "success",
		"review_id": reviewID,
		"responded": true,
		"result":    result,
	}), nil
}

type DeleteReviewResponseHandler struct{ Service ReviewService }

func (h *DeleteReviewResponseHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reviewID := stringArg(req.GetArguments(), "review_id")

	result, err := h.Service.DeleteReviewResponse(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":           "success",
		"review_id":        reviewID,
		"response_deleted": true,
		"result":           result,
	}), nil
}
