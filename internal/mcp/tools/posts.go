package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

// PostService covers post creation, mutation and the posting variants.
type PostService interface {
	CreatePost(ctx context.Context, opts ayrshare.PostOptions) (*ayrshare.PostResponse, error)
	DeletePost(ctx context.Context, postID string, platforms []string) (map[string]any, error)
	UpdatePost(ctx context.Context, postID, postText string, platforms []string) (*ayrshare.PostResponse, error)
	RetryPost(ctx context.Context, postID string) (*ayrshare.PostResponse, error)
	CopyPost(ctx context.Context, postID string, platforms []string, scheduleDate string) (*ayrshare.PostResponse, error)
	BulkPost(ctx context.Context, posts []map[string]any) (map[string]any, error)
	PostWithAutoHashtag(ctx context.Context, opts ayrshare.AutoHashtagOptions) (*ayrshare.PostResponse, error)
	PostEvergreen(ctx context.Context, opts ayrshare.EvergreenOptions) (*ayrshare.PostResponse, error)
	PostWithFirstComment(ctx context.Context, opts ayrshare.FirstCommentOptions) (*ayrshare.PostResponse, error)
	PostWithApproval(ctx context.Context, opts ayrshare.ApprovalOptions) (*ayrshare.PostResponse, error)
	ApprovePost(ctx context.Context, postID string) (*ayrshare.PostResponse, error)
}

type PostToSocialHandler struct{ Service PostService }

func (h *PostToSocialHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	platforms := stringSliceArg(args, "platforms")
	if invalid := invalidPlatforms(platforms); len(invalid) > 0 {
		return invalidPlatformsResult(invalid), nil
	}

	resp, err := h.Service.CreatePost(ctx, ayrshare.PostOptions{
		Post:         stringArg(args, "post_text"),
		Platforms:    platforms,
		MediaURLs:    stringSliceArg(args, "media_urls"),
		ShortenLinks: boolPtrArg(args, "shorten_links"),
	})
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"post_id":     resp.ID,
		"post_status": resp.Status,
		"ref_id":      resp.RefID,
		"errors":      resp.Errors,
		"warnings":    resp.Warnings,
	}), nil
}

type SchedulePostHandler struct{ Service PostService }

func (h *SchedulePostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	scheduledDate := stringArg(args, "scheduled_date")
	if !validISODate(scheduledDate) {
		return validationError("Invalid date format. Use ISO 8601 format: YYYY-MM-DDTHH:MM:SSZ"), nil
	}

	platforms := stringSliceArg(args, "platforms")
	resp, err := h.Service.CreatePost(ctx, ayrshare.PostOptions{
		Post:         stringArg(args, "post_text"),
		Platforms:    platforms,
		MediaURLs:    stringSliceArg(args, "media_urls"),
		ScheduleDate: scheduledDate,
		ShortenLinks: boolPtrArg(args, "shorten_links"),
	})
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":        "success",
		"post_id":       resp.ID,
		"scheduled_for": scheduledDate,
		"platforms":     platforms,
		"post_status":   resp.Status,
		"ref_id":        resp.RefID,
		"warnings":      resp.Warnings,
	}), nil
}

// validISODate accepts the ISO 8601 shapes the remote API takes: RFC 3339
// timestamps with or without a zone offset, space-separated date-times, and
// bare dates.
func validISODate(s string) bool {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

type DeletePostHandler struct{ Service PostService }

func (h *DeletePostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	postID := stringArg(args, "post_id")
	platforms := stringSliceArg(args, "platforms")

	result, err := h.Service.DeletePost(ctx, postID, platforms)
	if err != nil {
		return nil, err
	}

	deletedFrom := any("all platforms")
	if len(platforms) > 0 {
		deletedFrom = platforms
	}
	return jsonResult(map[string]any{
		"status":       "success",
		"post_id":      postID,
		"deleted_from": deletedFrom,
		"result":       result,
	}), nil
}

type UpdatePostHandler struct{ Service PostService }

func (h *UpdatePostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	resp, err := h.Service.UpdatePost(ctx,
		stringArg(args, "post_id"),
		stringArg(args, "post_text"),
		stringSliceArg(args, "platforms"),
	)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"post_id":     resp.ID,
		"post_status": resp.Status,
		"updated":     true,
		"warnings":    resp.Warnings,
	}), nil
}

type RetryPostHandler struct{ Service PostService }

func (h *RetryPostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.Service.RetryPost(ctx, stringArg(req.GetArguments(), "post_id"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"post_id":     resp.ID,
		"post_status": resp.Status,
		"retried":     true,
		"errors":      resp.Errors,
		"warnings":    resp.Warnings,
	}), nil
}

type CopyPostHandler struct{ Service PostService }

func (h *CopyPostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	postID := stringArg(args, "post_id")
	platforms := stringSliceArg(args, "platforms")
	scheduledDate := stringArg(args, "scheduled_date")

	resp, err := h.Service.CopyPost(ctx, postID, platforms, scheduledDate)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":           "success",
		"original_post_id": postID,
		"new_post_id":      resp.ID,
		"post_status":      resp.Status,
		"platforms":        platforms,
		"scheduled_for":    orNil(scheduledDate),
		"warnings":         resp.Warnings,
	}), nil
}

type BulkPostHandler struct{ Service PostService }

func (h *BulkPostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	raw, _ := args["posts"].([]any)
	posts := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			posts = append(posts, m)
		}
	}

	result, err := h.Service.BulkPost(ctx, posts)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"total_posts": len(posts),
		"results":     result,
	}), nil
}

type AutoHashtagPostHandler struct{ Service PostService }

func (h *AutoHashtagPostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	maxHashtags := intArg(args, "max_hashtags", 2)

	opts := ayrshare.AutoHashtagOptions{
		Post:        stringArg(args, "post_text"),
		Platforms:   stringSliceArg(args, "platforms"),
		MaxHashtags: maxHashtags,
		Position:    orDefault(stringArg(args, "position"), "auto"),
	}
	if urls := stringSliceArg(args, "media_urls"); len(urls) > 0 {
		opts.Extra = map[string]any{"mediaUrls": urls}
	}

	resp, err := h.Service.PostWithAutoHashtag(ctx, opts)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":             "success",
		"post_id":            resp.ID,
		"post_status":        resp.Status,
		"hashtags_generated": true,
		"max_hashtags":       maxHashtags,
		"warnings":           resp.Warnings,
	}), nil
}

type EvergreenPostHandler struct{ Service PostService }

func (h *EvergreenPostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	repeat := intArg(args, "repeat", 0)
	daysBetween := intArg(args, "days_between", 0)
	startDate := stringArg(args, "start_date")

	opts := ayrshare.EvergreenOptions{
		Post:        stringArg(args, "post_text"),
		Platforms:   stringSliceArg(args, "platforms"),
		Repeat:      repeat,
		DaysBetween: daysBetween,
		StartDate:   startDate,
	}
	if urls := stringSliceArg(args, "media_urls"); len(urls) > 0 {
		opts.Extra = map[string]any{"mediaUrls": urls}
	}

	resp, err := h.Service.PostEvergreen(ctx, opts)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":       "success",
		"post_id":      resp.ID,
		"post_status":  resp.Status,
		"evergreen":    true,
		"repeat_count": repeat,
		"days_between": daysBetween,
		"start_date":   orNil(startDate),
		"warnings":     resp.Warnings,
	}), nil
}

type FirstCommentPostHandler struct{ Service PostService }

func (h *FirstCommentPostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	firstComment := stringArg(args, "first_comment")

	opts := ayrshare.FirstCommentOptions{
		Post:             stringArg(args, "post_text"),
		Platforms:        stringSliceArg(args, "platforms"),
		Comment:          firstComment,
		CommentMediaURLs: stringSliceArg(args, "comment_media_urls"),
	}
	if urls := stringSliceArg(args, "media_urls"); len(urls) > 0 {
		opts.Extra = map[string]any{"mediaUrls": urls}
	}

	resp, err := h.Service.PostWithFirstComment(ctx, opts)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":              "success",
		"post_id":             resp.ID,
		"post_status":         resp.Status,
		"first_comment_added": true,
		"comment_text":        firstComment,
		"warnings":            resp.Warnings,
	}), nil
}

type ApprovalPostHandler struct{ Service PostService }

func (h *ApprovalPostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	platforms := stringSliceArg(args, "platforms")
	notes := stringArg(args, "notes")
	scheduledDate := stringArg(args, "scheduled_date")

	opts := ayrshare.ApprovalOptions{
		Post:      stringArg(args, "post_text"),
		Platforms: platforms,
		Notes:     notes,
	}
	extra := map[string]any{}
	if urls := stringSliceArg(args, "media_urls"); len(urls) > 0 {
		extra["mediaUrls"] = urls
	}
	if scheduledDate != "" {
		extra["scheduleDate"] = scheduledDate
	}
	if len(extra) > 0 {
		opts.Extra = extra
	}

	resp, err := h.Service.PostWithApproval(ctx, opts)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":         "success",
		"post_id":        resp.ID,
		"post_status":    "awaiting_approval",
		"platforms":      platforms,
		"notes":          orNil(notes),
		"scheduled_date": orNil(scheduledDate),
		"warnings":       resp.Warnings,
	}), nil
}

type ApprovePostHandler struct{ Service PostService }

func (h *ApprovePostHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.Service.ApprovePost(ctx, stringArg(req.GetArguments(), "post_id"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"post_id":     resp.ID,
		"post_status": resp.Status,
		"approved":    true,
		"warnings":    resp.Warnings,
	}), nil
}
