package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

type fakePostService struct {
	createOpts  *ayrshare.PostOptions
	createResp  *ayrshare.PostResponse
	createErr   error
	deleteCalls int
}

func (f *fakePostService) CreatePost(ctx context.Context, opts ayrshare.PostOptions) (*ayrshare.PostResponse, error) {
	f.createOpts = &opts
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResp != nil {
		return f.createResp, nil
	}
	return &ayrshare.PostResponse{ID: "post-1", Status: "success"}, nil
}

func (f *fakePostService) DeletePost(ctx context.Context, postID string, platforms []string) (map[string]any, error) {
	f.deleteCalls++
	return map[string]any{"status": "deleted"}, nil
}

func (f *fakePostService) UpdatePost(ctx context.Context, postID, postText string, platforms []string) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: postID, Status: "updated"}, nil
}

func (f *fakePostService) RetryPost(ctx context.Context, postID string) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: postID, Status: "success"}, nil
}

func (f *fakePostService) CopyPost(ctx context.Context, postID string, platforms []string, scheduleDate string) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: "copy-1", Status: "success"}, nil
}

func (f *fakePostService) BulkPost(ctx context.Context, posts []map[string]any) (map[string]any, error) {
	return map[string]any{"posted": len(posts)}, nil
}

func (f *fakePostService) PostWithAutoHashtag(ctx context.Context, opts ayrshare.AutoHashtagOptions) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: "tag-1", Status: "success"}, nil
}

func (f *fakePostService) PostEvergreen(ctx context.Context, opts ayrshare.EvergreenOptions) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: "green-1", Status: "success"}, nil
}

func (f *fakePostService) PostWithFirstComment(ctx context.Context, opts ayrshare.FirstCommentOptions) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: "fc-1", Status: "success"}, nil
}

func (f *fakePostService) PostWithApproval(ctx context.Context, opts ayrshare.ApprovalOptions) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: "ap-1", Status: "awaiting_approval"}, nil
}

func (f *fakePostService) ApprovePost(ctx context.Context, postID string) (*ayrshare.PostResponse, error) {
	return &ayrshare.PostResponse{ID: postID, Status: "success"}, nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func decodeResult(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func TestPostToSocialSuccess(t *testing.T) {
	svc := &fakePostService{}
	h := &PostToSocialHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text": "hello",
		"platforms": []any{"twitter", "facebook"},
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "post-1", out["post_id"])
	assert.Equal(t, "success", out["post_status"])

	require.NotNil(t, svc.createOpts)
	assert.Equal(t, "hello", svc.createOpts.Post)
	assert.Equal(t, []string{"twitter", "facebook"}, svc.createOpts.Platforms)
}

func TestPostToSocialInvalidPlatform(t *testing.T) {
	svc := &fakePostService{}
	h := &PostToSocialHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text": "hello",
		"platforms": []any{"twitter", "myspace", "friendster"},
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Invalid platforms: myspace, friendster", out["message"])
	assert.Equal(t, "validation", out["error_type"])
	assert.Len(t, out["supported_platforms"], len(SupportedPlatforms))
	// Validation short-circuits before any API call.
	assert.Nil(t, svc.createOpts)
}

func TestPostToSocialAcceptsXAlias(t *testing.T) {
	svc := &fakePostService{}
	h := &PostToSocialHandler{Service: svc}

	_, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text": "hello",
		"platforms": []any{"X"},
	}))
	require.NoError(t, err)
	require.NotNil(t, svc.createOpts)
	assert.Equal(t, []string{"X"}, svc.createOpts.Platforms)
}

func TestPostToSocialPropagatesAPIError(t *testing.T) {
	svc := &fakePostService{createErr: errors.New("boom")}
	h := &PostToSocialHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text": "hello",
		"platforms": []any{"twitter"},
	}))
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestSchedulePostInvalidDate(t *testing.T) {
	svc := &fakePostService{}
	h := &SchedulePostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text":      "hello",
		"platforms":      []any{"twitter"},
		"scheduled_date": "tomorrow at noon",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Invalid date format. Use ISO 8601 format: YYYY-MM-DDTHH:MM:SSZ", out["message"])
	assert.Equal(t, "validation", out["error_type"])
	assert.Nil(t, svc.createOpts)
}

func TestSchedulePostSuccess(t *testing.T) {
	svc := &fakePostService{createResp: &ayrshare.PostResponse{ID: "sched-1", Status: "scheduled"}}
	h := &SchedulePostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text":      "hello",
		"platforms":      []any{"twitter"},
		"scheduled_date": "2026-12-25T10:00:00Z",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "sched-1", out["post_id"])
	assert.Equal(t, "2026-12-25T10:00:00Z", out["scheduled_for"])
	assert.Equal(t, "scheduled", out["post_status"])
	assert.Equal(t, "2026-12-25T10:00:00Z", svc.createOpts.ScheduleDate)
}

func TestSchedulePostAcceptsDateWithoutZone(t *testing.T) {
	svc := &fakePostService{}
	h := &SchedulePostHandler{Service: svc}

	_, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text":      "hello",
		"platforms":      []any{"twitter"},
		"scheduled_date": "2026-12-25T10:00:00",
	}))
	require.NoError(t, err)
	require.NotNil(t, svc.createOpts)
}

func TestSchedulePostAcceptsLooserISOForms(t *testing.T) {
	for _, date := range []string{"2026-12-25", "2026-12-25 10:00:00"} {
		svc := &fakePostService{}
		h := &SchedulePostHandler{Service: svc}

		_, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
			"post_text":      "hello",
			"platforms":      []any{"twitter"},
			"scheduled_date": date,
		}))
		require.NoError(t, err, date)
		require.NotNil(t, svc.createOpts, date)
		assert.Equal(t, date, svc.createOpts.ScheduleDate)
	}
}

func TestDeletePostAllPlatforms(t *testing.T) {
	svc := &fakePostService{}
	h := &DeletePostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_id": "post-9",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "post-9", out["post_id"])
	assert.Equal(t, "all platforms", out["deleted_from"])
	assert.Equal(t, 1, svc.deleteCalls)
}

func TestDeletePostSpecificPlatforms(t *testing.T) {
	svc := &fakePostService{}
	h := &DeletePostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_id":   "post-9",
		"platforms": []any{"twitter"},
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, []any{"twitter"}, out["deleted_from"])
}

func TestBulkPostCountsPosts(t *testing.T) {
	svc := &fakePostService{}
	h := &BulkPostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"posts": []any{
			map[string]any{"post": "a", "platforms": []any{"twitter"}},
			map[string]any{"post": "b", "platforms": []any{"facebook"}},
		},
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, float64(2), out["total_posts"])
}

func TestEvergreenPostEnvelope(t *testing.T) {
	svc := &fakePostService{}
	h := &EvergreenPostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text":    "timeless",
		"platforms":    []any{"linkedin"},
		"repeat":       float64(3),
		"days_between": float64(7),
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "green-1", out["post_id"])
	assert.Equal(t, float64(3), out["repeat_count"])
	assert.Equal(t, float64(7), out["days_between"])
}

func TestApprovalPostEnvelope(t *testing.T) {
	svc := &fakePostService{}
	h := &ApprovalPostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_text": "needs signoff",
		"platforms": []any{"facebook"},
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "awaiting_approval", out["post_status"])
}
