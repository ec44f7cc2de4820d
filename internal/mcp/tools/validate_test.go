package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidateService struct {
	post      string
	platforms []string
	extra     map[string]any
	result    map[string]any
}

func (f *fakeValidateService) ValidatePost(ctx context.Context, post string, platforms []string, extra map[string]any) (map[string]any, error) {
	f.post = post
	f.platforms = platforms
	f.extra = extra
	if f.result != nil {
		return f.result, nil
	}
	return map[string]any{"valid": true}, nil
}

func (f *fakeValidateService) ValidateMedia(ctx context.Context, mediaURL, platform string) (map[string]any, error) {
	return map[string]any{"valid": false, "issues": []any{"video too long"}}, nil
}

func (f *fakeValidateService) ValidateScheduleTime(ctx context.Context, scheduleDate, platform string) (map[string]any, error) {
	return map[string]any{"valid": true}, nil
}

func TestValidatePostSplitsPostData(t *testing.T) {
	svc := &fakeValidateService{}
	h := &ValidatePostHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_data": map[string]any{
			"post":      "draft text",
			"platforms": []any{"twitter"},
			"mediaUrls": []any{"https://example.com/a.png"},
		},
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, true, out["valid"])
	assert.Equal(t, []any{}, out["issues"])

	assert.Equal(t, "draft text", svc.post)
	assert.Equal(t, []string{"twitter"}, svc.platforms)
	assert.Equal(t, map[string]any{"mediaUrls": []any{"https://example.com/a.png"}}, svc.extra)
}

func TestValidateMediaReportsIssues(t *testing.T) {
	h := &ValidateMediaHandler{Service: &fakeValidateService{}}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"media_url": "https://example.com/clip.mp4",
		"platform":  "instagram",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, false, out["valid"])
	assert.Equal(t, []any{"video too long"}, out["issues"])
	assert.Equal(t, "instagram", out["platform"])
}

func TestValidateScheduleEnvelope(t *testing.T) {
	h := &ValidateScheduleHandler{Service: &fakeValidateService{}}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"schedule_date": "2026-09-10T09:00:00Z",
		"platform":      "linkedin",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, true, out["valid"])
	assert.Equal(t, "2026-09-10T09:00:00Z", out["schedule_date"])
}
