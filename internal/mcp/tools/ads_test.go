package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdService struct {
	updateBudget float64
	updateStatus string
}

func (f *fakeAdService) CreateAd(ctx context.Context, postID string, budget float64, durationDays int, targeting map[string]any) (map[string]any, error) {
	return map[string]any{"id": "ad-1"}, nil
}

func (f *fakeAdService) AdAnalytics(ctx context.Context, adID string) (map[string]any, error) {
	return map[string]any{"impressions": float64(1200)}, nil
}

func (f *fakeAdService) UpdateAd(ctx context.Context, adID string, budget float64, status string) (map[string]any, error) {
	f.updateBudget = budget
	f.updateStatus = status
	return map[string]any{"id": adID}, nil
}

func (f *fakeAdService) DeleteAd(ctx context.Context, adID string) (map[string]any, error) {
	return map[string]any{"removed": true}, nil
}

func TestCreateAdEnvelope(t *testing.T) {
	h := &CreateAdHandler{Service: &fakeAdService{}}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"post_id":  "post-1",
		"budget":   float64(50),
		"duration": float64(7),
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "ad-1", out["ad_id"])
	assert.Equal(t, float64(50), out["budget"])
	assert.Equal(t, float64(7), out["duration"])
}

func TestManageAdBudgetEchoedWhenSet(t *testing.T) {
	svc := &fakeAdService{}
	h := &UpdateAdHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"ad_id":  "ad-1",
		"budget": float64(75),
		"status": "paused",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, float64(75), out["new_budget"])
	assert.Equal(t, "paused", out["new_status"])
	assert.Equal(t, float64(75), svc.updateBudget)
	assert.Equal(t, "paused", svc.updateStatus)
}

func TestManageAdBudgetNilWhenAbsent(t *testing.T) {
	h := &UpdateAdHandler{Service: &fakeAdService{}}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"ad_id": "ad-1",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Nil(t, out["new_budget"])
	assert.Nil(t, out["new_status"])
}

func TestStopAdEnvelope(t *testing.T) {
	h := &StopAdHandler{Service: &fakeAdService{}}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"ad_id": "ad-1",
	}))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, true, out["stopped"])
	assert.Equal(t, "ad-1", out["ad_id"])
}
