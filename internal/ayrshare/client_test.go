package ayrshare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New("test-key", "test-profile", WithBaseURL(srv.URL))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewWithoutAPIKey(t *testing.T) {
	t.Setenv("AYRSHARE_API_KEY", "")

	_, err := New("", "")
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindAuthentication, kind)
	assert.Contains(t, err.Error(), "AYRSHARE_API_KEY")
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("AYRSHARE_API_KEY", "env-key")
	t.Setenv("AYRSHARE_PROFILE_KEY", "env-profile")

	c, err := New("", "")
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "env-key", c.apiKey)
	assert.Equal(t, "env-profile", c.profileKey)
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	})

	_, err := c.UserInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "test-profile", got.Get("Profile-Key"))
}

func TestProfileKeyHeaderOmittedWhenEmpty(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New("test-key", "", WithBaseURL(srv.URL))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.UserInfo(context.Background())
	require.NoError(t, err)
	_, present := got["Profile-Key"]
	assert.False(t, present)
}

func TestUnauthorizedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.UserInfo(context.Background())
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindAuthentication, kind)
	assert.Equal(t, "Invalid API key or authentication failed", err.Error())
}

func TestBadRequestResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"platforms is required"}`))
	})

	_, err := c.UserInfo(context.Background())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Invalid request: platforms is required", err.Error())
}

func TestServerErrorResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream unavailable`))
	})

	_, err := c.UserInfo(context.Background())
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindAPI, kind)
	assert.Equal(t, "API error (502): upstream unavailable", err.Error())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, err := New("test-key", "", WithBaseURL(srv.URL))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.UserInfo(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestEmptyBodyNormalized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	out, err := c.UserInfo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCreatePostBody(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "/post", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"id":"abc","status":"success"}`))
	})

	resp, err := c.CreatePost(context.Background(), PostOptions{
		Post:      "hello world",
		Platforms: []string{"twitter", "facebook"},
		MediaURLs: []string{"https://img.example.com/a.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, "success", resp.Status)

	assert.Equal(t, "hello world", body["post"])
	assert.Equal(t, []any{"twitter", "facebook"}, body["platforms"])
	assert.Equal(t, []any{"https://img.example.com/a.png"}, body["mediaUrls"])
	// shortenLinks defaults to true when the caller did not set it.
	assert.Equal(t, true, body["shortenLinks"])
}

func TestCreatePostShortenLinksExplicitFalse(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id":"abc","status":"success"}`))
	})

	off := false
	_, err := c.CreatePost(context.Background(), PostOptions{
		Post:         "hello",
		Platforms:    []string{"twitter"},
		ShortenLinks: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, false, body["shortenLinks"])
}

func TestCreatePostScheduleDate(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id":"abc","status":"success"}`))
	})

	_, err := c.CreatePost(context.Background(), PostOptions{
		Post:      "hello",
		Platforms: []string{"twitter"},
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "scheduleDate")

	_, err = c.CreatePost(context.Background(), PostOptions{
		Post:         "hello",
		Platforms:    []string{"twitter"},
		ScheduleDate: "2025-12-25T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25T10:00:00Z", body["scheduleDate"])
}

func TestEvergreenStartDateOnlyWhenSet(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id":"abc","status":"success"}`))
	})

	_, err := c.PostEvergreen(context.Background(), EvergreenOptions{
		Post:        "tip of the day",
		Platforms:   []string{"twitter"},
		Repeat:      3,
		DaysBetween: 7,
	})
	require.NoError(t, err)
	repost, ok := body["autoRepost"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), repost["repeat"])
	assert.Equal(t, float64(7), repost["days"])
	assert.NotContains(t, repost, "startDate")

	_, err = c.PostEvergreen(context.Background(), EvergreenOptions{
		Post:        "tip of the day",
		Platforms:   []string{"twitter"},
		Repeat:      3,
		DaysBetween: 7,
		StartDate:   "2026-01-01T09:00:00Z",
	})
	require.NoError(t, err)
	repost, ok = body["autoRepost"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2026-01-01T09:00:00Z", repost["startDate"])
}

func TestFirstCommentMediaOnlyWhenSet(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id":"abc","status":"success"}`))
	})

	_, err := c.PostWithFirstComment(context.Background(), FirstCommentOptions{
		Post:      "launch day",
		Platforms: []string{"instagram"},
		Comment:   "link in bio",
	})
	require.NoError(t, err)
	comment, ok := body["firstComment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "link in bio", comment["comment"])
	assert.NotContains(t, comment, "mediaUrls")

	_, err = c.PostWithFirstComment(context.Background(), FirstCommentOptions{
		Post:             "launch day",
		Platforms:        []string{"instagram"},
		Comment:          "link in bio",
		CommentMediaURLs: []string{"https://img.example.com/b.png"},
	})
	require.NoError(t, err)
	comment, ok = body["firstComment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"https://img.example.com/b.png"}, comment["mediaUrls"])
}

func TestHistoryLastRecordsPrecedence(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"posts":[{"id":"1"}]}`))
	})

	posts, err := c.History(context.Background(), 30, 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, float64(5), body["lastRecords"])
	_, hasDays := body["lastDays"]
	assert.False(t, hasDays)
}

func TestListProfilesQuery(t *testing.T) {
	var query string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"profiles":[]}`))
	})

	hasActive := true
	_, err := c.ListProfiles(context.Background(), ListProfilesOptions{
		HasActiveSocial:      &hasActive,
		IncludesActiveSocial: []string{"twitter", "facebook"},
		Limit:                25,
	})
	require.NoError(t, err)
	assert.Contains(t, query, "hasActiveSocial=true")
	assert.Contains(t, query, "limit=25")
	assert.Contains(t, query, "includesActiveSocial=twitter%2Cfacebook")
}

func TestObjectListMissingFieldIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	posts, err := c.ScheduledPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCloseIsIdempotent(t *testing.T) {
	c, err := New("test-key", "")
	require.NoError(t, err)
	c.Close()
	c.Close()
}
