package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

func resourceClient(t *testing.T, routes map[string]string) *ayrshare.Client {
	t.Helper()
	mux := http.NewServeMux()
	for path, body := range routes {
		payload := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := ayrshare.New("test-key", "", ayrshare.WithBaseURL(srv.URL))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestHistoryDocument(t *testing.T) {
	c := resourceClient(t, map[string]string{
		"/history": `{"posts":[
			{"id":"p1","status":"success","platforms":["twitter","facebook"],"created":"2026-08-30T10:00:00Z","post":"Launch day!"},
			{"id":"p2","status":"scheduled","platforms":["linkedin"],"created":"2026-08-31T09:00:00Z","scheduled":"2026-09-02T09:00:00Z"}
		]}`,
	})

	doc := historyDocument(context.Background(), c)
	assert.Contains(t, doc, "# Post History (Last 30 Days)")
	assert.Contains(t, doc, "## Post ID: p1")
	assert.Contains(t, doc, "Platforms: twitter, facebook")
	assert.Contains(t, doc, "Content: Launch day!...")
	assert.Contains(t, doc, "Scheduled for: 2026-09-02T09:00:00Z")
}

func TestHistoryDocumentEmpty(t *testing.T) {
	c := resourceClient(t, map[string]string{"/history": `{"posts":[]}`})

	doc := historyDocument(context.Background(), c)
	assert.Equal(t, "No posts found in the last 30 days.", doc)
}

func TestHistoryDocumentError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := ayrshare.New("bad-key", "", ayrshare.WithBaseURL(srv.URL))
	require.NoError(t, err)
	defer c.Close()

	doc := historyDocument(context.Background(), c)
	assert.Equal(t, "Error fetching history: Invalid API key or authentication failed", doc)
}

func TestPlatformsDocument(t *testing.T) {
	c := resourceClient(t, map[string]string{
		"/profiles": `{"profiles":[
			{"title":"Main","profileKey":"PK1","connectedAccounts":[
				{"platform":"twitter","account":"@acme","status":"active"}
			]},
			{"title":"Empty","profileKey":"PK2","connectedAccounts":[]}
		]}`,
	})

	doc := platformsDocument(context.Background(), c)
	assert.Contains(t, doc, "# Connected Social Media Profiles")
	assert.Contains(t, doc, "## Profile: Main")
	assert.Contains(t, doc, "Profile Key: PK1")
	assert.Contains(t, doc, "Connected Platforms (1):")
	assert.Contains(t, doc, "  - twitter: @acme (active)")
	assert.Contains(t, doc, "No platforms connected to this profile.")
}

func TestPlatformsDocumentEmpty(t *testing.T) {
	c := resourceClient(t, map[string]string{"/profiles": `{"profiles":[]}`})

	doc := platformsDocument(context.Background(), c)
	assert.Equal(t, "No connected profiles found. Please connect social media accounts in the Ayrshare dashboard.", doc)
}

func TestDashboardDocument(t *testing.T) {
	c := resourceClient(t, map[string]string{
		"/history": `{"posts":[
			{"id":"p1","status":"success","platforms":["twitter"],"created":"2026-08-30"},
			{"id":"p2","status":"success","platforms":["twitter","facebook"],"created":"2026-08-29"},
			{"id":"p3","status":"failed","platforms":["linkedin"],"created":"2026-08-28"},
			{"id":"p4","status":"scheduled","platforms":["twitter"],"created":"2026-08-27"}
		]}`,
	})

	doc := dashboardDocument(context.Background(), c, "weekly")
	assert.Contains(t, doc, "# Analytics Dashboard - Weekly Report")
	assert.Contains(t, doc, "*Data for last 7 days*")
	assert.Contains(t, doc, "- **Total Posts**: 4")
	assert.Contains(t, doc, "- **Successful**: 2 (50.0%)")
	assert.Contains(t, doc, "- **Failed**: 1")
	assert.Contains(t, doc, "- **Scheduled**: 1")
	assert.Contains(t, doc, "- **Platforms Used**: 3 (facebook, linkedin, twitter)")
	assert.Contains(t, doc, "- **Twitter**: 3 posts (75.0%)")
	assert.Contains(t, doc, "## Recent Activity")
}

func TestDashboardDocumentNoData(t *testing.T) {
	c := resourceClient(t, map[string]string{"/history": `{"posts":[]}`})

	doc := dashboardDocument(context.Background(), c, "daily")
	assert.Equal(t, "No data available for daily period.", doc)
}

func TestDashboardUnknownPeriodDefaultsToWeek(t *testing.T) {
	c := resourceClient(t, map[string]string{
		"/history": `{"posts":[{"id":"p1","status":"success","platforms":["twitter"],"created":"2026-08-30"}]}`,
	})

	doc := dashboardDocument(context.Background(), c, "fortnightly")
	assert.Contains(t, doc, "*Data for last 7 days*")
}

func TestCalendarDocument(t *testing.T) {
	c := resourceClient(t, map[string]string{
		"/history/scheduled": `{"posts":[
			{"post":"Morning update","platforms":["twitter"],"scheduleDate":"2026-09-05T08:30:00Z"},
			{"post":"Afternoon recap","platforms":["facebook","linkedin"],"scheduleDate":"2026-09-05T16:00:00Z"},
			{"post":"Next month","platforms":["twitter"],"scheduleDate":"2026-10-01T08:00:00Z"}
		]}`,
	})

	doc := calendarDocument(context.Background(), c, "2026", "09")
	assert.Contains(t, doc, "# Content Calendar - 2026/09")
	assert.Contains(t, doc, "*2 scheduled posts*")
	assert.Contains(t, doc, "## 2026-09-05 (2 posts)")
	assert.Contains(t, doc, "- **08:30** [twitter]: Morning update")
	assert.Contains(t, doc, "- **16:00** [facebook, linkedin]: Afternoon recap")
	assert.NotContains(t, doc, "Next month")
}

func TestCalendarDocumentEmptyMonth(t *testing.T) {
	c := resourceClient(t, map[string]string{
		"/history/scheduled": `{"posts":[{"post":"x","platforms":["twitter"],"scheduleDate":"2026-10-01T08:00:00Z"}]}`,
	})

	doc := calendarDocument(context.Background(), c, "2026", "09")
	assert.Equal(t, "No scheduled posts found for 2026-09.", doc)
}

func TestCalendarTruncatesLongContent(t *testing.T) {
	long := "This is a very long post body that should be cut off after sixty characters exactly"
	c := resourceClient(t, map[string]string{
		"/history/scheduled": `{"posts":[{"post":"` + long + `","platforms":["twitter"],"scheduleDate":"2026-09-05T08:30:00Z"}]}`,
	})

	doc := calendarDocument(context.Background(), c, "2026", "09")
	assert.Contains(t, doc, long[:60]+"...")
	assert.NotContains(t, doc, long)
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("é", 80)
	got := truncate(long, 60)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 60), got)

	short := strings.Repeat("é", 40)
	assert.Equal(t, short, truncate(short, 60))
}

func TestCalendarCountsRunesNotBytes(t *testing.T) {
	// 40 runes but 80 bytes; must not be treated as over the 60-char limit.
	content := strings.Repeat("é", 40)
	c := resourceClient(t, map[string]string{
		"/history/scheduled": `{"posts":[{"post":"` + content + `","platforms":["twitter"],"scheduleDate":"2026-09-05T08:30:00Z"}]}`,
	})

	doc := calendarDocument(context.Background(), c, "2026", "09")
	assert.Contains(t, doc, content)
	assert.NotContains(t, doc, content[:len(content)-2]+"...")
}

func TestProfilesOverviewDocument(t *testing.T) {
	c := resourceClient(t, map[string]string{
		"/profiles": `{"profiles":[
			{"title":"Acme","refId":"r1","created":"2026-01-01","activeSocialAccounts":["twitter","facebook"]},
			{"title":"Beta","refId":"r2","created":"2026-02-01","activeSocialAccounts":[]}
		]}`,
	})

	doc := profilesOverviewDocument(context.Background(), c)
	assert.Contains(t, doc, "# Customer Profiles Overview")
	assert.Contains(t, doc, "*Total Profiles: 2*")
	assert.Contains(t, doc, "- **Active Profiles**: 1")
	assert.Contains(t, doc, "- **Inactive Profiles**: 1")
	assert.Contains(t, doc, "- **Total Connected Platforms**: 2")
	assert.Contains(t, doc, "- **Average Platforms per Profile**: 2.0")
	assert.Contains(t, doc, "### Acme")
	assert.Contains(t, doc, "- **Connected Platforms** (2): twitter, facebook")
	assert.Contains(t, doc, "- **Connected Platforms**: None")
}

func TestProfilesOverviewEmpty(t *testing.T) {
	c := resourceClient(t, map[string]string{"/profiles": `{"profiles":[]}`})

	doc := profilesOverviewDocument(context.Background(), c)
	assert.Equal(t, "No customer profiles found. Create profiles using the create_user_profile tool.", doc)
}
