package ayrshare

// PostResponse is the typed outcome of post creation and mutation
// operations. Errors and warnings are passed through verbatim from the
// remote reply.
type PostResponse struct {
	ID       string           `json:"id"`
	Status   string           `json:"status"`
	RefID    string           `json:"refId,omitempty"`
	Errors   []map[string]any `json:"errors,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

// AnalyticsResponse is the typed outcome of metrics queries: an open-ended
// data payload plus the platforms it covers, when known.
type AnalyticsResponse struct {
	Data      map[string]any `json:"data"`
	Platforms []string       `json:"platforms,omitempty"`
}
