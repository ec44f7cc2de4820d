package ayrshare

import "context"

// PostOptions describes a post creation request. Optional fields left at
// their zero value are omitted from the wire payload entirely. Extra is an
// escape hatch for undocumented remote fields; its entries are merged into
// the body after all named fields.
type PostOptions struct {
	Post         string
	Platforms    []string
	MediaURLs    []string
	ScheduleDate string
	ShortenLinks *bool // remote default is true when omitted here
	Extra        map[string]any
}

// CreatePost publishes or schedules a post across platforms.
func (c *Client) CreatePost(ctx context.Context, opts PostOptions) (*PostResponse, error) {
	shorten := true
	if opts.ShortenLinks != nil {
		shorten = *opts.ShortenLinks
	}
	body := map[string]any{
		"post":         opts.Post,
		"platforms":    opts.Platforms,
		"shortenLinks": shorten,
	}
	mergeExtra(body, opts.Extra)
	if len(opts.MediaURLs) > 0 {
		body["mediaUrls"] = opts.MediaURLs
	}
	if opts.ScheduleDate != "" {
		body["scheduleDate"] = opts.ScheduleDate
	}
	return c.postResult(ctx, "POST", "/post", body)
}

// GetPost retrieves details of a post by its ID.
func (c *Client) GetPost(ctx context.Context, postID string) (map[string]any, error) {
	return c.object(ctx, "GET", "/post/"+postID, nil, nil)
}

// DeletePost removes a post, optionally from specific platforms only.
func (c *Client) DeletePost(ctx context.Context, postID string, platforms []string) (map[string]any, error) {
	body := map[string]any{"id": postID}
	if len(platforms) > 0 {
		body["platforms"] = platforms
	}
	return c.object(ctx, "DELETE", "/post", body, nil)
}

// UpdatePost patches an existing post. Empty text or nil platforms leave the
// corresponding fields untouched remotely.
func (c *Client) UpdatePost(ctx context.Context, postID, postText string, platforms []string) (*PostResponse, error) {
	body := map[string]any{"id": postID}
	if postText != "" {
		body["post"] = postText
	}
	if len(platforms) > 0 {
		body["platforms"] = platforms
	}
	return c.postResult(ctx, "PATCH", "/post", body)
}

// RetryPost re-issues a failed post. The remote API models this as a PUT.
func (c *Client) RetryPost(ctx context.Context, postID string) (*PostResponse, error) {
	return c.postResult(ctx, "PUT", "/post", map[string]any{"id": postID})
}

// CopyPost duplicates a post onto other platforms, optionally rescheduled.
func (c *Client) CopyPost(ctx context.Context, postID string, platforms []string, scheduleDate string) (*PostResponse, error) {
	body := map[string]any{"id": postID, "platforms": platforms}
	if scheduleDate != "" {
		body["scheduleDate"] = scheduleDate
	}
	return c.postResult(ctx, "POST", "/post/copy", body)
}

// BulkPost creates multiple posts in one call. Each entry uses the remote
// wire spelling directly (post, platforms, mediaUrls, scheduleDate).
func (c *Client) BulkPost(ctx context.Context, posts []map[string]any) (map[string]any, error) {
	return c.object(ctx, "PUT", "/post/bulk", map[string]any{"posts": posts}, nil)
}

// AutoHashtagOptions configures a post with automatic hashtag generation.
type AutoHashtagOptions struct {
	Post        string
	Platforms   []string
	MaxHashtags int    // 1-10
	Position    string // "auto" or "end"
	Extra       map[string]any
}

// PostWithAutoHashtag creates a post whose hashtags the remote service
// generates. The autoHashtag group is always present for this operation.
func (c *Client) PostWithAutoHashtag(ctx context.Context, opts AutoHashtagOptions) (*PostResponse, error) {
	body := map[string]any{
		"post":      opts.Post,
		"platforms": opts.Platforms,
		"autoHashtag": map[string]any{
			"max":      opts.MaxHashtags,
			"position": opts.Position,
		},
	}
	mergeExtra(body, opts.Extra)
	return c.postResult(ctx, "POST", "/post", body)
}

// EvergreenOptions configures auto-reposting content.
type EvergreenOptions struct {
	Post        string
	Platforms   []string
	Repeat      int // 1-10 repost cycles
	DaysBetween int // minimum 2
	StartDate   string
	Extra       map[string]any
}

// PostEvergreen creates a post that reposts itself on a fixed cadence.
func (c *Client) PostEvergreen(ctx context.Context, opts EvergreenOptions) (*PostResponse, error) {
	repost := map[string]any{
		"repeat": opts.Repeat,
		"days":   opts.DaysBetween,
	}
	if opts.StartDate != "" {
		repost["startDate"] = opts.StartDate
	}
	body := map[string]any{
		"post":       opts.Post,
		"platforms":  opts.Platforms,
		"autoRepost": repost,
	}
	mergeExtra(body, opts.Extra)
	return c.postResult(ctx, "POST", "/post", body)
}

// FirstCommentOptions configures a post with an automatic first comment.
type FirstCommentOptions struct {
	Post             string
	Platforms        []string
	Comment          string
	CommentMediaURLs []string
	Extra            map[string]any
}

// PostWithFirstComment creates a post and queues a comment to follow it.
func (c *Client) PostWithFirstComment(ctx context.Context, opts FirstCommentOptions) (*PostResponse, error) {
	comment := map[string]any{"comment": opts.Comment}
	if len(opts.CommentMediaURLs) > 0 {
		comment["mediaUrls"] = opts.CommentMediaURLs
	}
	body := map[string]any{
		"post":         opts.Post,
		"platforms":    opts.Platforms,
		"firstComment": comment,
	}
	mergeExtra(body, opts.Extra)
	return c.postResult(ctx, "POST", "/post", body)
}

// ApprovalOptions configures a post that needs manual approval first.
type ApprovalOptions struct {
	Post      string
	Platforms []string
	Notes     string
	Extra     map[string]any
}

// PostWithApproval creates a post held until it is approved.
func (c *Client) PostWithApproval(ctx context.Context, opts ApprovalOptions) (*PostResponse, error) {
	body := map[string]any{
		"post":             opts.Post,
		"platforms":        opts.Platforms,
		"requiresApproval": true,
	}
	mergeExtra(body, opts.Extra)
	if opts.Notes != "" {
		body["notes"] = opts.Notes
	}
	return c.postResult(ctx, "POST", "/post", body)
}

// ApprovePost releases a post that was awaiting approval.
func (c *Client) ApprovePost(ctx context.Context, postID string) (*PostResponse, error) {
	return c.postResult(ctx, "PATCH", "/post", map[string]any{"id": postID, "approved": true})
}

func mergeExtra(body, extra map[string]any) {
	for k, v := range extra {
		body[k] = v
	}
}
