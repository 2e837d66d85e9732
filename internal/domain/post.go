package domain

import "time"

type Platform string

const (
	PlatformX       Platform = "x"
	PlatformNote    Platform = "note"
	PlatformThreads Platform = "threads"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusReady     PostStatus = "ready"
	PostStatusPosting   PostStatus = "posting"
	PostStatusPosted    PostStatus = "posted"
	PostStatusFailed    PostStatus = "failed"
	PostStatusCancelled PostStatus = "cancelled"
)

// Claimable lists the states from which a post may be claimed for publishing.
// A draft must be approved first.
func Claimable() []PostStatus {
	return []PostStatus{PostStatusReady, PostStatusFailed}
}

// Approvable lists the states from which a post may be approved or cancelled.
func Approvable() []PostStatus {
	return []PostStatus{PostStatusDraft, PostStatusReady, PostStatusFailed}
}

// Active reports whether the post still counts against the one-post-per-
// platform rule for its article.
func (s PostStatus) Active() bool {
	return s != PostStatusCancelled
}

// Editable reports whether the post content may still be changed.
func (s PostStatus) Editable() bool {
	return s == PostStatusDraft || s == PostStatusReady || s == PostStatusFailed
}

type ContentStyle string

const (
	StyleCasual ContentStyle = "casual"
	StyleTrack  ContentStyle = "track"
)

const PromptVersion = "v2"

// Post is a generated social message tied to one article and platform.
type Post struct {
	ID               int64        `db:"id" json:"id"`
	ArticleID        int64        `db:"article_id" json:"article_id"`
	Content          string       `db:"content" json:"content"`
	ContentStyle     ContentStyle `db:"content_style" json:"content_style"`
	LLMModel         *string      `db:"llm_model" json:"llm_model"`
	LLMPromptVersion *string      `db:"llm_prompt_version" json:"llm_prompt_version"`
	Platform         Platform     `db:"platform" json:"platform"`
	ExternalPostID   *string      `db:"external_post_id" json:"external_post_id"`
	ScheduledAt      *time.Time   `db:"scheduled_at" json:"scheduled_at"`
	PostedAt         *time.Time   `db:"posted_at" json:"posted_at"`
	Status           PostStatus   `db:"status" json:"status"`
	ErrorMessage     *string      `db:"error_message" json:"error_message"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at" json:"updated_at"`
}

// ComposeTweet appends the article link to the generated post text.
func ComposeTweet(content, link string) string {
	if link == "" {
		return content
	}
	return content + "\n\n" + link
}
