package domain

import "time"

type SourceType string

const (
	SourceTypeRSS        SourceType = "rss"
	SourceTypeYouTube    SourceType = "youtube"
	SourceTypeRSSArticle SourceType = "rss_article"
)

// GlobalDedup reports whether items of this source type are content
// addressed across all sources rather than per source.
func (t SourceType) GlobalDedup() bool {
	return t == SourceTypeRSSArticle
}

type Source struct {
	ID            int64      `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Type          SourceType `db:"type" json:"type"`
	URL           string     `db:"url" json:"url"`
	Category      *string    `db:"category" json:"category"`
	Enabled       bool       `db:"enabled" json:"enabled"`
	LastFetchedAt *time.Time `db:"last_fetched_at" json:"last_fetched_at"`
	FetchError    *string    `db:"fetch_error" json:"fetch_error"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type FetchLogStatus string

const (
	FetchLogSuccess FetchLogStatus = "success"
	FetchLogError   FetchLogStatus = "error"
)

// FetchLog is the audit record of one source fetch.
type FetchLog struct {
	ID            int64          `db:"id" json:"id"`
	SourceID      int64          `db:"source_id" json:"source_id"`
	Status        FetchLogStatus `db:"status" json:"status"`
	ArticlesCount int            `db:"articles_count" json:"articles_count"`
	InsertedCount int            `db:"inserted_count" json:"inserted_count"`
	ErrorMessage  *string        `db:"error_message" json:"error_message"`
	ExecutedAt    time.Time      `db:"executed_at" json:"executed_at"`
}

// FetchedItem is a source item normalised by a fetcher.
type FetchedItem struct {
	ExternalID  string       `json:"external_id"`
	Title       string       `json:"title"`
	Summary     *string      `json:"summary"`
	Link        string       `json:"link"`
	Thumbnail   *string      `json:"thumbnail"`
	Author      *string      `json:"author"`
	PublishedAt *time.Time   `json:"published_at"`
	ViewCount   *int64       `json:"view_count"`
	LikeCount   *int64       `json:"like_count"`
	TitleJa     *string      `json:"title_ja,omitempty"`
	SummaryJa   *string      `json:"summary_ja,omitempty"`
	ContentType *ContentType `json:"content_type,omitempty"`
	// Prepared is set once an item has been scraped and localised, so it
	// can be stored as ready.
	Prepared bool `json:"prepared"`
}

// NewArticle builds the row inserted for a previously unseen item.
func (i *FetchedItem) NewArticle(sourceID *int64, fetchedAt time.Time) *Article {
	status := StatusPending
	if i.Prepared {
		status = StatusReady
	}
	return &Article{
		SourceID:        sourceID,
		ExternalID:      i.ExternalID,
		TitleOriginal:   i.Title,
		TitleJa:         i.TitleJa,
		SummaryOriginal: i.Summary,
		SummaryJa:       i.SummaryJa,
		Link:            i.Link,
		ThumbnailURL:    i.Thumbnail,
		Author:          i.Author,
		PublishedAt:     i.PublishedAt,
		FetchedAt:       fetchedAt,
		Status:          status,
		ContentType:     i.ContentType,
		ViewCount:       i.ViewCount,
		LikeCount:       i.LikeCount,
	}
}

// FetchResult is what a fetcher returns for one source. ResolvedURL is set
// when the fetcher had to translate the configured URL into a feed URL.
type FetchResult struct {
	Items       []FetchedItem
	ResolvedURL string
}

// FetchStats holds statistics about one source fetch.
type FetchStats struct {
	SourceID   int64
	SourceName string
	SourceType SourceType
	Fetched    int
	Inserted   int
	Updated    int
	Skipped    int
	Errors     int
	Duration   time.Duration
}

// PreviewItem is a fetched item annotated with whether it is already stored.
type PreviewItem struct {
	FetchedItem
	IsExisting bool `json:"is_existing"`
}

type Preview struct {
	Source      *Source       `json:"source"`
	Items       []PreviewItem `json:"items"`
	URLResolved bool          `json:"url_resolved"`
}
