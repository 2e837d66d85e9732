package domain

import "time"

type ContentType string

const (
	ContentTypeMV        ContentType = "mv"
	ContentTypeNews      ContentType = "news"
	ContentTypeInterview ContentType = "interview"
	ContentTypeLive      ContentType = "live"
	ContentTypeFeature   ContentType = "feature"
	ContentTypeTune      ContentType = "tune"
)

var contentTypes = []ContentType{
	ContentTypeMV,
	ContentTypeNews,
	ContentTypeInterview,
	ContentTypeLive,
	ContentTypeFeature,
	ContentTypeTune,
}

func (c ContentType) Valid() bool {
	for _, ct := range contentTypes {
		if ct == c {
			return true
		}
	}
	return false
}

// Article is a single piece of music news, either ingested from a source
// or created by an operator (SourceID is nil in that case).
type Article struct {
	ID              int64        `db:"id" json:"id"`
	SourceID        *int64       `db:"source_id" json:"source_id"`
	ExternalID      string       `db:"external_id" json:"external_id"`
	TitleOriginal   string       `db:"title_original" json:"title_original"`
	TitleJa         *string      `db:"title_ja" json:"title_ja"`
	SummaryOriginal *string      `db:"summary_original" json:"summary_original"`
	SummaryJa       *string      `db:"summary_ja" json:"summary_ja"`
	Link            string       `db:"link" json:"link"`
	ThumbnailURL    *string      `db:"thumbnail_url" json:"thumbnail_url"`
	Author          *string      `db:"author" json:"author"`
	PublishedAt     *time.Time   `db:"published_at" json:"published_at"`
	FetchedAt       time.Time    `db:"fetched_at" json:"fetched_at"`
	Status          Status       `db:"status" json:"status"`
	ContentType     *ContentType `db:"content_type" json:"content_type"`
	ViewCount       *int64       `db:"view_count" json:"view_count"`
	LikeCount       *int64       `db:"like_count" json:"like_count"`
	ArtistID        *int64       `db:"artist_id" json:"artist_id"`
	EditorNote      *string      `db:"editor_note" json:"editor_note"`
	ErrorMessage    *string      `db:"error_message" json:"error_message"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
}

func (a *Article) HasTitleJa() bool {
	return a.TitleJa != nil && *a.TitleJa != ""
}

func (a *Article) HasSummaryJa() bool {
	return a.SummaryJa != nil && *a.SummaryJa != ""
}

// NeedsContentType reports whether the classification should be (re)detected.
// "news" is the ingestion default and is treated as unclassified.
func (a *Article) NeedsContentType() bool {
	return a.ContentType == nil || *a.ContentType == ContentTypeNews
}

// DisplayTitle prefers the translated title.
func (a *Article) DisplayTitle() string {
	if a.HasTitleJa() {
		return *a.TitleJa
	}
	return a.TitleOriginal
}

// ArticlePatch carries operator edits. Nil fields are left untouched.
type ArticlePatch struct {
	TitleJa     *string      `json:"title_ja"`
	SummaryJa   *string      `json:"summary_ja"`
	EditorNote  *string      `json:"editor_note"`
	ContentType *ContentType `json:"content_type"`
}

func (p ArticlePatch) Apply(a *Article) {
	if p.TitleJa != nil {
		a.TitleJa = p.TitleJa
	}
	if p.SummaryJa != nil {
		a.SummaryJa = p.SummaryJa
	}
	if p.EditorNote != nil {
		a.EditorNote = p.EditorNote
	}
	if p.ContentType != nil {
		a.ContentType = p.ContentType
	}
}

type ArticleSort string

const (
	SortPublishedAt ArticleSort = "published_at"
	SortFetchedAt   ArticleSort = "fetched_at"
	SortCreatedAt   ArticleSort = "created_at"
)

func (s ArticleSort) Valid() bool {
	switch s {
	case SortPublishedAt, SortFetchedAt, SortCreatedAt:
		return true
	}
	return false
}

// ArticleFilter selects a page of articles for the admin listing.
type ArticleFilter struct {
	Statuses    []Status
	Unpublished bool
	ContentType *ContentType
	SourceID    *int64
	Sort        ArticleSort
	Limit       int
	Offset      int
}

// Tag is a free-form label attached to articles.
type Tag struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Color        *string   `db:"color" json:"color"`
	Description  *string   `db:"description" json:"description"`
	ArticleCount int       `db:"article_count" json:"article_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
