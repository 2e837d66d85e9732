package domain

import "time"

// Brief is everything the writer needs to produce Japanese copy for one
// article.
type Brief struct {
	Title       string
	TitleJa     string
	Summary     string
	Link        string
	ContentType ContentType
	EditorNote  string
	Artist      *Artist
	Related     []string
	Track       *TrackMetadata
}

// NewBrief collects the writer inputs from an article.
func NewBrief(a *Article) Brief {
	b := Brief{
		Title: a.TitleOriginal,
		Link:  a.Link,
	}
	if a.TitleJa != nil {
		b.TitleJa = *a.TitleJa
	}
	if a.SummaryOriginal != nil {
		b.Summary = *a.SummaryOriginal
	}
	if a.ContentType != nil {
		b.ContentType = *a.ContentType
	}
	if a.EditorNote != nil {
		b.EditorNote = *a.EditorNote
	}
	return b
}

// Localized is a Japanese title and summary produced for an external page.
type Localized struct {
	TitleJa   string
	SummaryJa string
}

// ScrapedPage is the readable content of an external article.
type ScrapedPage struct {
	URL         string
	Title       string
	Text        string
	Excerpt     string
	SiteName    string
	Byline      string
	Image       string
	PublishedAt *time.Time
}

// TrackMetadata describes a single track resolved from a YouTube or Spotify
// URL.
type TrackMetadata struct {
	Platform    string     `json:"platform"`
	ExternalID  string     `json:"external_id"`
	Link        string     `json:"link"`
	Title       string     `json:"title"`
	Artist      string     `json:"artist"`
	Album       string     `json:"album,omitempty"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Description string     `json:"description,omitempty"`
	ReleaseDate string     `json:"release_date,omitempty"`
	Genres      []string   `json:"genres,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ViewCount   *int64     `json:"view_count,omitempty"`
	LikeCount   *int64     `json:"like_count,omitempty"`
}
