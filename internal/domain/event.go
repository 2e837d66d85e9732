package domain

import "time"

type EventType string

const (
	EventPublished   EventType = "article.published"
	EventPosted      EventType = "article.posted"
	EventUnpublished EventType = "article.unpublished"
)

// LifecycleEvent is emitted when an article changes public visibility.
type LifecycleEvent struct {
	Type       EventType `json:"type"`
	ArticleID  int64     `json:"article_id"`
	PostID     *int64    `json:"post_id,omitempty"`
	Status     Status    `json:"status"`
	Link       string    `json:"link"`
	Title      string    `json:"title"`
	ExternalID *string   `json:"external_post_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewLifecycleEvent(t EventType, a *Article, now time.Time) LifecycleEvent {
	return LifecycleEvent{
		Type:       t,
		ArticleID:  a.ID,
		Status:     a.Status,
		Link:       a.Link,
		Title:      a.DisplayTitle(),
		OccurredAt: now.UTC(),
	}
}
