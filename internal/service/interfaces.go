package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newsdesk/internal/domain"
)

type SourceStore interface {
	Get(ctx context.Context, id int64) (*domain.Source, error)
	ListEnabled(ctx context.Context) ([]domain.Source, error)
	UpdateURL(ctx context.Context, id int64, url string) error
	MarkFetched(ctx context.Context, id int64, fetchedAt time.Time, fetchErr *string) error
}

type FetchLogStore interface {
	Insert(ctx context.Context, log *domain.FetchLog) error
}

type ArticleStore interface {
	Get(ctx context.Context, id int64) (*domain.Article, error)
	FindExisting(ctx context.Context, sourceID *int64, externalIDs []string) (map[string]int64, error)
	FindByLink(ctx context.Context, link string) (*domain.Article, error)
	Insert(ctx context.Context, article *domain.Article) (int64, error)
	RefreshVolatile(ctx context.Context, id int64, item *domain.FetchedItem) error
	Update(ctx context.Context, article *domain.Article) error
	SetStatus(ctx context.Context, id int64, status domain.Status, errorMessage *string) error
	CompareAndSetStatus(ctx context.Context, id int64, from []domain.Status, to domain.Status) (bool, error)
	ListByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	ListRelated(ctx context.Context, artistName string, excludeID int64, limit int) ([]domain.Article, error)
	ListPublic(ctx context.Context, limit int) ([]domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

type PostStore interface {
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Insert(ctx context.Context, post *domain.Post) (int64, error)
	FindActive(ctx context.Context, articleID int64, platform domain.Platform) (*domain.Post, error)
	UpdateContent(ctx context.Context, post *domain.Post) error
	TransitionStatus(ctx context.Context, id int64, from []domain.PostStatus, to domain.PostStatus) (bool, error)
	MarkPosted(ctx context.Context, id int64, externalID string, postedAt time.Time) error
	MarkFailed(ctx context.Context, id int64, message string) error
	ListByStatus(ctx context.Context, status domain.PostStatus, limit int) ([]domain.Post, error)
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Post, error)
}

type ArtistStore interface {
	FindByName(ctx context.Context, name string) (*domain.Artist, error)
	Upsert(ctx context.Context, artist *domain.Artist) (int64, error)
}

type TagStore interface {
	List(ctx context.Context) ([]domain.Tag, error)
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Tag, error)
	LinkToArticle(ctx context.Context, articleID int64, tagIDs []int64) error
	AddToArticle(ctx context.Context, articleID, tagID int64) error
	RemoveFromArticle(ctx context.Context, articleID, tagID int64) error
	RefreshCounts(ctx context.Context, tagIDs []int64) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Fetcher retrieves and normalises the current items of one source.
type Fetcher interface {
	Fetch(ctx context.Context, source *domain.Source) (*domain.FetchResult, error)
}

// PreparingFetcher is a Fetcher whose new items must be prepared before they
// are stored.
type PreparingFetcher interface {
	Fetch(ctx context.Context, source *domain.Source) (*domain.FetchResult, error)
	Prepare(ctx context.Context, item *domain.FetchedItem) error
}

type Writer interface {
	TranslateTitle(ctx context.Context, title string) (string, error)
	GenerateArticle(ctx context.Context, brief domain.Brief) (string, error)
	GeneratePost(ctx context.Context, brief domain.Brief) (string, error)
	DetectContentType(ctx context.Context, title, summary string) (domain.ContentType, error)
	SummarizeExternal(ctx context.Context, page domain.ScrapedPage) (*domain.Localized, error)
	Model() string
}

type ArtistResearcher interface {
	Research(ctx context.Context, name string) (*domain.ArtistProfile, error)
}

type MetadataResolver interface {
	Resolve(ctx context.Context, rawURL string) (*domain.TrackMetadata, error)
}

type PageScraper interface {
	Scrape(ctx context.Context, rawURL string) (*domain.ScrapedPage, error)
}

type SocialPoster interface {
	Post(ctx context.Context, text string) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, event domain.LifecycleEvent) error
	Close() error
}

// The batch service drives the other services through these.

type SourceIngester interface {
	FetchEnabled(ctx context.Context) ([]domain.SourceOutcome, error)
}

type ArticleProcessor interface {
	Translate(ctx context.Context, id int64) (*domain.Article, error)
	Generate(ctx context.Context, id int64, opts domain.GenerateOptions) (*domain.Article, error)
}

type PostPublisher interface {
	Publish(ctx context.Context, postID int64) (*domain.Post, error)
}
