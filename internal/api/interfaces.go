package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsdesk/internal/domain"
	"newsdesk/internal/service"
)

type ArticleService interface {
	Get(ctx context.Context, id int64) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	ListPublic(ctx context.Context, limit int) ([]domain.Article, error)
	Update(ctx context.Context, id int64, patch domain.ArticlePatch) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
	Translate(ctx context.Context, id int64) (*domain.Article, error)
	Generate(ctx context.Context, id int64, opts domain.GenerateOptions) (*domain.Article, error)
	Process(ctx context.Context, id int64, opts domain.GenerateOptions) (*domain.Article, error)
	Unpublish(ctx context.Context, id int64) (*domain.Article, error)
	Skip(ctx context.Context, id int64) (*domain.Article, error)
}

type CatalogService interface {
	Metadata(ctx context.Context, rawURL string) (*domain.TrackMetadata, error)
	CreateManual(ctx context.Context, in service.ManualInput) (*domain.Article, error)
	CreateOriginal(ctx context.Context, in service.OriginalInput) (*domain.Article, error)
	CreateTrack(ctx context.Context, in service.TrackInput) (*service.TrackArticle, error)
	CreateFromURL(ctx context.Context, in service.ScrapeInput) (*domain.Article, error)
}

type TagService interface {
	List(ctx context.Context) ([]domain.Tag, error)
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Tag, error)
	Set(ctx context.Context, articleID int64, tagIDs []int64) ([]domain.Tag, error)
	Add(ctx context.Context, articleID, tagID int64) error
	Remove(ctx context.Context, articleID, tagID int64) error
}

type PostService interface {
	Get(ctx context.Context, id int64) (*domain.Post, error)
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Post, error)
	MarkReady(ctx context.Context, postID int64) (*domain.Post, error)
	Publish(ctx context.Context, postID int64) (*domain.Post, error)
	Cancel(ctx context.Context, postID int64) (*domain.Post, error)
	UpdateContent(ctx context.Context, postID int64, content string) (*domain.Post, error)
}

type SourceService interface {
	FetchByID(ctx context.Context, sourceID int64) (*domain.FetchStats, error)
	Preview(ctx context.Context, sourceID int64) (*domain.Preview, error)
	Import(ctx context.Context, sourceID int64, selected []string) (*domain.FetchStats, error)
}

type BatchRunner interface {
	FetchAll(ctx context.Context) ([]domain.SourceOutcome, error)
	TranslatePending(ctx context.Context) (*domain.BatchReport, error)
	GeneratePending(ctx context.Context) (*domain.BatchReport, error)
	PostReady(ctx context.Context) (*domain.BatchReport, error)
}
