package service

import (
	"context"
	"fmt"
	"log/slog"

	"newsdesk/internal/domain"
)

type BatchLimits struct {
	Translate int
	Generate  int
	Post      int
}

// BatchService runs the periodic jobs. Items are handled one at a time in
// listing order; a failing item is recorded in the report and the batch
// moves on.
type BatchService struct {
	ingester  SourceIngester
	processor ArticleProcessor
	poster    PostPublisher
	articles  ArticleStore
	posts     PostStore
	limits    BatchLimits
	logger    *slog.Logger
}

func NewBatchService(
	ingester SourceIngester,
	processor ArticleProcessor,
	poster PostPublisher,
	articles ArticleStore,
	posts PostStore,
	limits BatchLimits,
	logger *slog.Logger,
) *BatchService {
	return &BatchService{
		ingester:  ingester,
		processor: processor,
		poster:    poster,
		articles:  articles,
		posts:     posts,
		limits:    limits,
		logger:    logger.With("component", "batch"),
	}
}

func (s *BatchService) FetchAll(ctx context.Context) ([]domain.SourceOutcome, error) {
	outcomes, err := s.ingester.FetchEnabled(ctx)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	s.logger.Info("fetch batch completed", "sources", len(outcomes), "failed", failed)
	return outcomes, nil
}

// TranslatePending translates the most recently fetched pending articles.
func (s *BatchService) TranslatePending(ctx context.Context) (*domain.BatchReport, error) {
	articles, err := s.articles.ListByStatus(ctx, domain.StatusPending, s.limits.Translate)
	if err != nil {
		return nil, fmt.Errorf("list pending articles: %w", err)
	}

	report := &domain.BatchReport{Results: make([]domain.ItemResult, 0, len(articles))}
	for _, a := range articles {
		if _, err := s.processor.Translate(ctx, a.ID); err != nil {
			report.Fail(a.ID, err)
			continue
		}
		report.Ok(a.ID)
	}

	s.logger.Info("translate batch completed", "candidates", len(articles), "translated", report.Succeeded)
	return report, nil
}

// GeneratePending generates body and post for translated articles.
func (s *BatchService) GeneratePending(ctx context.Context) (*domain.BatchReport, error) {
	articles, err := s.articles.ListByStatus(ctx, domain.StatusTranslated, s.limits.Generate)
	if err != nil {
		return nil, fmt.Errorf("list translated articles: %w", err)
	}

	report := &domain.BatchReport{Results: make([]domain.ItemResult, 0, len(articles))}
	for _, a := range articles {
		if _, err := s.processor.Generate(ctx, a.ID, domain.GenerateOptions{}); err != nil {
			report.Fail(a.ID, err)
			continue
		}
		report.Ok(a.ID)
	}

	s.logger.Info("generate batch completed", "candidates", len(articles), "generated", report.Succeeded)
	return report, nil
}

// PostReady publishes approved posts, oldest first.
func (s *BatchService) PostReady(ctx context.Context) (*domain.BatchReport, error) {
	posts, err := s.posts.ListByStatus(ctx, domain.PostStatusReady, s.limits.Post)
	if err != nil {
		return nil, fmt.Errorf("list ready posts: %w", err)
	}

	report := &domain.BatchReport{Results: make([]domain.ItemResult, 0, len(posts))}
	for _, p := range posts {
		posted, err := s.poster.Publish(ctx, p.ID)
		if err != nil {
			report.Fail(p.ID, err)
			continue
		}
		report.Succeeded++
		result := domain.ItemResult{ID: p.ID, Success: true}
		if posted.ExternalPostID != nil {
			result.TweetID = *posted.ExternalPostID
		}
		report.Results = append(report.Results, result)
	}

	s.logger.Info("post batch completed", "candidates", len(posts), "posted", report.Succeeded)
	return report, nil
}
