package service

import (
	"context"
	"fmt"
	"log/slog"

	"newsdesk/internal/domain"
)

type TagService struct {
	tags      TagStore
	articles  ArticleStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewTagService(tags TagStore, articles ArticleStore, txManager TransactionManager, logger *slog.Logger) *TagService {
	return &TagService{
		tags:      tags,
		articles:  articles,
		txManager: txManager,
		logger:    logger.With("component", "tags"),
	}
}

func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

func (s *TagService) ListByArticle(ctx context.Context, articleID int64) ([]domain.Tag, error) {
	if _, err := s.articles.Get(ctx, articleID); err != nil {
		return nil, err
	}
	return s.tags.ListByArticle(ctx, articleID)
}

// Set replaces the article's tags and refreshes the counts of every tag
// that was added or removed.
func (s *TagService) Set(ctx context.Context, articleID int64, tagIDs []int64) ([]domain.Tag, error) {
	if _, err := s.articles.Get(ctx, articleID); err != nil {
		return nil, err
	}

	var tags []domain.Tag
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		previous, err := s.tags.ListByArticle(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("list article tags: %w", err)
		}

		wanted := dedupIDs(tagIDs)
		if err := s.tags.LinkToArticle(txCtx, articleID, wanted); err != nil {
			return fmt.Errorf("link tags: %w", err)
		}

		touched := append([]int64{}, wanted...)
		for _, t := range previous {
			touched = append(touched, t.ID)
		}
		if err := s.tags.RefreshCounts(txCtx, dedupIDs(touched)); err != nil {
			return fmt.Errorf("refresh tag counts: %w", err)
		}

		tags, err = s.tags.ListByArticle(txCtx, articleID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("article tags set", "article_id", articleID, "count", len(tags))
	return tags, nil
}

func (s *TagService) Add(ctx context.Context, articleID, tagID int64) error {
	if _, err := s.articles.Get(ctx, articleID); err != nil {
		return err
	}
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.tags.AddToArticle(txCtx, articleID, tagID); err != nil {
			return fmt.Errorf("add tag: %w", err)
		}
		return s.tags.RefreshCounts(txCtx, []int64{tagID})
	})
}

func (s *TagService) Remove(ctx context.Context, articleID, tagID int64) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.tags.RemoveFromArticle(txCtx, articleID, tagID); err != nil {
			return fmt.Errorf("remove tag: %w", err)
		}
		return s.tags.RefreshCounts(txCtx, []int64{tagID})
	})
}

func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
