package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/metrics"
)

// IngestService fetches sources and stores their items, deduplicated by
// external id.
type IngestService struct {
	sources   SourceStore
	fetchLogs FetchLogStore
	articles  ArticleStore
	txManager TransactionManager
	fetchers  map[domain.SourceType]Fetcher
	logger    *slog.Logger
	now       func() time.Time
}

func NewIngestService(
	sources SourceStore,
	fetchLogs FetchLogStore,
	articles ArticleStore,
	txManager TransactionManager,
	fetchers map[domain.SourceType]Fetcher,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		sources:   sources,
		fetchLogs: fetchLogs,
		articles:  articles,
		txManager: txManager,
		fetchers:  fetchers,
		logger:    logger.With("component", "ingest"),
		now:       time.Now,
	}
}

// FetchEnabled fetches every enabled source in turn. A failing source is
// reported in its outcome and does not stop the others.
func (s *IngestService) FetchEnabled(ctx context.Context) ([]domain.SourceOutcome, error) {
	sources, err := s.sources.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled sources: %w", err)
	}

	outcomes := make([]domain.SourceOutcome, 0, len(sources))
	for i := range sources {
		src := &sources[i]
		stats, err := s.FetchSource(ctx, src)
		outcomes = append(outcomes, domain.SourceOutcome{
			SourceID:   src.ID,
			SourceName: src.Name,
			SourceType: src.Type,
			Stats:      stats,
			Err:        err,
		})
	}

	return outcomes, nil
}

func (s *IngestService) FetchByID(ctx context.Context, sourceID int64) (*domain.FetchStats, error) {
	src, err := s.sources.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	return s.FetchSource(ctx, src)
}

// FetchSource runs one fetch of src: new items are inserted, known items
// only get their volatile fields refreshed. The outcome is always written to
// the fetch log and stamped on the source.
func (s *IngestService) FetchSource(ctx context.Context, src *domain.Source) (*domain.FetchStats, error) {
	start := s.now()
	logger := s.logger.With("source_id", src.ID, "source_type", src.Type)
	logger.Info("starting fetch", "source_name", src.Name, "url", src.URL)

	fetcher, items, err := s.fetch(ctx, src)
	if err != nil {
		s.finish(ctx, logger, src, nil, err)
		return nil, fmt.Errorf("fetch source %d: %w", src.ID, err)
	}

	stats := &domain.FetchStats{
		SourceID:   src.ID,
		SourceName: src.Name,
		SourceType: src.Type,
		Fetched:    len(items),
	}

	existing, err := s.articles.FindExisting(ctx, dedupScope(src), externalIDs(items))
	if err != nil {
		err = fmt.Errorf("find existing articles: %w", err)
		s.finish(ctx, logger, src, stats, err)
		return nil, err
	}

	s.store(ctx, logger, src, fetcher, items, existing, true, stats)
	stats.Duration = s.now().Sub(start)

	if err := s.finish(ctx, logger, src, stats, nil); err != nil {
		return stats, err
	}

	logger.Info("fetch completed",
		"fetched", stats.Fetched,
		"inserted", stats.Inserted,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// Preview fetches the source without writing anything and flags the items
// that are already stored.
func (s *IngestService) Preview(ctx context.Context, sourceID int64) (*domain.Preview, error) {
	src, err := s.sources.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	fetcher, ok := s.fetchers[src.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported source type %q", domain.ErrValidation, src.Type)
	}

	result, err := fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetch source %d: %w", src.ID, err)
	}

	existing, err := s.articles.FindExisting(ctx, dedupScope(src), externalIDs(result.Items))
	if err != nil {
		return nil, fmt.Errorf("find existing articles: %w", err)
	}

	preview := &domain.Preview{
		Source:      src,
		Items:       make([]domain.PreviewItem, len(result.Items)),
		URLResolved: result.ResolvedURL != "" && result.ResolvedURL != src.URL,
	}
	for i, item := range result.Items {
		_, found := existing[item.ExternalID]
		preview.Items[i] = domain.PreviewItem{FetchedItem: item, IsExisting: found}
	}

	return preview, nil
}

// Import stores only the selected items of a fresh fetch. Items that are
// already stored are skipped rather than refreshed.
func (s *IngestService) Import(ctx context.Context, sourceID int64, selected []string) (*domain.FetchStats, error) {
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no items selected", domain.ErrValidation)
	}

	src, err := s.sources.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("source_id", src.ID, "source_type", src.Type)

	fetcher, items, err := s.fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetch source %d: %w", src.ID, err)
	}

	want := make(map[string]bool, len(selected))
	for _, id := range selected {
		want[id] = true
	}
	var picked []domain.FetchedItem
	for _, item := range items {
		if want[item.ExternalID] {
			picked = append(picked, item)
		}
	}

	existing, err := s.articles.FindExisting(ctx, dedupScope(src), externalIDs(picked))
	if err != nil {
		return nil, fmt.Errorf("find existing articles: %w", err)
	}

	stats := &domain.FetchStats{
		SourceID:   src.ID,
		SourceName: src.Name,
		SourceType: src.Type,
		Fetched:    len(picked),
	}
	s.store(ctx, logger, src, fetcher, picked, existing, false, stats)

	logger.Info("import completed", "selected", len(selected), "inserted", stats.Inserted, "skipped", stats.Skipped)
	return stats, nil
}

// fetch runs the source's fetcher and persists a resolved feed URL.
func (s *IngestService) fetch(ctx context.Context, src *domain.Source) (Fetcher, []domain.FetchedItem, error) {
	fetcher, ok := s.fetchers[src.Type]
	if !ok {
		return nil, nil, fmt.Errorf("%w: unsupported source type %q", domain.ErrValidation, src.Type)
	}

	result, err := fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, nil, err
	}

	if result.ResolvedURL != "" && result.ResolvedURL != src.URL {
		if err := s.sources.UpdateURL(ctx, src.ID, result.ResolvedURL); err != nil {
			s.logger.Warn("failed to save resolved url", "source_id", src.ID, "error", err)
		} else {
			s.logger.Info("source url resolved", "source_id", src.ID, "from", src.URL, "to", result.ResolvedURL)
			src.URL = result.ResolvedURL
		}
	}

	return fetcher, result.Items, nil
}

func (s *IngestService) store(
	ctx context.Context,
	logger *slog.Logger,
	src *domain.Source,
	fetcher Fetcher,
	items []domain.FetchedItem,
	existing map[string]int64,
	refresh bool,
	stats *domain.FetchStats,
) {
	fetchedAt := s.now()
	sourceID := src.ID
	seen := make(map[string]bool, len(items))

	for i := range items {
		item := &items[i]

		if seen[item.ExternalID] {
			stats.Skipped++
			continue
		}
		seen[item.ExternalID] = true

		if id, ok := existing[item.ExternalID]; ok {
			if !refresh {
				stats.Skipped++
				continue
			}
			if err := s.articles.RefreshVolatile(ctx, id, item); err != nil {
				logger.Error("failed to refresh article", "article_id", id, "error", err)
				stats.Errors++
				continue
			}
			stats.Updated++
			continue
		}

		if pf, ok := fetcher.(PreparingFetcher); ok {
			if err := pf.Prepare(ctx, item); err != nil {
				logger.Warn("failed to prepare item", "external_id", item.ExternalID, "link", item.Link, "error", err)
				stats.Errors++
				continue
			}
		}

		article := item.NewArticle(&sourceID, fetchedAt)
		if _, err := s.articles.Insert(ctx, article); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				stats.Skipped++
				continue
			}
			logger.Error("failed to insert article", "external_id", item.ExternalID, "error", err)
			stats.Errors++
			continue
		}
		stats.Inserted++
	}

	t := string(src.Type)
	metrics.IngestedItems.WithLabelValues(t, "inserted").Add(float64(stats.Inserted))
	metrics.IngestedItems.WithLabelValues(t, "updated").Add(float64(stats.Updated))
	metrics.IngestedItems.WithLabelValues(t, "skipped").Add(float64(stats.Skipped))
	metrics.IngestedItems.WithLabelValues(t, "error").Add(float64(stats.Errors))
}

// finish writes the fetch log and stamps the source in one transaction.
func (s *IngestService) finish(ctx context.Context, logger *slog.Logger, src *domain.Source, stats *domain.FetchStats, fetchErr error) error {
	metrics.SourceFetches.WithLabelValues(string(src.Type), metrics.Result(fetchErr)).Inc()

	now := s.now()
	entry := &domain.FetchLog{
		SourceID:   src.ID,
		Status:     domain.FetchLogSuccess,
		ExecutedAt: now,
	}
	if stats != nil {
		entry.ArticlesCount = stats.Fetched
		entry.InsertedCount = stats.Inserted
	}

	var errMsg *string
	if fetchErr != nil {
		msg := fetchErr.Error()
		errMsg = &msg
		entry.Status = domain.FetchLogError
		entry.ErrorMessage = errMsg
		logger.Error("fetch failed", "error", fetchErr)
	}

	// The outcome is recorded even when the caller's context is gone.
	ctx = context.WithoutCancel(ctx)
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.fetchLogs.Insert(txCtx, entry); err != nil {
			return fmt.Errorf("insert fetch log: %w", err)
		}
		if err := s.sources.MarkFetched(txCtx, src.ID, now, errMsg); err != nil {
			return fmt.Errorf("mark source fetched: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to record fetch", "error", err)
		return fmt.Errorf("record fetch: %w", err)
	}
	return nil
}

// dedupScope returns the source id lookups are restricted to, or nil for
// content-addressed source types.
func dedupScope(src *domain.Source) *int64 {
	if src.Type.GlobalDedup() {
		return nil
	}
	id := src.ID
	return &id
}

func externalIDs(items []domain.FetchedItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ExternalID
	}
	return ids
}
