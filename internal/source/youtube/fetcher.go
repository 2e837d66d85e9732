package youtube

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/source/feed"
)

// Fetcher implements the youtube source type: resolve the channel, read its
// feed and, when an API client is configured, enrich the entries with
// statistics and full descriptions.
type Fetcher struct {
	feeds      *feed.Fetcher
	api        *Client
	pageClient *http.Client
	logger     *slog.Logger
}

// NewFetcher accepts a nil api client; enrichment is skipped in that case.
func NewFetcher(feeds *feed.Fetcher, api *Client, timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		feeds:      feeds,
		api:        api,
		pageClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "youtube"),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, src *domain.Source) (*domain.FetchResult, error) {
	feedURL, err := f.ResolveFeedURL(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	parsed, err := f.feeds.FetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	items := make([]domain.FetchedItem, 0, len(parsed.Items))
	videoIDs := make([]string, 0, len(parsed.Items))
	index := make(map[string]int, len(parsed.Items))

	for _, it := range parsed.Items {
		item, ok := feed.NormalizeItem(it)
		if !ok {
			continue
		}
		if id := feed.VideoID(it); id != "" {
			index[id] = len(items)
			videoIDs = append(videoIDs, id)
		}
		items = append(items, item)
	}

	if f.api != nil && len(videoIDs) > 0 {
		f.enrich(ctx, items, videoIDs, index)
	}

	result := &domain.FetchResult{Items: items}
	if feedURL != src.URL {
		result.ResolvedURL = feedURL
	}
	return result, nil
}

func (f *Fetcher) enrich(ctx context.Context, items []domain.FetchedItem, ids []string, index map[string]int) {
	videos, err := f.api.Videos(ctx, ids)
	if err != nil {
		f.logger.Warn("video enrichment failed, using feed data only", "error", err)
	}

	for id, v := range videos {
		i, ok := index[id]
		if !ok {
			continue
		}
		if v.ViewCount != nil {
			items[i].ViewCount = v.ViewCount
		}
		if v.LikeCount != nil {
			items[i].LikeCount = v.LikeCount
		}
		if v.Description != "" {
			desc := v.Description
			items[i].Summary = &desc
		}
	}
}
