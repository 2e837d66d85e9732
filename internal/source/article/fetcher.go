package article

import (
	"context"
	"fmt"
	"log/slog"

	"newsdesk/internal/domain"
	"newsdesk/internal/source/feed"
)

// Writer is the part of the LLM client the article pipeline needs.
type Writer interface {
	DetectContentType(ctx context.Context, title, summary string) (domain.ContentType, error)
	SummarizeExternal(ctx context.Context, page domain.ScrapedPage) (*domain.Localized, error)
}

type PageScraper interface {
	Scrape(ctx context.Context, rawURL string) (*domain.ScrapedPage, error)
}

// Fetcher implements the rss_article source type. Feed entries are listed
// like any RSS source; new entries are then scraped and localised in Prepare
// so they can be stored as ready.
type Fetcher struct {
	feeds   *feed.Fetcher
	scraper PageScraper
	writer  Writer
	logger  *slog.Logger
}

func NewFetcher(feeds *feed.Fetcher, scraper PageScraper, writer Writer, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		feeds:   feeds,
		scraper: scraper,
		writer:  writer,
		logger:  logger.With("component", "article"),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, src *domain.Source) (*domain.FetchResult, error) {
	return f.feeds.Fetch(ctx, src)
}

func (f *Fetcher) Prepare(ctx context.Context, item *domain.FetchedItem) error {
	page, err := f.scraper.Scrape(ctx, item.Link)
	if err != nil {
		return fmt.Errorf("scrape %s: %w", item.Link, err)
	}

	if page.Title == "" {
		page.Title = item.Title
	}

	contentType, err := f.writer.DetectContentType(ctx, page.Title, page.Excerpt)
	if err != nil {
		return fmt.Errorf("detect content type: %w", err)
	}

	localized, err := f.writer.SummarizeExternal(ctx, *page)
	if err != nil {
		return fmt.Errorf("summarize article: %w", err)
	}

	Apply(item, page, contentType, localized)

	f.logger.Debug("prepared article", "link", item.Link, "content_type", contentType)

	return nil
}

// Apply copies scrape and writer output onto a fetched item and marks it
// prepared.
func Apply(item *domain.FetchedItem, page *domain.ScrapedPage, ct domain.ContentType, loc *domain.Localized) {
	titleJa := loc.TitleJa
	summaryJa := loc.SummaryJa
	item.TitleJa = &titleJa
	item.SummaryJa = &summaryJa
	item.ContentType = &ct

	if item.Summary == nil && page.Excerpt != "" {
		excerpt := page.Excerpt
		item.Summary = &excerpt
	}
	if item.Thumbnail == nil && page.Image != "" {
		img := page.Image
		item.Thumbnail = &img
	}
	if item.Author == nil && page.Byline != "" {
		byline := page.Byline
		item.Author = &byline
	}
	if item.PublishedAt == nil && page.PublishedAt != nil {
		item.PublishedAt = page.PublishedAt
	}

	item.Prepared = true
}
