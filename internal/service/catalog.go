package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"newsdesk/internal/domain"
)

// ManualInput describes an external article added by hand. It enters the
// pipeline as pending, like a fetched item.
type ManualInput struct {
	URL          string
	Title        string
	Description  string
	ThumbnailURL string
	Author       string
}

// OriginalInput describes an article written in-house. It needs no
// translation and is stored ready.
type OriginalInput struct {
	Title        string
	Content      string
	ThumbnailURL string
	ContentType  domain.ContentType
}

// TrackInput asks for a track article built from a YouTube or Spotify URL.
type TrackInput struct {
	URL        string
	EditorNote string
}

// ScrapeInput asks for an article built from an external web page.
type ScrapeInput struct {
	URL        string
	EditorNote string
}

// TrackArticle is a created track article with its draft post.
type TrackArticle struct {
	Article *domain.Article
	Post    *domain.Post
}

// CatalogService creates articles that do not come from a source fetch.
type CatalogService struct {
	articles  ArticleStore
	posts     PostStore
	txManager TransactionManager
	writer    Writer
	resolver  MetadataResolver
	scraper   PageScraper
	artists   *ArtistService
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewCatalogService builds the service. artists may be nil.
func NewCatalogService(
	articles ArticleStore,
	posts PostStore,
	txManager TransactionManager,
	writer Writer,
	resolver MetadataResolver,
	scraper PageScraper,
	artists *ArtistService,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		articles:  articles,
		posts:     posts,
		txManager: txManager,
		writer:    writer,
		resolver:  resolver,
		scraper:   scraper,
		artists:   artists,
		logger:    logger.With("component", "catalog"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Metadata previews what a track URL resolves to.
func (s *CatalogService) Metadata(ctx context.Context, rawURL string) (*domain.TrackMetadata, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, rawURL)
}

func (s *CatalogService) CreateManual(ctx context.Context, in ManualInput) (*domain.Article, error) {
	if err := validateURL(in.URL); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if err := s.ensureUnique(ctx, in.URL, ""); err != nil {
		return nil, err
	}

	now := s.now()
	a := &domain.Article{
		ExternalID:      "manual_" + s.newID(),
		TitleOriginal:   strings.TrimSpace(in.Title),
		SummaryOriginal: optional(in.Description),
		Link:            in.URL,
		ThumbnailURL:    optional(in.ThumbnailURL),
		Author:          optional(in.Author),
		PublishedAt:     &now,
		FetchedAt:       now,
		Status:          domain.StatusPending,
	}

	if err := s.insert(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("manual article created", "article_id", a.ID, "link", a.Link)
	return a, nil
}

func (s *CatalogService) CreateOriginal(ctx context.Context, in OriginalInput) (*domain.Article, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrValidation)
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = domain.ContentTypeFeature
	}
	if !contentType.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrValidation, contentType)
	}

	now := s.now()
	a := &domain.Article{
		ExternalID:      "original_" + s.newID(),
		TitleOriginal:   title,
		TitleJa:         &title,
		SummaryOriginal: &content,
		SummaryJa:       &content,
		ThumbnailURL:    optional(in.ThumbnailURL),
		PublishedAt:     &now,
		FetchedAt:       now,
		Status:          domain.StatusReady,
		ContentType:     &contentType,
	}

	if err := s.insert(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("original article created", "article_id", a.ID)
	return a, nil
}

// CreateTrack resolves the track, writes the body and title concurrently,
// then the post, and stores the article ready with a track-style draft.
func (s *CatalogService) CreateTrack(ctx context.Context, in TrackInput) (*TrackArticle, error) {
	if err := validateURL(in.URL); err != nil {
		return nil, err
	}

	meta, err := s.resolver.Resolve(ctx, in.URL)
	if err != nil {
		return nil, fmt.Errorf("resolve track: %w", err)
	}
	if err := s.ensureUnique(ctx, meta.Link, meta.ExternalID); err != nil {
		return nil, err
	}

	title := meta.Title
	if meta.Artist != "" {
		title = meta.Artist + " - " + meta.Title
	}
	contentType := domain.ContentTypeTune

	brief := domain.Brief{
		Title:       title,
		Summary:     meta.Description,
		Link:        meta.Link,
		ContentType: contentType,
		EditorNote:  in.EditorNote,
		Track:       meta,
	}
	if s.artists != nil && meta.Artist != "" {
		artist, err := s.artists.ResolveName(ctx, primaryArtist(meta.Artist))
		if err != nil {
			s.logger.Warn("artist enrichment failed", "artist", meta.Artist, "error", err)
		} else {
			brief.Artist = artist
		}
	}

	var body, titleJa string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.writer.GenerateArticle(gctx, brief)
		if err != nil {
			return fmt.Errorf("generate article: %w", err)
		}
		body = b
		return nil
	})
	g.Go(func() error {
		t, err := s.writer.TranslateTitle(gctx, title)
		if err != nil {
			return fmt.Errorf("translate title: %w", err)
		}
		titleJa = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	brief.TitleJa = titleJa
	postText, err := s.writer.GeneratePost(ctx, brief)
	if err != nil {
		return nil, fmt.Errorf("generate post: %w", err)
	}

	now := s.now()
	publishedAt := releaseTime(meta, now)
	a := &domain.Article{
		ExternalID:      meta.ExternalID,
		TitleOriginal:   title,
		TitleJa:         &titleJa,
		SummaryOriginal: optional(meta.Description),
		SummaryJa:       &body,
		Link:            meta.Link,
		ThumbnailURL:    optional(meta.Thumbnail),
		PublishedAt:     &publishedAt,
		FetchedAt:       now,
		Status:          domain.StatusReady,
		ContentType:     &contentType,
		ViewCount:       meta.ViewCount,
		LikeCount:       meta.LikeCount,
		EditorNote:      optional(in.EditorNote),
	}
	if brief.Artist != nil {
		a.ArtistID = &brief.Artist.ID
	}

	var post *domain.Post
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.insert(txCtx, a); err != nil {
			return err
		}
		post, err = saveDraftPost(txCtx, s.posts, a.ID, postText, domain.StyleTrack, s.writer.Model())
		if err != nil {
			return fmt.Errorf("save draft post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("track article created", "article_id", a.ID, "platform", meta.Platform, "external_id", a.ExternalID)
	return &TrackArticle{Article: a, Post: post}, nil
}

// CreateFromURL scrapes an external article and stores a ready Japanese
// version of it.
func (s *CatalogService) CreateFromURL(ctx context.Context, in ScrapeInput) (*domain.Article, error) {
	if err := validateURL(in.URL); err != nil {
		return nil, err
	}

	externalID := domain.ExternalID(in.URL)
	if err := s.ensureUnique(ctx, in.URL, externalID); err != nil {
		return nil, err
	}

	page, err := s.scraper.Scrape(ctx, in.URL)
	if err != nil {
		return nil, fmt.Errorf("scrape page: %w", err)
	}

	var contentType domain.ContentType
	var localized *domain.Localized
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ct, err := s.writer.DetectContentType(gctx, page.Title, page.Excerpt)
		if err != nil {
			return fmt.Errorf("detect content type: %w", err)
		}
		contentType = ct
		return nil
	})
	g.Go(func() error {
		l, err := s.writer.SummarizeExternal(gctx, *page)
		if err != nil {
			return fmt.Errorf("summarize page: %w", err)
		}
		localized = l
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	publishedAt := now
	if page.PublishedAt != nil {
		publishedAt = *page.PublishedAt
	}

	a := &domain.Article{
		ExternalID:      externalID,
		TitleOriginal:   page.Title,
		TitleJa:         &localized.TitleJa,
		SummaryOriginal: optional(page.Excerpt),
		SummaryJa:       &localized.SummaryJa,
		Link:            in.URL,
		ThumbnailURL:    optional(page.Image),
		Author:          optional(page.Byline),
		PublishedAt:     &publishedAt,
		FetchedAt:       now,
		Status:          domain.StatusReady,
		ContentType:     &contentType,
		EditorNote:      optional(in.EditorNote),
	}

	if err := s.insert(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("scraped article created", "article_id", a.ID, "link", a.Link)
	return a, nil
}

// ensureUnique rejects a link or source-less external id that is already
// stored, reporting the existing article.
func (s *CatalogService) ensureUnique(ctx context.Context, link, externalID string) error {
	if link != "" {
		existing, err := s.articles.FindByLink(ctx, link)
		if err == nil {
			return &domain.DuplicateError{ArticleID: existing.ID, Key: link}
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find article by link: %w", err)
		}
	}

	if externalID != "" {
		found, err := s.articles.FindExisting(ctx, nil, []string{externalID})
		if err != nil {
			return fmt.Errorf("find article by external id: %w", err)
		}
		if id, ok := found[externalID]; ok {
			return &domain.DuplicateError{ArticleID: id, Key: externalID}
		}
	}
	return nil
}

// insert maps a lost insert race to the duplicate error the caller would
// have seen had it arrived second.
func (s *CatalogService) insert(ctx context.Context, a *domain.Article) error {
	_, err := s.articles.Insert(ctx, a)
	if errors.Is(err, domain.ErrConflict) {
		if dupErr := s.ensureUnique(ctx, "", a.ExternalID); dupErr != nil {
			return dupErr
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: a valid http(s) url is required", domain.ErrValidation)
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// primaryArtist returns the first name of a comma separated artist list.
func primaryArtist(names string) string {
	first, _, _ := strings.Cut(names, ",")
	return strings.TrimSpace(first)
}

func releaseTime(meta *domain.TrackMetadata, fallback time.Time) time.Time {
	if meta.PublishedAt != nil {
		return *meta.PublishedAt
	}
	if t, err := time.Parse("2006-01-02", meta.ReleaseDate); err == nil {
		return t
	}
	return fallback
}
