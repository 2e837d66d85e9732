package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"newsdesk/internal/domain"
)

// Config holds feed fetcher configuration.
type Config struct {
	Timeout        time.Duration
	UserAgent      string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Fetcher retrieves RSS/Atom feeds and normalises their items.
type Fetcher struct {
	httpClient     *http.Client
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Fetcher {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:      cfg.UserAgent,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "feed"),
	}
}

// Fetch implements the rss source type.
func (f *Fetcher) Fetch(ctx context.Context, src *domain.Source) (*domain.FetchResult, error) {
	parsed, err := f.FetchFeed(ctx, src.URL)
	if err != nil {
		return nil, err
	}
	return &domain.FetchResult{Items: Normalize(parsed)}, nil
}

// FetchFeed downloads and parses a feed, retrying transient failures with
// linear backoff. Client errors and unparseable bodies fail immediately.
func (f *Fetcher) FetchFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	var parsed *gofeed.Feed
	var err error

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		parsed, err = f.doRequest(ctx, url)
		if err == nil {
			return parsed, nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return nil, perm.err
		}

		if attempt == f.maxAttempts {
			break
		}

		backoff := f.calculateBackoff(attempt)
		f.logger.Warn("feed request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("fetch feed after %d attempts: %w", f.maxAttempts, err)
}

func (f *Fetcher) doRequest(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status: %d", resp.StatusCode)
		if !retryableStatus(resp.StatusCode) {
			return nil, &permanentError{err: err}
		}
		return nil, err
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, &permanentError{err: fmt.Errorf("parse feed: %w", err)}
	}

	return parsed, nil
}

func (f *Fetcher) calculateBackoff(attempt int) time.Duration {
	backoff := f.initialBackoff * time.Duration(attempt)
	if f.maxBackoff > 0 && backoff > f.maxBackoff {
		backoff = f.maxBackoff
	}
	return backoff
}

// permanentError marks a failure that another attempt cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

func retryableStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
}
