package article

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"newsdesk/internal/domain"
)

// maxTextLength bounds the page text handed to the writer.
const maxTextLength = 12000

// Scraper extracts the readable body of an external article.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
}

func NewScraper(timeout time.Duration, userAgent string) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*domain.ScrapedPage, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || pageURL.Scheme == "" || pageURL.Host == "" {
		return nil, fmt.Errorf("%w: invalid url %q", domain.ErrValidation, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	parsed, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return nil, fmt.Errorf("extract article: no readable content at %s", rawURL)
	}
	if len([]rune(text)) > maxTextLength {
		text = string([]rune(text)[:maxTextLength])
	}

	return &domain.ScrapedPage{
		URL:         rawURL,
		Title:       strings.TrimSpace(parsed.Title),
		Text:        text,
		Excerpt:     strings.TrimSpace(parsed.Excerpt),
		SiteName:    parsed.SiteName,
		Byline:      parsed.Byline,
		Image:       parsed.Image,
		PublishedAt: parsed.PublishedTime,
	}, nil
}
