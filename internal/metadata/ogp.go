package metadata

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsdesk/internal/domain"
)

// OGPStrategy reads Open Graph tags from any web page. It is the fallback
// and only declines pages without an og:title.
type OGPStrategy struct {
	httpClient *http.Client
	userAgent  string
}

func NewOGPStrategy(timeout time.Duration, userAgent string) *OGPStrategy {
	return &OGPStrategy{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

func (s *OGPStrategy) Name() string { return "ogp" }

func (s *OGPStrategy) Extract(ctx context.Context, rawURL string) (*domain.TrackMetadata, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, ErrNoMatch
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	og := func(prop string) string {
		v, _ := doc.Find(`meta[property="og:` + prop + `"]`).Attr("content")
		return strings.TrimSpace(v)
	}

	title := og("title")
	if title == "" {
		return nil, ErrNoMatch
	}

	meta := &domain.TrackMetadata{
		Platform:    "web",
		ExternalID:  domain.ExternalID(rawURL),
		Link:        rawURL,
		Thumbnail:   og("image"),
		Description: og("description"),
	}
	if u := og("url"); u != "" {
		meta.Link = u
	}

	if artist, song, ok := SplitArtistTitle(title); ok {
		meta.Artist, meta.Title = artist, song
	} else {
		meta.Title = CleanTitle(title)
		if musician, ok := doc.Find(`meta[property="music:musician_description"]`).Attr("content"); ok {
			meta.Artist = strings.TrimSpace(musician)
		} else {
			meta.Artist = og("site_name")
		}
	}

	return meta, nil
}
