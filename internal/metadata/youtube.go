package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"newsdesk/internal/domain"
	"newsdesk/internal/source/youtube"
)

var youtubeIDRe = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`)

// VideoLookup is satisfied by youtube.Client.
type VideoLookup interface {
	Video(ctx context.Context, id string) (*youtube.Video, error)
}

// YouTubeStrategy reads video details from the Data API when available and
// from the public oEmbed endpoint otherwise.
type YouTubeStrategy struct {
	api        VideoLookup
	httpClient *http.Client
	oembedURL  string
}

func NewYouTubeStrategy(api VideoLookup, oembedURL string, timeout time.Duration) *YouTubeStrategy {
	if oembedURL == "" {
		oembedURL = "https://www.youtube.com/oembed"
	}
	return &YouTubeStrategy{
		api:        api,
		httpClient: &http.Client{Timeout: timeout},
		oembedURL:  oembedURL,
	}
}

func (s *YouTubeStrategy) Name() string { return "youtube" }

func VideoIDFromURL(rawURL string) (string, bool) {
	m := youtubeIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (s *YouTubeStrategy) Extract(ctx context.Context, rawURL string) (*domain.TrackMetadata, error) {
	id, ok := VideoIDFromURL(rawURL)
	if !ok {
		return nil, ErrNoMatch
	}

	meta := &domain.TrackMetadata{
		Platform:   "youtube",
		ExternalID: domain.YouTubeExternalID(id),
		Link:       "https://www.youtube.com/watch?v=" + id,
		Thumbnail:  fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", id),
	}

	var rawTitle, channel string
	if s.api != nil {
		v, err := s.api.Video(ctx, id)
		if err != nil {
			return nil, err
		}
		rawTitle, channel = v.Title, v.ChannelTitle
		meta.Description = v.Description
		meta.PublishedAt = v.PublishedAt
		meta.ViewCount = v.ViewCount
		meta.LikeCount = v.LikeCount
		if v.Thumbnail != "" {
			meta.Thumbnail = v.Thumbnail
		}
	} else {
		o, err := s.oembed(ctx, meta.Link)
		if err != nil {
			return nil, err
		}
		rawTitle, channel = o.Title, o.AuthorName
		if o.ThumbnailURL != "" {
			meta.Thumbnail = o.ThumbnailURL
		}
	}

	if artist, song, ok := SplitArtistTitle(rawTitle); ok {
		meta.Artist, meta.Title = artist, song
	} else {
		meta.Artist, meta.Title = ChannelArtist(channel), song
	}

	return meta, nil
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (s *YouTubeStrategy) oembed(ctx context.Context, videoURL string) (*oembedResponse, error) {
	q := url.Values{}
	q.Set("url", videoURL)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.oembedURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed: unexpected status: %d", resp.StatusCode)
	}

	var out oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode oembed: %w", err)
	}
	out.Title = strings.TrimSpace(out.Title)
	return &out, nil
}
