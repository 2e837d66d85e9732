package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"newsdesk/internal/domain"
)

var (
	spotifyTrackRe = regexp.MustCompile(`spotify\.com/(?:intl-[a-z]+/)?track/([a-zA-Z0-9]+)`)

	errUnauthorized = errors.New("unauthorized")
)

// SpotifyClient calls the Spotify Web API with a cached client-credentials
// token.
type SpotifyClient struct {
	httpClient *http.Client
	baseURL    string
	tokens     *TokenCache
}

func NewSpotifyClient(baseURL string, tokens *TokenCache, timeout time.Duration) *SpotifyClient {
	return &SpotifyClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
}

type SpotifyTrack struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Artists []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
		Images      []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
}

type SpotifyArtist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}

func (c *SpotifyClient) Track(ctx context.Context, id string) (*SpotifyTrack, error) {
	var t SpotifyTrack
	if err := c.get(ctx, "/tracks/"+id, &t); err != nil {
		return nil, fmt.Errorf("get track %s: %w", id, err)
	}
	return &t, nil
}

func (c *SpotifyClient) Artist(ctx context.Context, id string) (*SpotifyArtist, error) {
	var a SpotifyArtist
	if err := c.get(ctx, "/artists/"+id, &a); err != nil {
		return nil, fmt.Errorf("get artist %s: %w", id, err)
	}
	return &a, nil
}

// get retries once with a fresh token when the cached one is rejected.
func (c *SpotifyClient) get(ctx context.Context, path string, out interface{}) error {
	err := c.doGet(ctx, path, out)
	if errors.Is(err, errUnauthorized) {
		c.tokens.Invalidate()
		err = c.doGet(ctx, path, out)
	}
	return err
}

func (c *SpotifyClient) doGet(ctx context.Context, path string, out interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errUnauthorized
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type SpotifyStrategy struct {
	client *SpotifyClient
}

func NewSpotifyStrategy(client *SpotifyClient) *SpotifyStrategy {
	return &SpotifyStrategy{client: client}
}

func (s *SpotifyStrategy) Name() string { return "spotify" }

func TrackIDFromURL(rawURL string) (string, bool) {
	m := spotifyTrackRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (s *SpotifyStrategy) Extract(ctx context.Context, rawURL string) (*domain.TrackMetadata, error) {
	id, ok := TrackIDFromURL(rawURL)
	if !ok {
		return nil, ErrNoMatch
	}

	t, err := s.client.Track(ctx, id)
	if err != nil {
		return nil, err
	}

	meta := &domain.TrackMetadata{
		Platform:    "spotify",
		ExternalID:  domain.SpotifyExternalID(id),
		Link:        t.ExternalURLs.Spotify,
		Title:       t.Name,
		Album:       t.Album.Name,
		ReleaseDate: t.Album.ReleaseDate,
	}
	if meta.Link == "" {
		meta.Link = "https://open.spotify.com/track/" + id
	}
	if len(t.Album.Images) > 0 {
		meta.Thumbnail = t.Album.Images[0].URL
	}

	if len(t.Artists) > 0 {
		names := make([]string, len(t.Artists))
		for i, a := range t.Artists {
			names[i] = a.Name
		}
		meta.Artist = strings.Join(names, ", ")

		// Genres are a nice-to-have; the track is usable without them.
		if artist, err := s.client.Artist(ctx, t.Artists[0].ID); err == nil {
			meta.Genres = artist.Genres
		}
	}

	return meta, nil
}
