package metadata

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"

	"newsdesk/internal/domain"
	"newsdesk/internal/source/youtube"
)

type stubVideos struct {
	video *youtube.Video
	err   error
}

func (s *stubVideos) Video(ctx context.Context, id string) (*youtube.Video, error) {
	return s.video, s.err
}

type recordingStrategy struct {
	name  string
	meta  *domain.TrackMetadata
	err   error
	calls int
}

func (r *recordingStrategy) Name() string { return r.name }

func (r *recordingStrategy) Extract(ctx context.Context, rawURL string) (*domain.TrackMetadata, error) {
	r.calls++
	return r.meta, r.err
}

type StrategyTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *StrategyTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestStrategyTestSuite(t *testing.T) {
	suite.Run(t, new(StrategyTestSuite))
}

func (s *StrategyTestSuite) TestResolver_FirstMatchWins() {
	skip := &recordingStrategy{name: "a", err: ErrNoMatch}
	hit := &recordingStrategy{name: "b", meta: &domain.TrackMetadata{Artist: "X"}}
	never := &recordingStrategy{name: "c", meta: &domain.TrackMetadata{Artist: "Y"}}

	meta, err := NewResolver(s.logger, skip, hit, never).Resolve(context.Background(), "https://x")
	s.Require().NoError(err)
	s.Equal("X", meta.Artist)
	s.Equal(1, skip.calls)
	s.Equal(1, hit.calls)
	s.Equal(0, never.calls)
}

func (s *StrategyTestSuite) TestResolver_NoStrategyMatches() {
	_, err := NewResolver(s.logger, &recordingStrategy{name: "a", err: ErrNoMatch}).
		Resolve(context.Background(), "ftp://x")
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *StrategyTestSuite) TestResolver_StrategyErrorStops() {
	failing := &recordingStrategy{name: "a", err: errors.New("api down")}
	next := &recordingStrategy{name: "b", meta: &domain.TrackMetadata{}}

	_, err := NewResolver(s.logger, failing, next).Resolve(context.Background(), "https://x")
	s.ErrorContains(err, "a metadata: api down")
	s.Equal(0, next.calls)
}

func (s *StrategyTestSuite) TestYouTubeStrategy_API() {
	views := int64(10)
	strategy := NewYouTubeStrategy(&stubVideos{video: &youtube.Video{
		ID:           "abcdefghijk",
		Title:        "Artist - Song (Official Video)",
		ChannelTitle: "ArtistVEVO",
		ViewCount:    &views,
	}}, "", time.Second)

	meta, err := strategy.Extract(context.Background(), "https://youtu.be/abcdefghijk")
	s.Require().NoError(err)
	s.Equal("Artist", meta.Artist)
	s.Equal("Song", meta.Title)
	s.Equal("yt_abcdefghijk", meta.ExternalID)
	s.Equal("https://www.youtube.com/watch?v=abcdefghijk", meta.Link)
	s.Equal("https://i.ytimg.com/vi/abcdefghijk/hqdefault.jpg", meta.Thumbnail)
	s.Equal(&views, meta.ViewCount)
}

func (s *StrategyTestSuite) TestYouTubeStrategy_OEmbedFallsBackToChannel() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("https://www.youtube.com/watch?v=abcdefghijk", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`{"title":"Song (Audio)","author_name":"Artist - Topic","thumbnail_url":"https://img/x.jpg"}`))
	}))
	defer srv.Close()

	meta, err := NewYouTubeStrategy(nil, srv.URL, time.Second).
		Extract(context.Background(), "https://www.youtube.com/watch?v=abcdefghijk&t=10")
	s.Require().NoError(err)
	s.Equal("Artist", meta.Artist)
	s.Equal("Song", meta.Title)
	s.Equal("https://img/x.jpg", meta.Thumbnail)
}

func (s *StrategyTestSuite) TestYouTubeStrategy_NoMatch() {
	_, err := NewYouTubeStrategy(nil, "", time.Second).Extract(context.Background(), "https://open.spotify.com/track/abc")
	s.ErrorIs(err, ErrNoMatch)
}

func (s *StrategyTestSuite) TestSpotifyStrategy() {
	tokenCalls := 0
	var authHeaders []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		switch {
		case strings.HasPrefix(r.URL.Path, "/tracks/"):
			s.Equal("/tracks/4uLU6hMCjMI75M1A2tKUQC", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"4uLU6hMCjMI75M1A2tKUQC","name":"Song",
				"external_urls":{"spotify":"https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC"},
				"artists":[{"id":"art1","name":"Artist"},{"id":"art2","name":"Guest"}],
				"album":{"name":"Album","release_date":"2025-09-01","images":[{"url":"https://img/album.jpg"}]}}`))
		case strings.HasPrefix(r.URL.Path, "/artists/"):
			_, _ = w.Write([]byte(`{"id":"art1","name":"Artist","genres":["electronic","house"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	tokens := NewTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		tokenCalls++
		return &oauth2.Token{AccessToken: "abc", Expiry: time.Now().Add(time.Hour)}, nil
	}, time.Minute)
	strategy := NewSpotifyStrategy(NewSpotifyClient(srv.URL, tokens, time.Second))

	meta, err := strategy.Extract(context.Background(), "https://open.spotify.com/intl-ja/track/4uLU6hMCjMI75M1A2tKUQC?si=xyz")
	s.Require().NoError(err)
	s.Equal("spotify_4uLU6hMCjMI75M1A2tKUQC", meta.ExternalID)
	s.Equal("Artist, Guest", meta.Artist)
	s.Equal("Song", meta.Title)
	s.Equal("Album", meta.Album)
	s.Equal("https://img/album.jpg", meta.Thumbnail)
	s.Equal([]string{"electronic", "house"}, meta.Genres)
	s.Equal(1, tokenCalls)
	s.Equal([]string{"Bearer abc", "Bearer abc"}, authHeaders)
}

func (s *StrategyTestSuite) TestSpotifyClient_RefreshesRejectedToken() {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer stale" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"a","name":"Artist","genres":[]}`))
	}))
	defer srv.Close()

	tokens := NewTokenCache(func(ctx context.Context) (*oauth2.Token, error) {
		calls++
		tok := "stale"
		if calls > 1 {
			tok = "fresh"
		}
		return &oauth2.Token{AccessToken: tok, Expiry: time.Now().Add(time.Hour)}, nil
	}, time.Minute)

	artist, err := NewSpotifyClient(srv.URL, tokens, time.Second).Artist(context.Background(), "a")
	s.Require().NoError(err)
	s.Equal("Artist", artist.Name)
	s.Equal(2, calls)
}

func (s *StrategyTestSuite) TestOGPStrategy() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/plain" {
			_, _ = w.Write([]byte(`<html><head><title>x</title></head></html>`))
			return
		}
		_, _ = w.Write([]byte(`<html><head>
			<meta property="og:title" content="Artist - Song (Official Audio)">
			<meta property="og:image" content="https://img/og.jpg">
			<meta property="og:description" content="New single">
		</head></html>`))
	}))
	defer srv.Close()

	strategy := NewOGPStrategy(time.Second, "")

	meta, err := strategy.Extract(context.Background(), srv.URL+"/track")
	s.Require().NoError(err)
	s.Equal("Artist", meta.Artist)
	s.Equal("Song", meta.Title)
	s.Equal("https://img/og.jpg", meta.Thumbnail)
	s.Equal(domain.ExternalID(srv.URL+"/track"), meta.ExternalID)

	_, err = strategy.Extract(context.Background(), srv.URL+"/plain")
	s.ErrorIs(err, ErrNoMatch)
}
