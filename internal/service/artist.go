package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"newsdesk/internal/domain"
	"newsdesk/internal/metadata"
)

// ArtistService resolves the artist mentioned in a title, preferring the
// local cache over a web search. Misses are cached too so the same name is
// never searched twice.
type ArtistService struct {
	artists    ArtistStore
	researcher ArtistResearcher
	logger     *slog.Logger
}

func NewArtistService(artists ArtistStore, researcher ArtistResearcher, logger *slog.Logger) *ArtistService {
	return &ArtistService{
		artists:    artists,
		researcher: researcher,
		logger:     logger.With("component", "artist"),
	}
}

// Resolve returns nil without error when no artist name can be read from
// the title.
func (s *ArtistService) Resolve(ctx context.Context, title string) (*domain.Artist, error) {
	name := metadata.ExtractArtistName(title)
	if name == "" {
		return nil, nil
	}
	return s.ResolveName(ctx, name)
}

func (s *ArtistService) ResolveName(ctx context.Context, name string) (*domain.Artist, error) {
	cached, err := s.artists.FindByName(ctx, name)
	if err == nil {
		s.logger.Debug("artist found in cache", "name", name, "artist_id", cached.ID)
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find artist: %w", err)
	}

	artist := &domain.Artist{
		Name:         name,
		SearchSource: domain.SearchSourceNone,
	}

	if s.researcher != nil {
		profile, err := s.researcher.Research(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("research artist %q: %w", name, err)
		}
		if profile == nil {
			artist.SearchSource = domain.SearchSourceBraveNoResult
		} else {
			artist.SearchSource = domain.SearchSourceBrave
			artist.Origin = profile.Origin
			artist.Genre = profile.Genre
			artist.Description = profile.Description
		}
	}

	if _, err := s.artists.Upsert(ctx, artist); err != nil {
		return nil, fmt.Errorf("save artist: %w", err)
	}

	s.logger.Info("artist cached", "name", name, "search_source", artist.SearchSource)
	return artist, nil
}
