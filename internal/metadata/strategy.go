// Package metadata resolves track details from YouTube, Spotify or generic
// web pages. Strategies are tried in order; the first one that recognises
// the URL wins.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"newsdesk/internal/domain"
)

// ErrNoMatch is returned by a strategy that does not handle the URL.
var ErrNoMatch = errors.New("url not handled")

type Strategy interface {
	Name() string
	Extract(ctx context.Context, rawURL string) (*domain.TrackMetadata, error)
}

type Resolver struct {
	strategies []Strategy
	logger     *slog.Logger
}

func NewResolver(logger *slog.Logger, strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		logger:     logger.With("component", "metadata"),
	}
}

func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*domain.TrackMetadata, error) {
	for _, s := range r.strategies {
		meta, err := s.Extract(ctx, rawURL)
		if errors.Is(err, ErrNoMatch) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s metadata: %w", s.Name(), err)
		}
		r.logger.Debug("resolved metadata", "strategy", s.Name(), "url", rawURL, "artist", meta.Artist)
		return meta, nil
	}
	return nil, fmt.Errorf("%w: no metadata strategy for %s", domain.ErrValidation, rawURL)
}
