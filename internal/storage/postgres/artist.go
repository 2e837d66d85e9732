package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

const artistColumns = `id, name, name_ja, origin, genre, description, search_source, verified, created_at, updated_at`

type ArtistStore struct {
	db *sqlx.DB
}

func NewArtistStore(db *sqlx.DB) *ArtistStore {
	return &ArtistStore{db: db}
}

// FindByName is a case-insensitive exact match.
func (s *ArtistStore) FindByName(ctx context.Context, name string) (*domain.Artist, error) {
	var a domain.Artist
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &a,
		`SELECT `+artistColumns+` FROM artists WHERE name ILIKE $1 LIMIT 1`, escapeLike(name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artist %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert keys on the lower-cased name, so re-looking up an artist refreshes
// the cached row instead of duplicating it.
func (s *ArtistStore) Upsert(ctx context.Context, a *domain.Artist) (int64, error) {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO artists (name, name_ja, origin, genre, description, search_source, verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (LOWER(name)) DO UPDATE SET
			name_ja = COALESCE(EXCLUDED.name_ja, artists.name_ja),
			origin = COALESCE(EXCLUDED.origin, artists.origin),
			genre = COALESCE(EXCLUDED.genre, artists.genre),
			description = COALESCE(EXCLUDED.description, artists.description),
			search_source = EXCLUDED.search_source,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		a.Name, a.NameJa, a.Origin, a.Genre, a.Description, a.SearchSource, a.Verified,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}
