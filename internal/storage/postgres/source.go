package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

const sourceColumns = `id, name, type, url, category, enabled, last_fetched_at, fetch_error, created_at, updated_at`

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

func (s *SourceStore) Get(ctx context.Context, id int64) (*domain.Source, error) {
	var src domain.Source
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &src,
		`SELECT `+sourceColumns+` FROM sources WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("source %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceStore) ListEnabled(ctx context.Context) ([]domain.Source, error) {
	var sources []domain.Source
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sources,
		`SELECT `+sourceColumns+` FROM sources WHERE enabled ORDER BY id`)
	return sources, err
}

func (s *SourceStore) Create(ctx context.Context, src *domain.Source) (int64, error) {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO sources (name, type, url, category, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		src.Name, src.Type, src.URL, src.Category, src.Enabled,
	).Scan(&src.ID, &src.CreatedAt, &src.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return src.ID, nil
}

func (s *SourceStore) UpdateURL(ctx context.Context, id int64, url string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET url = $2, updated_at = NOW() WHERE id = $1`, id, url)
	if err != nil {
		return err
	}
	return expectAffected(res, "source", id)
}

// MarkFetched stamps the outcome of the latest fetch. A nil fetchErr clears
// any previous error.
func (s *SourceStore) MarkFetched(ctx context.Context, id int64, fetchedAt time.Time, fetchErr *string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE sources SET last_fetched_at = $2, fetch_error = $3, updated_at = NOW()
		WHERE id = $1`,
		id, fetchedAt, fetchErr,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, "source", id)
}
