package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

type FetchLogStore struct {
	db *sqlx.DB
}

func NewFetchLogStore(db *sqlx.DB) *FetchLogStore {
	return &FetchLogStore{db: db}
}

func (s *FetchLogStore) Insert(ctx context.Context, log *domain.FetchLog) error {
	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO fetch_logs (source_id, status, articles_count, inserted_count, error_message, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		log.SourceID, log.Status, log.ArticlesCount, log.InsertedCount, log.ErrorMessage, log.ExecutedAt,
	).Scan(&log.ID)
}

func (s *FetchLogStore) ListBySource(ctx context.Context, sourceID int64, limit int) ([]domain.FetchLog, error) {
	var logs []domain.FetchLog
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &logs, `
		SELECT id, source_id, status, articles_count, inserted_count, error_message, executed_at
		FROM fetch_logs WHERE source_id = $1
		ORDER BY executed_at DESC LIMIT $2`,
		sourceID, limit,
	)
	return logs, err
}
