package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsdesk/internal/domain"
)

const tagColumns = `t.id, t.name, t.slug, t.color, t.description, t.article_count, t.created_at`

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

func (s *TagStore) List(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags,
		`SELECT `+tagColumns+` FROM tags t ORDER BY t.article_count DESC, t.name`)
	return tags, err
}

func (s *TagStore) ListByArticle(ctx context.Context, articleID int64) ([]domain.Tag, error) {
	query := `
		SELECT ` + tagColumns + `
		FROM tags t
		INNER JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_id = $1
		ORDER BY t.name`

	var tags []domain.Tag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags, query, articleID)
	return tags, err
}

// LinkToArticle replaces the article's tag set.
func (s *TagStore) LinkToArticle(ctx context.Context, articleID int64, tagIDs []int64) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		"DELETE FROM article_tags WHERE article_id = $1",
		articleID,
	)
	if err != nil {
		return err
	}

	if len(tagIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO article_tags (article_id, tag_id) VALUES ")
	valueArgs := make([]interface{}, 0, len(tagIDs)+1)
	valueArgs = append(valueArgs, articleID)

	for i, tagID := range tagIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, tagID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = exec.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

func (s *TagStore) AddToArticle(ctx context.Context, articleID, tagID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		articleID, tagID,
	)
	return err
}

func (s *TagStore) RemoveFromArticle(ctx context.Context, articleID, tagID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM article_tags WHERE article_id = $1 AND tag_id = $2`,
		articleID, tagID,
	)
	return err
}

// RefreshCounts recomputes the denormalised article_count of the given tags.
func (s *TagStore) RefreshCounts(ctx context.Context, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE tags t SET article_count = (
			SELECT COUNT(*) FROM article_tags at WHERE at.tag_id = t.id
		)
		WHERE t.id = ANY($1)`,
		pq.Array(tagIDs),
	)
	return err
}

func (s *TagStore) Create(ctx context.Context, tag *domain.Tag) (int64, error) {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO tags (name, slug, color, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		tag.Name, tag.Slug, tag.Color, tag.Description,
	).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		return 0, err
	}
	return tag.ID, nil
}
