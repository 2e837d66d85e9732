package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsdesk/internal/domain"
)

const articleColumns = `
	id, source_id, external_id, title_original, title_ja, summary_original, summary_ja,
	link, thumbnail_url, author, published_at, fetched_at, status, content_type,
	view_count, like_count, artist_id, editor_note, error_message, created_at, updated_at`

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &a,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindExisting maps already stored external ids to article ids. A nil
// sourceID searches across all sources.
func (s *ArticleStore) FindExisting(ctx context.Context, sourceID *int64, externalIDs []string) (map[string]int64, error) {
	result := make(map[string]int64)
	if len(externalIDs) == 0 {
		return result, nil
	}

	query := `SELECT external_id, id FROM articles WHERE external_id = ANY($1)`
	args := []interface{}{pq.Array(externalIDs)}
	if sourceID != nil {
		query += ` AND source_id = $2`
		args = append(args, *sourceID)
	}

	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var extID string
		var id int64
		if err := rows.Scan(&extID, &id); err != nil {
			return nil, err
		}
		result[extID] = id
	}

	return result, rows.Err()
}

func (s *ArticleStore) FindByLink(ctx context.Context, link string) (*domain.Article, error) {
	var a domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &a,
		`SELECT `+articleColumns+` FROM articles WHERE link = $1 ORDER BY id LIMIT 1`, link)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article with link %q: %w", link, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert stores a new article. A unique violation on the dedup key returns
// domain.ErrConflict so concurrent ingests of the same item stay harmless.
func (s *ArticleStore) Insert(ctx context.Context, a *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (
			source_id, external_id, title_original, title_ja, summary_original, summary_ja,
			link, thumbnail_url, author, published_at, fetched_at, status, content_type,
			view_count, like_count, artist_id, editor_note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT DO NOTHING
		RETURNING id, created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		a.SourceID,
		a.ExternalID,
		a.TitleOriginal,
		a.TitleJa,
		a.SummaryOriginal,
		a.SummaryJa,
		a.Link,
		a.ThumbnailURL,
		a.Author,
		a.PublishedAt,
		a.FetchedAt,
		a.Status,
		a.ContentType,
		a.ViewCount,
		a.LikeCount,
		a.ArtistID,
		a.EditorNote,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("article %s: %w", a.ExternalID, domain.ErrConflict)
	}
	if err != nil {
		return 0, err
	}

	return a.ID, nil
}

// RefreshVolatile updates the fields a source may legitimately change on
// re-fetch. Editorial and translated fields are never touched.
func (s *ArticleStore) RefreshVolatile(ctx context.Context, id int64, item *domain.FetchedItem) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE articles SET
			view_count = COALESCE($2, view_count),
			like_count = COALESCE($3, like_count),
			summary_original = COALESCE($4, summary_original),
			updated_at = NOW()
		WHERE id = $1`,
		id, item.ViewCount, item.LikeCount, item.Summary,
	)
	return err
}

// Update writes every mutable column of the article.
func (s *ArticleStore) Update(ctx context.Context, a *domain.Article) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE articles SET
			title_ja = $2,
			summary_ja = $3,
			summary_original = $4,
			thumbnail_url = $5,
			status = $6,
			content_type = $7,
			artist_id = $8,
			editor_note = $9,
			error_message = $10,
			updated_at = NOW()
		WHERE id = $1`,
		a.ID,
		a.TitleJa,
		a.SummaryJa,
		a.SummaryOriginal,
		a.ThumbnailURL,
		a.Status,
		a.ContentType,
		a.ArtistID,
		a.EditorNote,
		a.ErrorMessage,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, "article", a.ID)
}

func (s *ArticleStore) SetStatus(ctx context.Context, id int64, status domain.Status, errorMessage *string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET status = $2, error_message = $3, updated_at = NOW() WHERE id = $1`,
		id, status, errorMessage,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, "article", id)
}

// CompareAndSetStatus moves the article to `to` only if its current status is
// one of `from`. It reports whether the row was updated.
func (s *ArticleStore) CompareAndSetStatus(ctx context.Context, id int64, from []domain.Status, to domain.Status) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE articles SET status = $2, error_message = NULL, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)`,
		id, to, pq.Array(statusStrings(from)),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *ArticleStore) ListByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Article, error) {
	var articles []domain.Article
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles,
		`SELECT `+articleColumns+` FROM articles WHERE status = $1
		ORDER BY fetched_at DESC, id DESC LIMIT $2`,
		status, limit,
	)
	return articles, err
}

// List returns one page of articles and the total count matching the filter.
func (s *ArticleStore) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, int, error) {
	var where []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	statuses := f.Statuses
	if len(statuses) == 0 && f.Unpublished {
		statuses = domain.UnpublishedStatuses()
	}
	if len(statuses) > 0 {
		where = append(where, "status = ANY("+arg(pq.Array(statusStrings(statuses)))+")")
	}
	if f.ContentType != nil {
		where = append(where, "content_type = "+arg(*f.ContentType))
	}
	if f.SourceID != nil {
		where = append(where, "source_id = "+arg(*f.SourceID))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	exec := GetExecutor(ctx, s.db)

	var total int
	if err := sqlx.GetContext(ctx, exec, &total, `SELECT COUNT(*) FROM articles`+clause, args...); err != nil {
		return nil, 0, err
	}

	sort := f.Sort
	if !sort.Valid() {
		sort = domain.SortPublishedAt
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + articleColumns + ` FROM articles` + clause +
		` ORDER BY ` + string(sort) + ` DESC NULLS LAST, id DESC` +
		` LIMIT ` + arg(limit) + ` OFFSET ` + arg(f.Offset)

	var articles []domain.Article
	if err := sqlx.SelectContext(ctx, exec, &articles, query, args...); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// ListRelated finds translated articles whose title mentions the artist.
func (s *ArticleStore) ListRelated(ctx context.Context, artistName string, excludeID int64, limit int) ([]domain.Article, error) {
	var articles []domain.Article
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles,
		`SELECT `+articleColumns+` FROM articles
		WHERE id <> $1 AND summary_ja IS NOT NULL AND title_original ILIKE $2
		ORDER BY published_at DESC NULLS LAST LIMIT $3`,
		excludeID, "%"+escapeLike(artistName)+"%", limit,
	)
	return articles, err
}

// ListPublic returns what the public site shows, newest first.
func (s *ArticleStore) ListPublic(ctx context.Context, limit int) ([]domain.Article, error) {
	var articles []domain.Article
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles,
		`SELECT `+articleColumns+` FROM articles WHERE status = ANY($1)
		ORDER BY published_at DESC NULLS LAST, id DESC LIMIT $2`,
		pq.Array([]string{string(domain.StatusPublished), string(domain.StatusPosted)}), limit,
	)
	return articles, err
}

func (s *ArticleStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res, "article", id)
}

func expectAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

func statusStrings(in []domain.Status) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
