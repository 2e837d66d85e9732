package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsdesk/internal/domain"
)

const postColumns = `
	id, article_id, content, content_style, llm_model, llm_prompt_version, platform,
	external_post_id, scheduled_at, posted_at, status, error_message, created_at, updated_at`

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) Get(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostStore) Insert(ctx context.Context, p *domain.Post) (int64, error) {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO posts (article_id, content, content_style, llm_model, llm_prompt_version, platform, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		p.ArticleID, p.Content, p.ContentStyle, p.LLMModel, p.LLMPromptVersion, p.Platform, p.ScheduledAt, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// FindActive returns the newest non-cancelled post of an article on a
// platform.
func (s *PostStore) FindActive(ctx context.Context, articleID int64, platform domain.Platform) (*domain.Post, error) {
	var p domain.Post
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p,
		`SELECT `+postColumns+` FROM posts
		WHERE article_id = $1 AND platform = $2 AND status <> $3
		ORDER BY created_at DESC, id DESC LIMIT 1`,
		articleID, platform, domain.PostStatusCancelled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("active %s post for article %d: %w", platform, articleID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateContent rewrites the generated text while the post is still editable.
func (s *PostStore) UpdateContent(ctx context.Context, p *domain.Post) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE posts SET content = $2, content_style = $3, llm_model = $4, llm_prompt_version = $5,
			scheduled_at = $6, updated_at = NOW()
		WHERE id = $1 AND status = ANY($7)`,
		p.ID, p.Content, p.ContentStyle, p.LLMModel, p.LLMPromptVersion, p.ScheduledAt,
		pq.Array(postStatusStrings(editableStatuses())),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("post %d is not editable: %w", p.ID, domain.ErrInvalidTransition)
	}
	return nil
}

// TransitionStatus is a single conditional update: the row moves to `to`
// only when its current status is one of `from`. Concurrent callers race on
// the row lock and exactly one of them sees true.
func (s *PostStore) TransitionStatus(ctx context.Context, id int64, from []domain.PostStatus, to domain.PostStatus) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE posts SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)`,
		id, to, pq.Array(postStatusStrings(from)),
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

func (s *PostStore) MarkPosted(ctx context.Context, id int64, externalID string, postedAt time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE posts SET status = $2, external_post_id = $3, posted_at = $4, error_message = NULL, updated_at = NOW()
		WHERE id = $1`,
		id, domain.PostStatusPosted, externalID, postedAt,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, "post", id)
}

func (s *PostStore) MarkFailed(ctx context.Context, id int64, message string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE posts SET status = $2, error_message = $3, updated_at = NOW()
		WHERE id = $1`,
		id, domain.PostStatusFailed, message,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, "post", id)
}

func (s *PostStore) ListByStatus(ctx context.Context, status domain.PostStatus, limit int) ([]domain.Post, error) {
	var posts []domain.Post
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &posts,
		`SELECT `+postColumns+` FROM posts WHERE status = $1
		ORDER BY created_at ASC, id ASC LIMIT $2`,
		status, limit,
	)
	return posts, err
}

func (s *PostStore) ListByArticle(ctx context.Context, articleID int64) ([]domain.Post, error) {
	var posts []domain.Post
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &posts,
		`SELECT `+postColumns+` FROM posts WHERE article_id = $1 ORDER BY created_at DESC, id DESC`,
		articleID,
	)
	return posts, err
}

func editableStatuses() []domain.PostStatus {
	return []domain.PostStatus{domain.PostStatusDraft, domain.PostStatusReady, domain.PostStatusFailed}
}

func postStatusStrings(in []domain.PostStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
