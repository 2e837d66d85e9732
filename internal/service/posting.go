package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/metrics"
)

// PostingService owns the post side of the lifecycle: approval, the
// one-shot publication gate, cancellation and edits.
type PostingService struct {
	posts     PostStore
	articles  ArticleStore
	txManager TransactionManager
	poster    SocialPoster
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewPostingService builds the service. publisher may be nil.
func NewPostingService(
	posts PostStore,
	articles ArticleStore,
	txManager TransactionManager,
	poster SocialPoster,
	publisher Publisher,
	logger *slog.Logger,
) *PostingService {
	return &PostingService{
		posts:     posts,
		articles:  articles,
		txManager: txManager,
		poster:    poster,
		publisher: publisher,
		logger:    logger.With("component", "posting"),
		now:       time.Now,
	}
}

func (s *PostingService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.Get(ctx, id)
}

func (s *PostingService) ListByArticle(ctx context.Context, articleID int64) ([]domain.Post, error) {
	return s.posts.ListByArticle(ctx, articleID)
}

// MarkReady approves a post. Approval is what makes the article public, so
// the article moves to published in the same transaction.
func (s *PostingService) MarkReady(ctx context.Context, postID int64) (*domain.Post, error) {
	p, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	var article *domain.Article
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		ok, err := s.posts.TransitionStatus(txCtx, p.ID, domain.Approvable(), domain.PostStatusReady)
		if err != nil {
			return fmt.Errorf("mark post ready: %w", err)
		}
		if !ok {
			return fmt.Errorf("post %d is %s: %w", p.ID, p.Status, domain.ErrInvalidTransition)
		}

		article, err = s.articles.Get(txCtx, p.ArticleID)
		if err != nil {
			return err
		}
		// A posted article stays posted when another post is approved.
		if article.Status == domain.StatusPosted {
			article = nil
			return nil
		}

		if err := domain.ActionPublish.Check(article.Status); err != nil {
			return fmt.Errorf("article %d: %w", article.ID, err)
		}
		ok, err = s.articles.CompareAndSetStatus(txCtx, article.ID, domain.ActionPublish.From(), domain.ActionPublish.Target())
		if err != nil {
			return fmt.Errorf("publish article %d: %w", article.ID, err)
		}
		if !ok {
			return fmt.Errorf("article %d changed concurrently: %w", article.ID, domain.ErrInvalidTransition)
		}
		article.Status = domain.ActionPublish.Target()
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.Status = domain.PostStatusReady
	if article != nil {
		metrics.StatusTransitions.WithLabelValues(string(domain.ActionPublish), "success").Inc()
		event := domain.NewLifecycleEvent(domain.EventPublished, article, s.now())
		event.PostID = &p.ID
		publishEvent(ctx, s.publisher, s.logger, event)
	}

	s.logger.Info("post marked ready", "post_id", p.ID, "article_id", p.ArticleID)
	return p, nil
}

// Publish sends the post to its platform at most once. The post is first
// claimed with a conditional update to posting; only the caller that wins
// the claim talks to the platform.
func (s *PostingService) Publish(ctx context.Context, postID int64) (*domain.Post, error) {
	p, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.PostStatusPosted {
		return nil, fmt.Errorf("post %d: %w", p.ID, domain.ErrAlreadyPosted)
	}

	claimed, err := s.posts.TransitionStatus(ctx, p.ID, domain.Claimable(), domain.PostStatusPosting)
	if err != nil {
		return nil, fmt.Errorf("claim post %d: %w", p.ID, err)
	}
	if !claimed {
		return nil, s.claimRejected(ctx, p)
	}

	logger := s.logger.With("post_id", p.ID, "article_id", p.ArticleID, "platform", p.Platform)

	article, err := s.articles.Get(ctx, p.ArticleID)
	if err != nil {
		return nil, s.failPost(ctx, logger, p, fmt.Errorf("load article: %w", err))
	}
	if p.Platform != domain.PlatformX {
		return nil, s.failPost(ctx, logger, p, fmt.Errorf("%w: platform %q is not supported", domain.ErrValidation, p.Platform))
	}

	externalID, err := s.poster.Post(ctx, domain.ComposeTweet(p.Content, article.Link))
	if err != nil {
		return nil, s.failPost(ctx, logger, p, fmt.Errorf("post to %s: %w", p.Platform, err))
	}
	metrics.PostAttempts.WithLabelValues(string(p.Platform), "success").Inc()

	postedAt := s.now()
	articlePosted := false
	err = s.txManager.WithTransaction(context.WithoutCancel(ctx), func(txCtx context.Context) error {
		if err := s.posts.MarkPosted(txCtx, p.ID, externalID, postedAt); err != nil {
			return fmt.Errorf("mark post posted: %w", err)
		}
		if !domain.ActionPost.Allows(article.Status) {
			return nil
		}
		ok, err := s.articles.CompareAndSetStatus(txCtx, article.ID, domain.ActionPost.From(), domain.ActionPost.Target())
		if err != nil {
			return fmt.Errorf("mark article posted: %w", err)
		}
		articlePosted = ok
		return nil
	})
	if err != nil {
		// The post is live; leaving it in posting keeps it from being sent again.
		logger.Error("post published but state not saved", "external_post_id", externalID, "error", err)
		return nil, err
	}

	p.Status = domain.PostStatusPosted
	p.ExternalPostID = &externalID
	p.PostedAt = &postedAt
	p.ErrorMessage = nil

	if articlePosted {
		article.Status = domain.ActionPost.Target()
		metrics.StatusTransitions.WithLabelValues(string(domain.ActionPost), "success").Inc()
	}
	event := domain.NewLifecycleEvent(domain.EventPosted, article, postedAt)
	event.PostID = &p.ID
	event.ExternalID = &externalID
	publishEvent(ctx, s.publisher, s.logger, event)

	logger.Info("post published", "external_post_id", externalID)
	return p, nil
}

// claimRejected explains why the claim matched no row.
func (s *PostingService) claimRejected(ctx context.Context, p *domain.Post) error {
	current, err := s.posts.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	switch current.Status {
	case domain.PostStatusPosted, domain.PostStatusPosting:
		return fmt.Errorf("post %d is %s: %w", p.ID, current.Status, domain.ErrAlreadyPosted)
	default:
		return fmt.Errorf("post %d is %s: %w", p.ID, current.Status, domain.ErrInvalidTransition)
	}
}

func (s *PostingService) failPost(ctx context.Context, logger *slog.Logger, p *domain.Post, cause error) error {
	metrics.PostAttempts.WithLabelValues(string(p.Platform), "error").Inc()
	if err := s.posts.MarkFailed(context.WithoutCancel(ctx), p.ID, cause.Error()); err != nil {
		logger.Error("failed to record post failure", "error", err)
	}
	logger.Error("post failed", "error", cause)
	return cause
}

// Cancel withdraws a post that has not been published.
func (s *PostingService) Cancel(ctx context.Context, postID int64) (*domain.Post, error) {
	p, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	ok, err := s.posts.TransitionStatus(ctx, p.ID, domain.Approvable(), domain.PostStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel post %d: %w", p.ID, err)
	}
	if !ok {
		return nil, fmt.Errorf("post %d is %s: %w", p.ID, p.Status, domain.ErrInvalidTransition)
	}

	p.Status = domain.PostStatusCancelled
	return p, nil
}

// UpdateContent replaces the text of an editable post.
func (s *PostingService) UpdateContent(ctx context.Context, postID int64, content string) (*domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	p, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !p.Status.Editable() {
		return nil, fmt.Errorf("post %d is %s: %w", p.ID, p.Status, domain.ErrInvalidTransition)
	}

	p.Content = content
	if err := s.posts.UpdateContent(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
