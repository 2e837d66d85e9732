package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"newsdesk/internal/domain"
	"newsdesk/internal/metrics"
)

const relatedLimit = 3

// LifecycleService drives articles through the status table: translate,
// generate, process, unpublish and skip, plus operator edits.
type LifecycleService struct {
	articles  ArticleStore
	posts     PostStore
	tags      TagStore
	txManager TransactionManager
	writer    Writer
	artists   *ArtistService
	publisher Publisher
	logger    *slog.Logger
}

// NewLifecycleService builds the service. artists and publisher may be nil.
func NewLifecycleService(
	articles ArticleStore,
	posts PostStore,
	tags TagStore,
	txManager TransactionManager,
	writer Writer,
	artists *ArtistService,
	publisher Publisher,
	logger *slog.Logger,
) *LifecycleService {
	return &LifecycleService{
		articles:  articles,
		posts:     posts,
		tags:      tags,
		txManager: txManager,
		writer:    writer,
		artists:   artists,
		publisher: publisher,
		logger:    logger.With("component", "lifecycle"),
	}
}

func (s *LifecycleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articles.Get(ctx, id)
}

func (s *LifecycleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	if filter.Sort != "" && !filter.Sort.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown sort %q", domain.ErrValidation, filter.Sort)
	}
	if filter.ContentType != nil && !filter.ContentType.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown content type %q", domain.ErrValidation, *filter.ContentType)
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, 0, fmt.Errorf("%w: negative limit or offset", domain.ErrValidation)
	}
	return s.articles.List(ctx, filter)
}

func (s *LifecycleService) ListPublic(ctx context.Context, limit int) ([]domain.Article, error) {
	return s.articles.ListPublic(ctx, limit)
}

// Update applies operator edits. Status is never changed here.
func (s *LifecycleService) Update(ctx context.Context, id int64, patch domain.ArticlePatch) (*domain.Article, error) {
	if patch.ContentType != nil && !patch.ContentType.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrValidation, *patch.ContentType)
	}

	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(a)

	if err := s.articles.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update article %d: %w", id, err)
	}
	return a, nil
}

// Delete removes the article with its posts and tag links, then recounts
// the tags it carried.
func (s *LifecycleService) Delete(ctx context.Context, id int64) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		tags, err := s.tags.ListByArticle(txCtx, id)
		if err != nil {
			return fmt.Errorf("list article tags: %w", err)
		}

		if err := s.articles.Delete(txCtx, id); err != nil {
			return err
		}

		ids := make([]int64, 0, len(tags))
		for _, t := range tags {
			ids = append(ids, t.ID)
		}
		if err := s.tags.RefreshCounts(txCtx, ids); err != nil {
			return fmt.Errorf("refresh tag counts: %w", err)
		}
		return nil
	})
}

// Translate translates the title and, when the article has no body yet,
// writes one in the same pass.
func (s *LifecycleService) Translate(ctx context.Context, id int64) (*domain.Article, error) {
	const action = domain.ActionTranslate

	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.claim(ctx, a, action, action.Holding()); err != nil {
		return nil, err
	}

	title, body, err := s.translateStage(ctx, a, domain.NewBrief(a))
	if err != nil {
		return nil, s.fail(ctx, a, action, err)
	}

	a.TitleJa = &title
	if body != "" {
		a.SummaryJa = &body
	}
	a.Status = action.Target()

	if err := s.articles.Update(ctx, a); err != nil {
		return nil, s.fail(ctx, a, action, fmt.Errorf("save translation: %w", err))
	}

	s.succeeded(a, action)
	return a, nil
}

// Generate writes the body (when missing or forced) and the X draft post,
// leaving the article ready for review.
func (s *LifecycleService) Generate(ctx context.Context, id int64, opts domain.GenerateOptions) (*domain.Article, error) {
	const action = domain.ActionGenerate

	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.HasTitleJa() {
		return nil, fmt.Errorf("%w: article %d has no translated title", domain.ErrValidation, id)
	}
	if err := s.claim(ctx, a, action, action.Holding()); err != nil {
		return nil, err
	}

	brief := domain.NewBrief(a)
	postText, err := s.generateStage(ctx, a, &brief, opts)
	if err != nil {
		return nil, s.fail(ctx, a, action, err)
	}

	if err := s.saveGenerated(ctx, a, action, postText); err != nil {
		return nil, s.fail(ctx, a, action, err)
	}

	s.succeeded(a, action)
	return a, nil
}

// Process is the one-shot path: artist enrichment, title translation when
// needed, then the generate stage. It also accepts already published
// articles so their copy can be regenerated.
func (s *LifecycleService) Process(ctx context.Context, id int64, opts domain.GenerateOptions) (*domain.Article, error) {
	const action = domain.ActionProcess

	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	needsTitle := !a.HasTitleJa()
	hold := action.Holding()
	if needsTitle {
		hold = domain.StatusTranslating
	}
	if err := s.claim(ctx, a, action, hold); err != nil {
		return nil, err
	}

	brief := domain.NewBrief(a)
	s.enrich(ctx, a, &brief)

	if needsTitle {
		if err := s.processTitle(ctx, a, &brief); err != nil {
			return nil, s.fail(ctx, a, action, err)
		}
	}

	postText, err := s.generateStage(ctx, a, &brief, opts)
	if err != nil {
		return nil, s.fail(ctx, a, action, err)
	}

	if err := s.saveGenerated(ctx, a, action, postText); err != nil {
		return nil, s.fail(ctx, a, action, err)
	}

	s.succeeded(a, action)
	return a, nil
}

// Unpublish hides the article from the public site. Content is kept.
func (s *LifecycleService) Unpublish(ctx context.Context, id int64) (*domain.Article, error) {
	a, err := s.direct(ctx, id, domain.ActionUnpublish)
	if err != nil {
		return nil, err
	}
	publishEvent(ctx, s.publisher, s.logger, domain.NewLifecycleEvent(domain.EventUnpublished, a, time.Now()))
	return a, nil
}

func (s *LifecycleService) Skip(ctx context.Context, id int64) (*domain.Article, error) {
	return s.direct(ctx, id, domain.ActionSkip)
}

// direct applies an action that has no side effects: one conditional
// update from the allowed states to the target.
func (s *LifecycleService) direct(ctx context.Context, id int64, action domain.Action) (*domain.Article, error) {
	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.claim(ctx, a, action, action.Target()); err != nil {
		return nil, err
	}
	s.succeeded(a, action)
	return a, nil
}

// claim moves the article into hold if the action allows its current state.
// The move is a conditional update, so a concurrent change makes it fail
// instead of being overwritten.
func (s *LifecycleService) claim(ctx context.Context, a *domain.Article, action domain.Action, hold domain.Status) error {
	if err := action.Check(a.Status); err != nil {
		metrics.StatusTransitions.WithLabelValues(string(action), "rejected").Inc()
		return fmt.Errorf("article %d: %w", a.ID, err)
	}

	ok, err := s.articles.CompareAndSetStatus(ctx, a.ID, action.From(), hold)
	if err != nil {
		return fmt.Errorf("claim article %d: %w", a.ID, err)
	}
	if !ok {
		metrics.StatusTransitions.WithLabelValues(string(action), "rejected").Inc()
		return fmt.Errorf("article %d changed concurrently: %w", a.ID, domain.ErrInvalidTransition)
	}

	a.Status = hold
	a.ErrorMessage = nil
	return nil
}

// fail parks the article in error with the cause as its message. Content
// fields are left as they were before the action started.
func (s *LifecycleService) fail(ctx context.Context, a *domain.Article, action domain.Action, cause error) error {
	msg := cause.Error()
	if err := s.articles.SetStatus(context.WithoutCancel(ctx), a.ID, domain.ActionFail.Target(), &msg); err != nil {
		s.logger.Error("failed to record article error", "article_id", a.ID, "error", err)
	}
	metrics.StatusTransitions.WithLabelValues(string(action), "error").Inc()
	s.logger.Error("article action failed", "article_id", a.ID, "action", action, "error", cause)
	return fmt.Errorf("%s article %d: %w", action, a.ID, cause)
}

func (s *LifecycleService) succeeded(a *domain.Article, action domain.Action) {
	metrics.StatusTransitions.WithLabelValues(string(action), "success").Inc()
	s.logger.Info("article action completed", "article_id", a.ID, "action", action, "status", a.Status)
}

// translateStage runs title translation and, when the body is missing, body
// generation concurrently.
func (s *LifecycleService) translateStage(ctx context.Context, a *domain.Article, brief domain.Brief) (title, body string, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := s.writer.TranslateTitle(gctx, a.TitleOriginal)
		if err != nil {
			return fmt.Errorf("translate title: %w", err)
		}
		if t == "" {
			return errors.New("translate title: empty translation")
		}
		title = t
		return nil
	})

	if !a.HasSummaryJa() {
		g.Go(func() error {
			b, err := s.writer.GenerateArticle(gctx, brief)
			if err != nil {
				return fmt.Errorf("generate article: %w", err)
			}
			body = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return title, body, nil
}

// processTitle translates the title and classifies the article
// concurrently, then persists both and moves the article on to generating.
func (s *LifecycleService) processTitle(ctx context.Context, a *domain.Article, brief *domain.Brief) error {
	var title string
	var contentType domain.ContentType

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.writer.TranslateTitle(gctx, a.TitleOriginal)
		if err != nil {
			return fmt.Errorf("translate title: %w", err)
		}
		if t == "" {
			return errors.New("translate title: empty translation")
		}
		title = t
		return nil
	})
	if a.NeedsContentType() {
		g.Go(func() error {
			ct, err := s.writer.DetectContentType(gctx, a.TitleOriginal, brief.Summary)
			if err != nil {
				return fmt.Errorf("detect content type: %w", err)
			}
			contentType = ct
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.TitleJa = &title
	brief.TitleJa = title
	if contentType != "" {
		a.ContentType = &contentType
		brief.ContentType = contentType
	}
	a.Status = domain.StatusGenerating

	if err := s.articles.Update(ctx, a); err != nil {
		return fmt.Errorf("save translation: %w", err)
	}
	return nil
}

// generateStage classifies the article if needed, writes the body when
// missing or forced, and returns the post text.
func (s *LifecycleService) generateStage(ctx context.Context, a *domain.Article, brief *domain.Brief, opts domain.GenerateOptions) (string, error) {
	if a.NeedsContentType() {
		ct, err := s.writer.DetectContentType(ctx, a.TitleOriginal, brief.Summary)
		if err != nil {
			return "", fmt.Errorf("detect content type: %w", err)
		}
		a.ContentType = &ct
		brief.ContentType = ct
	}

	if !a.HasSummaryJa() || opts.ForceRegenerate {
		body, err := s.writer.GenerateArticle(ctx, *brief)
		if err != nil {
			return "", fmt.Errorf("generate article: %w", err)
		}
		a.SummaryJa = &body
	}

	post, err := s.writer.GeneratePost(ctx, *brief)
	if err != nil {
		return "", fmt.Errorf("generate post: %w", err)
	}
	return post, nil
}

// saveGenerated stores the article as ready together with its draft post.
func (s *LifecycleService) saveGenerated(ctx context.Context, a *domain.Article, action domain.Action, postText string) error {
	a.Status = action.Target()

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.articles.Update(txCtx, a); err != nil {
			return fmt.Errorf("save article: %w", err)
		}
		if _, err := saveDraftPost(txCtx, s.posts, a.ID, postText, domain.StyleCasual, s.writer.Model()); err != nil {
			return fmt.Errorf("save draft post: %w", err)
		}
		return nil
	})
}

// enrich attaches the artist and related article titles to the brief.
// Failures only cost prompt context, so they are logged and ignored.
func (s *LifecycleService) enrich(ctx context.Context, a *domain.Article, brief *domain.Brief) {
	if s.artists == nil {
		return
	}

	artist, err := s.artists.Resolve(ctx, a.TitleOriginal)
	if err != nil {
		s.logger.Warn("artist enrichment failed", "article_id", a.ID, "error", err)
		return
	}
	if artist == nil {
		return
	}
	a.ArtistID = &artist.ID
	brief.Artist = artist

	related, err := s.articles.ListRelated(ctx, artist.Name, a.ID, relatedLimit)
	if err != nil {
		s.logger.Warn("related article lookup failed", "article_id", a.ID, "error", err)
		return
	}
	for i := range related {
		brief.Related = append(brief.Related, related[i].DisplayTitle())
	}
}

// saveDraftPost keeps one active X post per article: an editable one is
// rewritten in place, a missing one is created as a draft. A posted post is
// kept as history and a fresh draft is created beside it, so the article can
// be approved again. A post that is mid-posting is left alone.
func saveDraftPost(ctx context.Context, posts PostStore, articleID int64, content string, style domain.ContentStyle, model string) (*domain.Post, error) {
	version := domain.PromptVersion

	existing, err := posts.FindActive(ctx, articleID, domain.PlatformX)
	switch {
	case err == nil && existing.Status == domain.PostStatusPosting:
		return existing, nil

	case err == nil && existing.Status.Editable():
		existing.Content = content
		existing.ContentStyle = style
		existing.LLMModel = &model
		existing.LLMPromptVersion = &version
		if err := posts.UpdateContent(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case err == nil, errors.Is(err, domain.ErrNotFound):
		post := &domain.Post{
			ArticleID:        articleID,
			Content:          content,
			ContentStyle:     style,
			LLMModel:         &model,
			LLMPromptVersion: &version,
			Platform:         domain.PlatformX,
			Status:           domain.PostStatusDraft,
		}
		if _, err := posts.Insert(ctx, post); err != nil {
			return nil, err
		}
		return post, nil

	default:
		return nil, err
	}
}

// publishEvent is best effort: a broker outage never fails the action that
// produced the event.
func publishEvent(ctx context.Context, publisher Publisher, logger *slog.Logger, event domain.LifecycleEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish lifecycle event", "type", event.Type, "article_id", event.ArticleID, "error", err)
	}
}
