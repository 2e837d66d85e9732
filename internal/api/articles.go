package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"newsdesk/internal/domain"
)

type articleList struct {
	Articles []domain.Article `json:"articles"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

type articleDetail struct {
	*domain.Article
	Posts []domain.Post `json:"posts"`
	Tags  []domain.Tag  `json:"tags"`
}

// listArticles serves the admin listing. Without a status filter it shows
// everything that still needs attention; status=all lifts the filter.
func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArticleFilter(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	articles, total, err := h.articles.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	writeJSON(w, http.StatusOK, articleList{
		Articles: articles,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}

func parseArticleFilter(r *http.Request) (domain.ArticleFilter, error) {
	q := r.URL.Query()
	filter := domain.ArticleFilter{Sort: domain.ArticleSort(q.Get("sort"))}

	switch raw := q.Get("status"); raw {
	case "":
		filter.Unpublished = true
	case "all":
	default:
		for _, part := range strings.Split(raw, ",") {
			st, err := domain.ParseStatus(strings.TrimSpace(part))
			if err != nil {
				return filter, err
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}

	if raw := q.Get("content_type"); raw != "" {
		ct := domain.ContentType(raw)
		filter.ContentType = &ct
	}
	if raw := q.Get("source_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: source_id must be an integer", domain.ErrValidation)
		}
		filter.SourceID = &id
	}

	var err error
	if filter.Limit, err = queryInt(r, "limit", 50); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(r, "offset", 0); err != nil {
		return filter, err
	}
	return filter, nil
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ctx := r.Context()
	article, err := h.articles.Get(ctx, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	posts, err := h.posts.ListByArticle(ctx, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	tags, err := h.tags.ListByArticle(ctx, id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	if tags == nil {
		tags = []domain.Tag{}
	}

	writeJSON(w, http.StatusOK, articleDetail{Article: article, Posts: posts, Tags: tags})
}

func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var patch domain.ArticlePatch
	if err := h.decodeJSON(r, &patch, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	article, err := h.articles.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.articles.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) translateArticle(w http.ResponseWriter, r *http.Request) {
	h.articleAction(w, r, h.articles.Translate)
}

func (h *Handler) unpublishArticle(w http.ResponseWriter, r *http.Request) {
	h.articleAction(w, r, h.articles.Unpublish)
}

func (h *Handler) skipArticle(w http.ResponseWriter, r *http.Request) {
	h.articleAction(w, r, h.articles.Skip)
}

func (h *Handler) generateArticle(w http.ResponseWriter, r *http.Request) {
	h.generateAction(w, r, h.articles.Generate)
}

func (h *Handler) processArticle(w http.ResponseWriter, r *http.Request) {
	h.generateAction(w, r, h.articles.Process)
}

func (h *Handler) articleAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) (*domain.Article, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	article, err := action(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// generateRequest accepts the flag in snake case or camel case.
type generateRequest struct {
	ForceRegenerate      bool `json:"force_regenerate"`
	ForceRegenerateCamel bool `json:"forceRegenerate"`
}

// generateAction accepts an optional {"force_regenerate": true} body.
func (h *Handler) generateAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64, opts domain.GenerateOptions) (*domain.Article, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req generateRequest
	if err := h.decodeJSON(r, &req, true); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	opts := domain.GenerateOptions{ForceRegenerate: req.ForceRegenerate || req.ForceRegenerateCamel}

	article, err := action(r.Context(), id, opts)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *Handler) listArticlePosts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	posts, err := h.posts.ListByArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}
