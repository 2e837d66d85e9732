package api

import (
	"net/http"

	"newsdesk/internal/domain"
	"newsdesk/internal/service"
)

type manualRequest struct {
	URL          string `json:"url" validate:"required,url"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	Author       string `json:"author"`
}

type originalRequest struct {
	Title        string `json:"title" validate:"required"`
	Content      string `json:"content" validate:"required"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	ContentType  string `json:"content_type"`
}

type urlRequest struct {
	URL        string `json:"url" validate:"required,url"`
	EditorNote string `json:"editor_note"`
}

type trackResponse struct {
	Article *domain.Article `json:"article"`
	Post    *domain.Post    `json:"post"`
}

func (h *Handler) previewMetadata(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "url is required"})
		return
	}

	meta, err := h.catalog.Metadata(r.Context(), raw)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (h *Handler) createManual(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	article, err := h.catalog.CreateManual(r.Context(), service.ManualInput{
		URL:          req.URL,
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Author:       req.Author,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

func (h *Handler) createOriginal(w http.ResponseWriter, r *http.Request) {
	var req originalRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	article, err := h.catalog.CreateOriginal(r.Context(), service.OriginalInput{
		Title:        req.Title,
		Content:      req.Content,
		ThumbnailURL: req.ThumbnailURL,
		ContentType:  domain.ContentType(req.ContentType),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

func (h *Handler) createTrack(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	created, err := h.catalog.CreateTrack(r.Context(), service.TrackInput{URL: req.URL, EditorNote: req.EditorNote})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, trackResponse{Article: created.Article, Post: created.Post})
}

func (h *Handler) createScraped(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	article, err := h.catalog.CreateFromURL(r.Context(), service.ScrapeInput{URL: req.URL, EditorNote: req.EditorNote})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}
