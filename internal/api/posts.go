package api

import (
	"context"
	"net/http"

	"newsdesk/internal/domain"
)

type updatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	h.postAction(w, r, h.posts.Get)
}

func (h *Handler) markPostReady(w http.ResponseWriter, r *http.Request) {
	h.postAction(w, r, h.posts.MarkReady)
}

func (h *Handler) publishPost(w http.ResponseWriter, r *http.Request) {
	h.postAction(w, r, h.posts.Publish)
}

func (h *Handler) cancelPost(w http.ResponseWriter, r *http.Request) {
	h.postAction(w, r, h.posts.Cancel)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req updatePostRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	post, err := h.posts.UpdateContent(r.Context(), id, req.Content)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) postAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) (*domain.Post, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	post, err := action(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}
