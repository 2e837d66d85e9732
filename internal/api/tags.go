package api

import (
	"net/http"

	"newsdesk/internal/domain"
)

type setTagsRequest struct {
	TagIDs []int64 `json:"tag_ids" validate:"dive,gt=0"`
}

type addTagRequest struct {
	TagID int64 `json:"tag_id" validate:"required,gt=0"`
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeTags(w, tags)
}

func (h *Handler) listArticleTags(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	tags, err := h.tags.ListByArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeTags(w, tags)
}

func (h *Handler) setArticleTags(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req setTagsRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	tags, err := h.tags.Set(r.Context(), id, req.TagIDs)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeTags(w, tags)
}

func (h *Handler) addArticleTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req addTagRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.tags.Add(r.Context(), id, req.TagID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// removeArticleTag takes the tag from the tag_id query parameter.
func (h *Handler) removeArticleTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	tagID, err := queryInt(r, "tag_id", 0)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if tagID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tag_id is required"})
		return
	}

	if err := h.tags.Remove(r.Context(), id, int64(tagID)); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeTags(w http.ResponseWriter, tags []domain.Tag) {
	if tags == nil {
		tags = []domain.Tag{}
	}
	writeJSON(w, http.StatusOK, tags)
}
