package api

import (
	"net/http"

	"newsdesk/internal/domain"
)

type fetchStatsResponse struct {
	SourceID   int64  `json:"source_id"`
	SourceName string `json:"source_name"`
	SourceType string `json:"source_type"`
	Fetched    int    `json:"fetched"`
	Inserted   int    `json:"inserted"`
	Updated    int    `json:"updated"`
	Skipped    int    `json:"skipped"`
	Errors     int    `json:"errors"`
	DurationMS int64  `json:"duration_ms"`
}

func newFetchStatsResponse(s *domain.FetchStats) fetchStatsResponse {
	return fetchStatsResponse{
		SourceID:   s.SourceID,
		SourceName: s.SourceName,
		SourceType: string(s.SourceType),
		Fetched:    s.Fetched,
		Inserted:   s.Inserted,
		Updated:    s.Updated,
		Skipped:    s.Skipped,
		Errors:     s.Errors,
		DurationMS: s.Duration.Milliseconds(),
	}
}

type importRequest struct {
	ExternalIDs []string `json:"external_ids" validate:"required,min=1,dive,required"`
}

func (h *Handler) fetchSource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	stats, err := h.sources.FetchByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newFetchStatsResponse(stats))
}

func (h *Handler) previewSource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	preview, err := h.sources.Preview(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (h *Handler) importSource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req importRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	stats, err := h.sources.Import(r.Context(), id, req.ExternalIDs)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newFetchStatsResponse(stats))
}
