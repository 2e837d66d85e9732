package api

import (
	"context"
	"net/http"

	"newsdesk/internal/domain"
)

type sourceResult struct {
	Source   string `json:"source"`
	Type     string `json:"type,omitempty"`
	Fetched  *int   `json:"fetched,omitempty"`
	Inserted *int   `json:"inserted,omitempty"`
	Updated  *int   `json:"updated,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) cronFetch(w http.ResponseWriter, r *http.Request) {
	outcomes, err := h.batch.FetchAll(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	results := make([]sourceResult, 0, len(outcomes))
	for _, o := range outcomes {
		res := sourceResult{Source: o.SourceName, Type: string(o.SourceType)}
		if o.Err != nil {
			res.Error = o.Err.Error()
		} else if o.Stats != nil {
			res.Fetched = &o.Stats.Fetched
			res.Inserted = &o.Stats.Inserted
			res.Updated = &o.Stats.Updated
		}
		results = append(results, res)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"results": results,
	})
}

func (h *Handler) cronTranslate(w http.ResponseWriter, r *http.Request) {
	h.cronBatch(w, r, "translated", h.batch.TranslatePending)
}

func (h *Handler) cronGenerate(w http.ResponseWriter, r *http.Request) {
	h.cronBatch(w, r, "generated", h.batch.GeneratePending)
}

func (h *Handler) cronPost(w http.ResponseWriter, r *http.Request) {
	h.cronBatch(w, r, "posted", h.batch.PostReady)
}

func (h *Handler) cronBatch(
	w http.ResponseWriter,
	r *http.Request,
	countKey string,
	run func(ctx context.Context) (*domain.BatchReport, error),
) {
	report, err := run(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	results := report.Results
	if results == nil {
		results = []domain.ItemResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		countKey:  report.Succeeded,
		"results": results,
	})
}
