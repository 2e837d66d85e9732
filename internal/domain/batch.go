package domain

// GenerateOptions tunes the generate stage.
type GenerateOptions struct {
	// ForceRegenerate rewrites the article body even if one exists.
	ForceRegenerate bool `json:"force_regenerate"`
}

// SourceOutcome is the result of fetching one source within a batch. Err is
// set instead of Stats when the fetch failed.
type SourceOutcome struct {
	SourceID   int64
	SourceName string
	SourceType SourceType
	Stats      *FetchStats
	Err        error
}

// ItemResult is the per-item entry of a batch run.
type ItemResult struct {
	ID      int64  `json:"id"`
	Success bool   `json:"success,omitempty"`
	TweetID string `json:"tweet_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BatchReport summarises a batch run over articles or posts.
type BatchReport struct {
	Succeeded int
	Results   []ItemResult
}

func (r *BatchReport) Ok(id int64) {
	r.Succeeded++
	r.Results = append(r.Results, ItemResult{ID: id, Success: true})
}

func (r *BatchReport) Fail(id int64, err error) {
	r.Results = append(r.Results, ItemResult{ID: id, Error: err.Error()})
}
