package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
	"newsdesk/testdata/utils"
)

func TestBuildFeed(t *testing.T) {
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	articles := []domain.Article{
		{ID: 1, TitleOriginal: "Original only", CreatedAt: created},
		{ID: 2, TitleOriginal: "x", TitleJa: utils.Ptr("訳題"), SummaryJa: utils.Ptr(strings.Repeat("あ", 400)), Author: utils.Ptr("Editor")},
	}

	rss, err := buildFeed(articles, FeedConfig{Title: "desk", Link: "https://news.example.com/", Description: "d"}, now)
	require.NoError(t, err)

	assert.Contains(t, rss, "<title>Original only</title>")
	assert.Contains(t, rss, "<title>訳題</title>")
	assert.Contains(t, rss, "https://news.example.com/articles/2")
	assert.NotContains(t, rss, "https://news.example.com//articles")
	assert.Contains(t, rss, strings.Repeat("あ", 300)+"…")
	assert.NotContains(t, rss, strings.Repeat("あ", 301))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abc", 2))
	assert.Equal(t, "日本…", truncate("日本語", 2))
}
