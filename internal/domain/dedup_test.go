package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExternalID_Deterministic(t *testing.T) {
	link := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	first := ExternalID(link)
	assert.Equal(t, first, ExternalID(link))
	assert.Len(t, first, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", first)
}

func TestExternalID_DistinctInputs(t *testing.T) {
	seen := make(map[string]string)
	links := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/a/",
		"http://example.com/a",
		"",
	}
	for _, l := range links {
		id := ExternalID(l)
		prev, dup := seen[id]
		assert.False(t, dup, "%q collides with %q", l, prev)
		seen[id] = l
	}
}

func TestExternalID_KnownValue(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ExternalID(""))
}

func TestFetchedItem_NewArticle(t *testing.T) {
	now := time.Now()
	sourceID := int64(3)
	summary := "desc"

	pending := FetchedItem{ExternalID: "e1", Title: "Artist - Song", Link: "https://x", Summary: &summary}
	a := pending.NewArticle(&sourceID, now)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, &sourceID, a.SourceID)
	assert.Equal(t, "Artist - Song", a.TitleOriginal)
	assert.Equal(t, now, a.FetchedAt)

	ja := "タイトル"
	prepared := FetchedItem{ExternalID: "e2", Title: "T", Link: "https://y", TitleJa: &ja, Prepared: true}
	b := prepared.NewArticle(nil, now)
	assert.Equal(t, StatusReady, b.Status)
	assert.Nil(t, b.SourceID)
	assert.Equal(t, &ja, b.TitleJa)
}

func TestComposeTweet(t *testing.T) {
	assert.Equal(t, "hello\n\nhttps://e.com/1", ComposeTweet("hello", "https://e.com/1"))
	assert.Equal(t, "hello", ComposeTweet("hello", ""))
}
