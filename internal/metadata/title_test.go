package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractArtistName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Fred again.. - Delilah (pull me out of this)", "Fred again.."},
		{"Bicep – Apricots (Official Video)", "Bicep"},
		{"Jamie xx | In Waves (Live)", "Jamie xx"},
		{`Caribou "Honey" review`, "Caribou"},
		{"Four Tet ft. Ellie Goulding - Baby", "Four Tet"},
		{"Skrillex x Fred again.. - Rumble", "Skrillex"},
		{"The industry is changing fast", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractArtistName(tt.title))
		})
	}
}

func TestSplitArtistTitle(t *testing.T) {
	artist, song, ok := SplitArtistTitle("Artist - Song (Official Music Video)")
	assert.True(t, ok)
	assert.Equal(t, "Artist", artist)
	assert.Equal(t, "Song", song)

	artist, song, ok = SplitArtistTitle("Artist - Song [Official Visualizer]")
	assert.True(t, ok)
	assert.Equal(t, "Artist", artist)
	assert.Equal(t, "Song", song)

	_, song, ok = SplitArtistTitle("Song (Audio)")
	assert.False(t, ok)
	assert.Equal(t, "Song", song)
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Artist - Song", CleanTitle("Artist - Song (Lyric Video)"))
	assert.Equal(t, "Artist - Song", CleanTitle("Artist - Song (Music Video)"))
	assert.Equal(t, "Artist - Song", CleanTitle("Artist - Song (Audio)"))
	assert.Equal(t, "Artist - Song (Remix)", CleanTitle("Artist - Song (Remix)"))
}

func TestChannelArtist(t *testing.T) {
	assert.Equal(t, "Artist", ChannelArtist("Artist - Topic"))
	assert.Equal(t, "Artist", ChannelArtist("ArtistVEVO"))
	assert.Equal(t, "Artist", ChannelArtist("Artist"))
}
