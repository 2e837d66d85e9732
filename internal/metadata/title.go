package metadata

import (
	"regexp"
	"strings"
)

var (
	dashSepRe   = regexp.MustCompile(`^(.+?)\s+[-–—]\s+(.+)$`)
	pipeSepRe   = regexp.MustCompile(`^(.+?)\s*[|｜]\s*(.+)$`)
	quotedRe    = regexp.MustCompile(`^(.+?)\s*["'“‘「『]`)
	featuringRe = regexp.MustCompile(`(?i)\s+(ft\.?|feat\.?|featuring|x|&)\s+.*$`)
	decorRe     = regexp.MustCompile(`(?i)\s*[\(\[](official[^\)\]]*|music video|m/?v|visuali[sz]er|audio|lyrics?[^\)\]]*|live[^\)\]]*)[\)\]]`)
	topicRe     = regexp.MustCompile(`(?i)\s*(-\s*topic|vevo)$`)
)

// ExtractArtistName guesses the artist from a news or video title. It
// recognises "Artist - Song", "Artist | Song" and `Artist "Song"`, and drops
// featured artists. An empty string means no artist could be found.
func ExtractArtistName(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	var name string
	switch {
	case dashSepRe.MatchString(title):
		name = dashSepRe.FindStringSubmatch(title)[1]
	case pipeSepRe.MatchString(title):
		name = pipeSepRe.FindStringSubmatch(title)[1]
	case quotedRe.MatchString(title):
		name = quotedRe.FindStringSubmatch(title)[1]
	default:
		return ""
	}

	name = featuringRe.ReplaceAllString(strings.TrimSpace(name), "")
	name = strings.Trim(name, ` "'`)
	if len([]rune(name)) < 2 || len([]rune(name)) > 60 {
		return ""
	}
	return name
}

// CleanTitle strips "(Official Video)"-style decorations.
func CleanTitle(title string) string {
	return strings.TrimSpace(decorRe.ReplaceAllString(title, ""))
}

// SplitArtistTitle splits "Artist - Song (Official Video)" into its parts.
// ok is false when the title has no artist separator.
func SplitArtistTitle(title string) (artist, song string, ok bool) {
	clean := CleanTitle(title)
	m := dashSepRe.FindStringSubmatch(clean)
	if m == nil {
		return "", clean, false
	}
	return strings.TrimSpace(m[1]), strings.Trim(strings.TrimSpace(m[2]), `"'“”`), true
}

// ChannelArtist normalises a channel name such as "Artist - Topic" or
// "ArtistVEVO".
func ChannelArtist(channel string) string {
	return strings.TrimSpace(topicRe.ReplaceAllString(channel, ""))
}
