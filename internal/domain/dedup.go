package domain

import (
	"crypto/md5"
	"encoding/hex"
)

// ExternalID fingerprints an item's identifying string (permalink, guid or
// platform id). The result is 32 lowercase hex characters.
func ExternalID(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// YouTubeExternalID and SpotifyExternalID key track articles on the
// platform-native id so the same track is never ingested twice.
func YouTubeExternalID(videoID string) string {
	return "yt_" + videoID
}

func SpotifyExternalID(trackID string) string {
	return "spotify_" + trackID
}
