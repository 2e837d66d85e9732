package domain

import "time"

type SearchSource string

const (
	SearchSourceBrave         SearchSource = "brave"
	SearchSourceBraveNoResult SearchSource = "brave_no_result"
	SearchSourceSpotify       SearchSource = "spotify"
	SearchSourceNone          SearchSource = "none"
)

// Artist caches what was learned about an artist the first time it was seen.
type Artist struct {
	ID           int64        `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	NameJa       *string      `db:"name_ja" json:"name_ja"`
	Origin       *string      `db:"origin" json:"origin"`
	Genre        *string      `db:"genre" json:"genre"`
	Description  *string      `db:"description" json:"description"`
	SearchSource SearchSource `db:"search_source" json:"search_source"`
	Verified     bool         `db:"verified" json:"verified"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// ArtistProfile is the result of an external artist lookup.
type ArtistProfile struct {
	Origin      *string
	Genre       *string
	Description *string
}
