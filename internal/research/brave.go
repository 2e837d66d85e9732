// Package research looks up background information on artists via the
// Brave web search API.
package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"newsdesk/internal/domain"
)

const (
	resultCount    = 5
	scannedResults = 3
	maxDescription = 500
)

var (
	originRe = regexp.MustCompile(`(?i)\b(British|UK|London|English|Nigerian|Ghanaian|South African|Jamaican|American|Japanese|Korean|Canadian|Australian)\b`)
	genreRe  = regexp.MustCompile(`(?i)\b(Afrobeats|Amapiano|UK Rap|Grime|R&B|Hip Hop|Drill|Dancehall|Reggae|Afropop|House|Techno|Drum and Bass|Garage|Indie|Pop)\b`)
)

type BraveClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewBraveClient(baseURL, apiKey string, timeout time.Duration) *BraveClient {
	return &BraveClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type searchResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// Research searches the web for the artist. It returns nil without error
// when the search has no results.
func (c *BraveClient) Research(ctx context.Context, name string) (*domain.ArtistProfile, error) {
	q := url.Values{}
	q.Set("q", name+" musician artist music")
	q.Set("count", fmt.Sprint(resultCount))
	q.Set("text_decorations", "false")
	q.Set("search_lang", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/web/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave search: unexpected status: %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := out.Web.Results
	if len(results) == 0 {
		return nil, nil
	}
	if len(results) > scannedResults {
		results = results[:scannedResults]
	}

	profile := &domain.ArtistProfile{}
	descriptions := make([]string, 0, len(results))
	for _, r := range results {
		desc := strings.TrimSpace(r.Description)
		if desc == "" {
			continue
		}
		descriptions = append(descriptions, desc)

		if profile.Origin == nil {
			if m := originRe.FindStringSubmatch(desc); m != nil {
				profile.Origin = &m[1]
			}
		}
		if profile.Genre == nil {
			if m := genreRe.FindStringSubmatch(desc); m != nil {
				profile.Genre = &m[1]
			}
		}
	}

	if len(descriptions) > 0 {
		joined := truncate(strings.Join(descriptions, " "), maxDescription)
		profile.Description = &joined
	}

	return profile, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
