package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// batchSize is the maximum number of ids the videos endpoint accepts.
const batchSize = 50

// Client is a minimal YouTube Data API v3 client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelTitle string
	PublishedAt  *time.Time
	Thumbnail    string
	ViewCount    *int64
	LikeCount    *int64
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type channelsResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

// Videos looks up snippet and statistics for the given ids, batching
// requests as the API requires.
func (c *Client) Videos(ctx context.Context, ids []string) (map[string]Video, error) {
	result := make(map[string]Video, len(ids))

	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		q := url.Values{}
		q.Set("part", "snippet,statistics")
		q.Set("id", strings.Join(ids[start:end], ","))

		var resp videosResponse
		if err := c.get(ctx, "/videos", q, &resp); err != nil {
			return result, fmt.Errorf("get videos: %w", err)
		}

		for _, it := range resp.Items {
			v := Video{
				ID:           it.ID,
				Title:        it.Snippet.Title,
				Description:  it.Snippet.Description,
				ChannelTitle: it.Snippet.ChannelTitle,
				ViewCount:    parseCount(it.Statistics.ViewCount),
				LikeCount:    parseCount(it.Statistics.LikeCount),
			}
			if t, err := time.Parse(time.RFC3339, it.Snippet.PublishedAt); err == nil {
				v.PublishedAt = &t
			}
			for _, size := range []string{"maxres", "high", "medium", "default"} {
				if th, ok := it.Snippet.Thumbnails[size]; ok && th.URL != "" {
					v.Thumbnail = th.URL
					break
				}
			}
			result[it.ID] = v
		}
	}

	return result, nil
}

func (c *Client) Video(ctx context.Context, id string) (*Video, error) {
	videos, err := c.Videos(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	v, ok := videos[id]
	if !ok {
		return nil, fmt.Errorf("video %s not found", id)
	}
	return &v, nil
}

// ChannelIDForHandle resolves an @handle to its UC... channel id.
func (c *Client) ChannelIDForHandle(ctx context.Context, handle string) (string, error) {
	q := url.Values{}
	q.Set("part", "id")
	q.Set("forHandle", strings.TrimPrefix(handle, "@"))

	var resp channelsResponse
	if err := c.get(ctx, "/channels", q, &resp); err != nil {
		return "", fmt.Errorf("get channel: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("no channel for handle %s", handle)
	}
	return resp.Items[0].ID, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseCount(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
