package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const feedURLFormat = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

var (
	channelPathRe = regexp.MustCompile(`/channel/(UC[a-zA-Z0-9_-]+)`)
	channelIDRe   = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
)

func FeedURL(channelID string) string {
	return fmt.Sprintf(feedURLFormat, channelID)
}

// IsFeedURL reports whether u already addresses a channel feed.
func IsFeedURL(u string) bool {
	return strings.Contains(u, "/feeds/videos.xml")
}

// ResolveFeedURL turns a channel page URL, @handle or bare channel id into
// the channel's Atom feed URL.
func (f *Fetcher) ResolveFeedURL(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if IsFeedURL(raw) {
		return raw, nil
	}
	if channelIDRe.MatchString(raw) {
		return FeedURL(raw), nil
	}
	if m := channelPathRe.FindStringSubmatch(raw); m != nil {
		return FeedURL(m[1]), nil
	}

	handle := handleFrom(raw)
	if handle != "" && f.api != nil {
		id, err := f.api.ChannelIDForHandle(ctx, handle)
		if err == nil {
			return FeedURL(id), nil
		}
		f.logger.Warn("handle lookup via api failed, falling back to page scrape",
			"handle", handle,
			"error", err,
		)
	}

	pageURL := raw
	if !strings.HasPrefix(pageURL, "http") {
		pageURL = "https://www.youtube.com/" + strings.TrimPrefix(pageURL, "/")
	}
	id, err := f.channelIDFromPage(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("resolve channel for %s: %w", raw, err)
	}
	return FeedURL(id), nil
}

func (f *Fetcher) channelIDFromPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := f.pageClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	if id, ok := doc.Find(`meta[itemprop="channelId"]`).Attr("content"); ok && id != "" {
		return id, nil
	}
	if href, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		if m := channelPathRe.FindStringSubmatch(href); m != nil {
			return m[1], nil
		}
	}
	if href, ok := doc.Find(`link[type="application/rss+xml"]`).Attr("href"); ok {
		if u, err := url.Parse(href); err == nil && u.Query().Get("channel_id") != "" {
			return u.Query().Get("channel_id"), nil
		}
	}

	return "", fmt.Errorf("channel id not found on page")
}

func handleFrom(raw string) string {
	if strings.HasPrefix(raw, "@") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	for _, seg := range strings.Split(u.Path, "/") {
		if strings.HasPrefix(seg, "@") {
			return seg
		}
	}
	return ""
}
