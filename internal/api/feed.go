package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"newsdesk/internal/domain"
)

const feedDescriptionRunes = 300

// feedXML serves the public RSS 2.0 feed of published articles.
func (h *Handler) feedXML(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.ListPublic(r.Context(), h.feed.Size)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	rss, err := buildFeed(articles, h.feed, time.Now())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rss))
}

func buildFeed(articles []domain.Article, cfg FeedConfig, now time.Time) (string, error) {
	feed := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: cfg.Link},
		Description: cfg.Description,
		Created:     now,
	}
	if cfg.Author != "" {
		feed.Author = &feeds.Author{Name: cfg.Author}
	}

	base := strings.TrimRight(cfg.Link, "/")
	feed.Items = make([]*feeds.Item, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		page := fmt.Sprintf("%s/articles/%d", base, a.ID)

		item := &feeds.Item{
			Title: a.DisplayTitle(),
			Link:  &feeds.Link{Href: page},
			Id:    page,
		}
		if a.HasSummaryJa() {
			item.Description = truncate(*a.SummaryJa, feedDescriptionRunes)
		}
		if a.Author != nil {
			item.Author = &feeds.Author{Name: *a.Author}
		}
		if a.PublishedAt != nil {
			item.Created = *a.PublishedAt
		} else {
			item.Created = a.CreatedAt
		}

		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("generate rss: %w", err)
	}
	return rss, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
