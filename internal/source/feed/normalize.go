package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"newsdesk/internal/domain"
)

const thumbnailURLFormat = "https://i.ytimg.com/vi/%s/hqdefault.jpg"

// Normalize converts parsed feed items. Items without a link, guid or title
// cannot be keyed and are dropped.
func Normalize(parsed *gofeed.Feed) []domain.FetchedItem {
	items := make([]domain.FetchedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		item, ok := NormalizeItem(it)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

func NormalizeItem(it *gofeed.Item) (domain.FetchedItem, bool) {
	key := firstNonEmpty(it.Link, it.GUID, it.Title)
	if key == "" {
		return domain.FetchedItem{}, false
	}

	item := domain.FetchedItem{
		ExternalID: domain.ExternalID(key),
		Title:      strings.TrimSpace(it.Title),
		Link:       firstNonEmpty(it.Link, it.GUID),
		Summary:    summary(it),
		Thumbnail:  thumbnail(it),
	}

	if it.Author != nil && it.Author.Name != "" {
		name := it.Author.Name
		item.Author = &name
	}

	if it.PublishedParsed != nil {
		t := it.PublishedParsed.UTC()
		item.PublishedAt = &t
	} else if it.UpdatedParsed != nil {
		t := it.UpdatedParsed.UTC()
		item.PublishedAt = &t
	}

	if stats, ok := mediaChild(it, "community", "statistics"); ok {
		if v, err := strconv.ParseInt(stats.Attrs["views"], 10, 64); err == nil {
			item.ViewCount = &v
		}
	}

	return item, true
}

// VideoID returns the yt:videoId extension of a YouTube feed entry.
func VideoID(it *gofeed.Item) string {
	if yt, ok := it.Extensions["yt"]; ok {
		if ids := yt["videoId"]; len(ids) > 0 {
			return ids[0].Value
		}
	}
	return ""
}

func ThumbnailForVideo(videoID string) string {
	return fmt.Sprintf(thumbnailURLFormat, videoID)
}

func summary(it *gofeed.Item) *string {
	if s := strings.TrimSpace(it.Description); s != "" {
		return &s
	}
	if s := strings.TrimSpace(it.Content); s != "" {
		return &s
	}
	if desc, ok := mediaChild(it, "description"); ok {
		if s := strings.TrimSpace(desc.Value); s != "" {
			return &s
		}
	}
	return nil
}

func thumbnail(it *gofeed.Item) *string {
	if id := VideoID(it); id != "" {
		u := ThumbnailForVideo(id)
		return &u
	}
	if media, ok := it.Extensions["media"]; ok {
		if thumbs := media["thumbnail"]; len(thumbs) > 0 && thumbs[0].Attrs["url"] != "" {
			u := thumbs[0].Attrs["url"]
			return &u
		}
	}
	if t, ok := mediaChild(it, "thumbnail"); ok && t.Attrs["url"] != "" {
		u := t.Attrs["url"]
		return &u
	}
	if it.Image != nil && it.Image.URL != "" {
		u := it.Image.URL
		return &u
	}
	for _, enc := range it.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			u := enc.URL
			return &u
		}
	}
	return nil
}

type extension struct {
	Value string
	Attrs map[string]string
}

// mediaChild walks media:group/<path...> and returns the first match.
func mediaChild(it *gofeed.Item, path ...string) (extension, bool) {
	media, ok := it.Extensions["media"]
	if !ok {
		return extension{}, false
	}
	groups := media["group"]
	if len(groups) == 0 {
		return extension{}, false
	}
	node := groups[0]
	for _, name := range path {
		children := node.Children[name]
		if len(children) == 0 {
			return extension{}, false
		}
		node = children[0]
	}
	return extension{Value: node.Value, Attrs: node.Attrs}, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
