package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"newsdesk/internal/domain"
)

const (
	titleMaxTokens       = 256
	contentTypeMaxTokens = 16
	postMaxTokens        = 512
	summaryTextRunes     = 8000
)

var (
	wordRe    = regexp.MustCompile(`[a-z]+`)
	jsonObjRe = regexp.MustCompile(`(?s)\{.*\}`)
)

func (c *Client) TranslateTitle(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", nil
	}
	out, err := c.complete(ctx, "translate_title", systemPrompt, fmt.Sprintf(translateTitlePrompt, title), titleMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "「」\"' \n"), nil
}

func (c *Client) GenerateArticle(ctx context.Context, b domain.Brief) (string, error) {
	return c.complete(ctx, "generate_article", systemPrompt, fmt.Sprintf(articlePrompt, briefInput(b)), 0)
}

// GeneratePost writes the X post body. Track briefs get the short
// recommendation style; everything else the casual news style.
func (c *Client) GeneratePost(ctx context.Context, b domain.Brief) (string, error) {
	tmpl := casualPostPrompt
	if b.Track != nil {
		tmpl = trackPostPrompt
	}
	out, err := c.complete(ctx, "generate_post", systemPrompt, fmt.Sprintf(tmpl, maxPostRunes, briefInput(b)), postMaxTokens)
	if err != nil {
		return "", err
	}
	return truncateRunes(out, maxPostRunes), nil
}

// DetectContentType classifies an article. Unrecognised answers fall back
// to news.
func (c *Client) DetectContentType(ctx context.Context, title, summary string) (domain.ContentType, error) {
	out, err := c.complete(ctx, "detect_content_type", systemPrompt,
		fmt.Sprintf(contentTypePrompt, title, orNone(truncateRunes(summary, 1000))), contentTypeMaxTokens)
	if err != nil {
		return "", err
	}
	return ParseContentType(out), nil
}

// ParseContentType returns the first known category named in s.
func ParseContentType(s string) domain.ContentType {
	for _, w := range wordRe.FindAllString(strings.ToLower(s), -1) {
		if ct := domain.ContentType(w); ct.Valid() {
			return ct
		}
	}
	return domain.ContentTypeNews
}

type localizedResponse struct {
	TitleJa   string `json:"title_ja"`
	SummaryJa string `json:"summary_ja"`
}

func (c *Client) SummarizeExternal(ctx context.Context, page domain.ScrapedPage) (*domain.Localized, error) {
	text := page.Text
	if text == "" {
		text = page.Excerpt
	}
	prompt := fmt.Sprintf(summarizePrompt, page.Title, orNone(page.SiteName), truncateRunes(text, summaryTextRunes))

	out, err := c.complete(ctx, "summarize_external", systemPrompt, prompt, 0)
	if err != nil {
		return nil, err
	}

	raw := jsonObjRe.FindString(out)
	if raw == "" {
		return nil, fmt.Errorf("summarize_external: no json object in completion")
	}

	var resp localizedResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("summarize_external: decode completion: %w", err)
	}
	if resp.TitleJa == "" || resp.SummaryJa == "" {
		return nil, fmt.Errorf("summarize_external: incomplete completion")
	}

	return &domain.Localized{
		TitleJa:   strings.TrimSpace(resp.TitleJa),
		SummaryJa: strings.TrimSpace(resp.SummaryJa),
	}, nil
}
