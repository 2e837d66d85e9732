package article

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"newsdesk/internal/domain"
	"newsdesk/internal/source/feed"
)

const articlePage = `<!DOCTYPE html>
<html><head>
<title>Band announces world tour</title>
<meta property="og:image" content="https://cdn.example.com/tour.jpg">
<meta property="og:site_name" content="Example Music">
</head><body>
<article>
<h1>Band announces world tour</h1>
<p>The band has announced a world tour starting next spring, with forty dates across
Europe, Asia and North America. Tickets go on sale on Friday.</p>
<p>The tour follows the release of their fourth album, which topped the charts in
several countries and was praised for its bold production and lyrical depth.</p>
<p>Support acts will be announced later this month, the band said in a statement.</p>
<p>The singer told reporters that the new live show had been designed around the album's
themes of distance and return, with a rotating stage and a string section joining them
for the encore. Rehearsals begin in January at a studio outside the capital.</p>
</article>
</body></html>`

type stubWriter struct {
	contentType domain.ContentType
	localized   *domain.Localized
	err         error
	pages       []domain.ScrapedPage
}

func (w *stubWriter) DetectContentType(ctx context.Context, title, summary string) (domain.ContentType, error) {
	return w.contentType, w.err
}

func (w *stubWriter) SummarizeExternal(ctx context.Context, page domain.ScrapedPage) (*domain.Localized, error) {
	w.pages = append(w.pages, page)
	return w.localized, w.err
}

type ArticleSourceTestSuite struct {
	suite.Suite
	logger *slog.Logger
	srv    *httptest.Server
}

func (s *ArticleSourceTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articlePage))
	}))
}

func (s *ArticleSourceTestSuite) TearDownTest() {
	s.srv.Close()
}

func TestArticleSourceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleSourceTestSuite))
}

func (s *ArticleSourceTestSuite) TestScrape() {
	page, err := NewScraper(5*time.Second, "test").Scrape(context.Background(), s.srv.URL+"/tour")
	s.Require().NoError(err)
	s.Contains(page.Text, "world tour")
	s.Equal("https://cdn.example.com/tour.jpg", page.Image)
	s.Equal(s.srv.URL+"/tour", page.URL)
}

func (s *ArticleSourceTestSuite) TestScrape_InvalidURL() {
	_, err := NewScraper(time.Second, "").Scrape(context.Background(), "not a url")
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *ArticleSourceTestSuite) TestScrape_HTTPError() {
	_, err := NewScraper(time.Second, "").Scrape(context.Background(), s.srv.URL+"/missing")
	s.Error(err)
}

func (s *ArticleSourceTestSuite) TestPrepare_MarksItemReady() {
	writer := &stubWriter{
		contentType: domain.ContentTypeLive,
		localized:   &domain.Localized{TitleJa: "ワールドツアー発表", SummaryJa: "要約"},
	}
	feeds := feed.New(feed.Config{Timeout: time.Second, MaxAttempts: 1}, s.logger)
	f := NewFetcher(feeds, NewScraper(5*time.Second, ""), writer, s.logger)

	item := &domain.FetchedItem{ExternalID: "x", Title: "Band announces world tour", Link: s.srv.URL + "/tour"}
	s.Require().NoError(f.Prepare(context.Background(), item))

	s.True(item.Prepared)
	s.Equal("ワールドツアー発表", *item.TitleJa)
	s.Equal("要約", *item.SummaryJa)
	s.Equal(domain.ContentTypeLive, *item.ContentType)
	s.Equal("https://cdn.example.com/tour.jpg", *item.Thumbnail)
	s.Require().Len(writer.pages, 1)

	a := item.NewArticle(nil, time.Now())
	s.Equal(domain.StatusReady, a.Status)
}

func (s *ArticleSourceTestSuite) TestPrepare_WriterFailureLeavesItemUnprepared() {
	writer := &stubWriter{err: errors.New("llm down")}
	feeds := feed.New(feed.Config{Timeout: time.Second, MaxAttempts: 1}, s.logger)
	f := NewFetcher(feeds, NewScraper(5*time.Second, ""), writer, s.logger)

	item := &domain.FetchedItem{ExternalID: "x", Title: "t", Link: s.srv.URL + "/tour"}
	err := f.Prepare(context.Background(), item)

	s.ErrorContains(err, "llm down")
	s.False(item.Prepared)
	s.Nil(item.TitleJa)
}
