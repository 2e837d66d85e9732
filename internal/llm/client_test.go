package llm

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"

	"newsdesk/internal/domain"
	"newsdesk/testdata/utils"
)

type ClientTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// messagesServer answers every Messages API call with reply and records the
// last prompt it saw.
func (s *ClientTestSuite) messagesServer(status int, reply string, lastPrompt *string, calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		s.Equal("/v1/messages", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		s.Require().NoError(json.Unmarshal(body, &req))
		if lastPrompt != nil && len(req.Messages) > 0 && len(req.Messages[0].Content) > 0 {
			*lastPrompt = req.Messages[0].Content[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
			return
		}
		resp, _ := json.Marshal(map[string]interface{}{
			"id":            "msg_1",
			"type":          "message",
			"role":          "assistant",
			"model":         req.Model,
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"content":       []map[string]string{{"type": "text", "text": reply}},
			"usage":         map[string]int{"input_tokens": 10, "output_tokens": 5},
		})
		_, _ = w.Write(resp)
	}))
}

func (s *ClientTestSuite) newClient(baseURL string) *Client {
	return New(Config{
		APIKey:           "test",
		BaseURL:          baseURL,
		Model:            "claude-test",
		MaxTokens:        1024,
		Timeout:          5 * time.Second,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	}, s.logger)
}

func (s *ClientTestSuite) TestTranslateTitle() {
	var prompt string
	srv := s.messagesServer(http.StatusOK, "「Little Simzが新作を発表」", &prompt, nil)
	defer srv.Close()

	out, err := s.newClient(srv.URL).TranslateTitle(context.Background(), "Little Simz announces new album")
	s.Require().NoError(err)
	s.Equal("Little Simzが新作を発表", out)
	s.Contains(prompt, "Little Simz announces new album")
}

func (s *ClientTestSuite) TestTranslateTitle_EmptySkipsCall() {
	var calls int32
	srv := s.messagesServer(http.StatusOK, "x", nil, &calls)
	defer srv.Close()

	out, err := s.newClient(srv.URL).TranslateTitle(context.Background(), "  ")
	s.NoError(err)
	s.Empty(out)
	s.Zero(atomic.LoadInt32(&calls))
}

func (s *ClientTestSuite) TestGenerateArticle_IncludesArtistAndRelated() {
	var prompt string
	srv := s.messagesServer(http.StatusOK, "本文", &prompt, nil)
	defer srv.Close()

	brief := domain.Brief{
		Title:   "Artist - Song",
		Summary: "New single",
		Artist:  &domain.Artist{Name: "Artist", Origin: utils.Ptr("London"), Genre: utils.Ptr("Grime")},
		Related: []string{"Artistの前作"},
	}

	out, err := s.newClient(srv.URL).GenerateArticle(context.Background(), brief)
	s.Require().NoError(err)
	s.Equal("本文", out)
	s.Contains(prompt, "出身: London")
	s.Contains(prompt, "ジャンル: Grime")
	s.Contains(prompt, "Artistの前作")
}

func (s *ClientTestSuite) TestGeneratePost_TrackStyleAndClamp() {
	var prompt string
	srv := s.messagesServer(http.StatusOK, strings.Repeat("あ", 200), &prompt, nil)
	defer srv.Close()

	out, err := s.newClient(srv.URL).GeneratePost(context.Background(), domain.Brief{
		Title: "Song",
		Track: &domain.TrackMetadata{Artist: "Artist", Title: "Song"},
	})
	s.Require().NoError(err)
	s.Len([]rune(out), maxPostRunes)
	s.Contains(prompt, "楽曲をおすすめする")
}

func (s *ClientTestSuite) TestDetectContentType() {
	srv := s.messagesServer(http.StatusOK, "Interview", nil, nil)
	defer srv.Close()

	ct, err := s.newClient(srv.URL).DetectContentType(context.Background(), "Meet the artist", "")
	s.Require().NoError(err)
	s.Equal(domain.ContentTypeInterview, ct)
}

func (s *ClientTestSuite) TestSummarizeExternal() {
	srv := s.messagesServer(http.StatusOK,
		"```json\n{\"title_ja\": \"見出し\", \"summary_ja\": \"要約です\"}\n```", nil, nil)
	defer srv.Close()

	out, err := s.newClient(srv.URL).SummarizeExternal(context.Background(), domain.ScrapedPage{
		Title: "Headline",
		Text:  "Body text",
	})
	s.Require().NoError(err)
	s.Equal("見出し", out.TitleJa)
	s.Equal("要約です", out.SummaryJa)
}

func (s *ClientTestSuite) TestSummarizeExternal_InvalidCompletion() {
	srv := s.messagesServer(http.StatusOK, "申し訳ありません", nil, nil)
	defer srv.Close()

	_, err := s.newClient(srv.URL).SummarizeExternal(context.Background(), domain.ScrapedPage{Title: "x"})
	s.ErrorContains(err, "no json object")
}

func (s *ClientTestSuite) TestCircuitBreakerOpensAfterFailures() {
	var calls int32
	srv := s.messagesServer(http.StatusInternalServerError, "", nil, &calls)
	defer srv.Close()

	client := s.newClient(srv.URL)
	for i := 0; i < 2; i++ {
		_, err := client.GenerateArticle(context.Background(), domain.Brief{Title: "x"})
		s.Error(err)
		s.NotErrorIs(err, ErrUnavailable)
	}

	_, err := client.GenerateArticle(context.Background(), domain.Brief{Title: "x"})
	s.ErrorIs(err, ErrUnavailable)
	s.Equal(int32(2), atomic.LoadInt32(&calls))
}

func (s *ClientTestSuite) TestClientErrorsDoNotTripBreaker() {
	var calls int32
	srv := s.messagesServer(http.StatusBadRequest, "", nil, &calls)
	defer srv.Close()

	client := s.newClient(srv.URL)
	for i := 0; i < 3; i++ {
		_, err := client.GenerateArticle(context.Background(), domain.Brief{Title: "x"})
		s.Error(err)
		s.NotErrorIs(err, ErrUnavailable)
	}
	s.Equal(int32(3), atomic.LoadInt32(&calls))
}

func TestParseContentType(t *testing.T) {
	cases := map[string]domain.ContentType{
		"mv":                 domain.ContentTypeMV,
		"カテゴリ: live":       domain.ContentTypeLive,
		"Feature.":           domain.ContentTypeFeature,
		"release":            domain.ContentTypeNews,
		"":                   domain.ContentTypeNews,
		"tune (おすすめ曲)":      domain.ContentTypeTune,
	}
	for in, want := range cases {
		if got := ParseContentType(in); got != want {
			t.Errorf("ParseContentType(%q) = %q, want %q", in, got, want)
		}
	}
}
