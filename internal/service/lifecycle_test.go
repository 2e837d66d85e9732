package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdesk/internal/domain"
	"newsdesk/internal/service/mocks"
	"newsdesk/testdata/utils"
)

type LifecycleServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles   *mocks.MockArticleStore
	posts      *mocks.MockPostStore
	tags       *mocks.MockTagStore
	txManager  *mocks.MockTransactionManager
	writer     *mocks.MockWriter
	artists    *mocks.MockArtistStore
	researcher *mocks.MockArtistResearcher
	publisher  *mocks.MockPublisher

	service *LifecycleService
}

func (s *LifecycleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.tags = mocks.NewMockTagStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.writer = mocks.NewMockWriter(s.ctrl)
	s.artists = mocks.NewMockArtistStore(s.ctrl)
	s.researcher = mocks.NewMockArtistResearcher(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewLifecycleService(
		s.articles,
		s.posts,
		s.tags,
		s.txManager,
		s.writer,
		NewArtistService(s.artists, s.researcher, logger),
		s.publisher,
		logger,
	)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	s.writer.EXPECT().Model().Return("claude-test").AnyTimes()
}

func (s *LifecycleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLifecycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleServiceTestSuite))
}

func pendingArticle() *domain.Article {
	return &domain.Article{
		ID:              1,
		ExternalID:      "ext-1",
		TitleOriginal:   "Bicep - Apricots (Official Video)",
		SummaryOriginal: utils.Ptr("New single from the Belfast duo."),
		Link:            "https://example.com/apricots",
		Status:          domain.StatusPending,
	}
}

func (s *LifecycleServiceTestSuite) TestTranslate_TitleAndBody() {
	ctx := context.Background()
	a := pendingArticle()

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), domain.ActionTranslate.From(), domain.StatusTranslating).Return(true, nil)
	s.writer.EXPECT().TranslateTitle(gomock.Any(), a.TitleOriginal).Return("ビセップ新曲", nil)
	s.writer.EXPECT().GenerateArticle(gomock.Any(), gomock.Any()).Return("本文", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.Article) error {
			s.Equal(domain.StatusTranslated, got.Status)
			s.Equal("ビセップ新曲", *got.TitleJa)
			s.Equal("本文", *got.SummaryJa)
			return nil
		},
	)

	got, err := s.service.Translate(ctx, 1)

	s.NoError(err)
	s.Equal(domain.StatusTranslated, got.Status)
}

func (s *LifecycleServiceTestSuite) TestTranslate_KeepsExistingBody() {
	ctx := context.Background()
	a := pendingArticle()
	a.SummaryJa = utils.Ptr("既存の本文")

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), gomock.Any(), domain.StatusTranslating).Return(true, nil)
	s.writer.EXPECT().TranslateTitle(gomock.Any(), gomock.Any()).Return("タイトル", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	got, err := s.service.Translate(ctx, 1)

	s.NoError(err)
	s.Equal("既存の本文", *got.SummaryJa)
}

func (s *LifecycleServiceTestSuite) TestTranslate_RejectsInvalidState() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusPosted

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)

	_, err := s.service.Translate(ctx, 1)

	s.ErrorIs(err, domain.ErrInvalidTransition)
	var te *domain.TransitionError
	s.Require().ErrorAs(err, &te)
	s.Equal(domain.StatusPosted, te.From)
}

func (s *LifecycleServiceTestSuite) TestTranslate_LosesClaimRace() {
	ctx := context.Background()

	s.articles.EXPECT().Get(ctx, int64(1)).Return(pendingArticle(), nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), gomock.Any(), domain.StatusTranslating).Return(false, nil)

	_, err := s.service.Translate(ctx, 1)

	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *LifecycleServiceTestSuite) TestTranslate_FailureParksArticleInError() {
	ctx := context.Background()

	s.articles.EXPECT().Get(ctx, int64(1)).Return(pendingArticle(), nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), gomock.Any(), domain.StatusTranslating).Return(true, nil)
	s.writer.EXPECT().TranslateTitle(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))
	s.writer.EXPECT().GenerateArticle(gomock.Any(), gomock.Any()).Return("本文", nil).AnyTimes()
	s.articles.EXPECT().SetStatus(gomock.Any(), int64(1), domain.StatusError, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ domain.Status, msg *string) error {
			s.Require().NotNil(msg)
			s.Contains(*msg, "rate limited")
			return nil
		},
	)

	_, err := s.service.Translate(ctx, 1)

	s.Error(err)
	s.Contains(err.Error(), "rate limited")
}

func (s *LifecycleServiceTestSuite) TestGenerate_RequiresTranslatedTitle() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusTranslated

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)

	_, err := s.service.Generate(ctx, 1, domain.GenerateOptions{})

	s.ErrorIs(err, domain.ErrValidation)
}

func (s *LifecycleServiceTestSuite) TestGenerate_CreatesDraftPost() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusTranslated
	a.TitleJa = utils.Ptr("ビセップ新曲")

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), domain.ActionGenerate.From(), domain.StatusGenerating).Return(true, nil)
	s.writer.EXPECT().DetectContentType(ctx, a.TitleOriginal, "New single from the Belfast duo.").Return(domain.ContentTypeMV, nil)
	s.writer.EXPECT().GenerateArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b domain.Brief) (string, error) {
			s.Equal("ビセップ新曲", b.TitleJa)
			s.Equal(domain.ContentTypeMV, b.ContentType)
			return "本文", nil
		},
	)
	s.writer.EXPECT().GeneratePost(ctx, gomock.Any()).Return("新曲きた", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.Article) error {
			s.Equal(domain.StatusReady, got.Status)
			s.Equal(domain.ContentTypeMV, *got.ContentType)
			return nil
		},
	)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(nil, domain.ErrNotFound)
	s.posts.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Post) (int64, error) {
			s.Equal("新曲きた", p.Content)
			s.Equal(domain.PostStatusDraft, p.Status)
			s.Equal(domain.StyleCasual, p.ContentStyle)
			s.Equal("claude-test", *p.LLMModel)
			s.Equal(domain.PromptVersion, *p.LLMPromptVersion)
			return 5, nil
		},
	)

	got, err := s.service.Generate(ctx, 1, domain.GenerateOptions{})

	s.NoError(err)
	s.Equal(domain.StatusReady, got.Status)
}

func (s *LifecycleServiceTestSuite) TestGenerate_ReusesEditablePost() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusReady
	a.TitleJa = utils.Ptr("タイトル")
	a.SummaryJa = utils.Ptr("本文")
	a.ContentType = utils.Ptr(domain.ContentTypeMV)
	existing := &domain.Post{ID: 5, ArticleID: 1, Content: "old", Status: domain.PostStatusFailed}

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), gomock.Any(), domain.StatusGenerating).Return(true, nil)
	s.writer.EXPECT().GenerateArticle(ctx, gomock.Any()).Return("書き直し", nil)
	s.writer.EXPECT().GeneratePost(ctx, gomock.Any()).Return("new", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(existing, nil)
	s.posts.EXPECT().UpdateContent(ctx, existing).Return(nil)

	got, err := s.service.Generate(ctx, 1, domain.GenerateOptions{ForceRegenerate: true})

	s.NoError(err)
	s.Equal("書き直し", *got.SummaryJa)
	s.Equal("new", existing.Content)
}

func (s *LifecycleServiceTestSuite) TestGenerate_PostedPostGetsFreshDraft() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusReady
	a.TitleJa = utils.Ptr("タイトル")
	a.SummaryJa = utils.Ptr("本文")
	a.ContentType = utils.Ptr(domain.ContentTypeLive)
	posted := &domain.Post{ID: 5, ArticleID: 1, Content: "old", Status: domain.PostStatusPosted}

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), gomock.Any(), domain.StatusGenerating).Return(true, nil)
	s.writer.EXPECT().GeneratePost(ctx, gomock.Any()).Return("new", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(posted, nil)
	s.posts.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Post) (int64, error) {
			s.Equal("new", p.Content)
			s.Equal(domain.PostStatusDraft, p.Status)
			return 6, nil
		},
	)

	_, err := s.service.Generate(ctx, 1, domain.GenerateOptions{})

	s.NoError(err)
	s.Equal("old", posted.Content)
	s.Equal(domain.PostStatusPosted, posted.Status)
}

func (s *LifecycleServiceTestSuite) TestGenerate_LeavesPostingPostAlone() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusReady
	a.TitleJa = utils.Ptr("タイトル")
	a.SummaryJa = utils.Ptr("本文")
	a.ContentType = utils.Ptr(domain.ContentTypeLive)

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), gomock.Any(), domain.StatusGenerating).Return(true, nil)
	s.writer.EXPECT().GeneratePost(ctx, gomock.Any()).Return("new", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(&domain.Post{ID: 5, Status: domain.PostStatusPosting}, nil)
	s.posts.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	s.posts.EXPECT().UpdateContent(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Generate(ctx, 1, domain.GenerateOptions{})

	s.NoError(err)
}

func (s *LifecycleServiceTestSuite) TestProcess_FromPending() {
	ctx := context.Background()
	a := pendingArticle()

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), domain.ActionProcess.From(), domain.StatusTranslating).Return(true, nil)

	s.artists.EXPECT().FindByName(ctx, "Bicep").Return(nil, domain.ErrNotFound)
	s.researcher.EXPECT().Research(ctx, "Bicep").Return(&domain.ArtistProfile{Origin: utils.Ptr("Belfast")}, nil)
	s.artists.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, artist *domain.Artist) (int64, error) {
			artist.ID = 42
			s.Equal(domain.SearchSourceBrave, artist.SearchSource)
			return 42, nil
		},
	)
	s.articles.EXPECT().ListRelated(ctx, "Bicep", int64(1), relatedLimit).Return([]domain.Article{
		{ID: 2, TitleOriginal: "Bicep - Glue", TitleJa: utils.Ptr("ビセップ「Glue」")},
	}, nil)

	s.writer.EXPECT().TranslateTitle(gomock.Any(), a.TitleOriginal).Return("タイトル", nil)
	s.writer.EXPECT().DetectContentType(gomock.Any(), a.TitleOriginal, gomock.Any()).Return(domain.ContentTypeMV, nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.Article) error {
			s.Equal(domain.StatusGenerating, got.Status)
			return nil
		},
	)
	s.writer.EXPECT().GenerateArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b domain.Brief) (string, error) {
			s.Require().NotNil(b.Artist)
			s.Equal("Belfast", *b.Artist.Origin)
			s.Equal([]string{"ビセップ「Glue」"}, b.Related)
			s.Equal("タイトル", b.TitleJa)
			return "本文", nil
		},
	)
	s.writer.EXPECT().GeneratePost(ctx, gomock.Any()).Return("post", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.Article) error {
			s.Equal(domain.StatusReady, got.Status)
			s.Equal(int64(42), *got.ArtistID)
			return nil
		},
	)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(nil, domain.ErrNotFound)
	s.posts.EXPECT().Insert(ctx, gomock.Any()).Return(int64(9), nil)

	got, err := s.service.Process(ctx, 1, domain.GenerateOptions{})

	s.NoError(err)
	s.Equal(domain.StatusReady, got.Status)
}

func (s *LifecycleServiceTestSuite) TestProcess_ArtistFailureIsNotFatal() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusPublished
	a.TitleJa = utils.Ptr("タイトル")
	a.SummaryJa = utils.Ptr("本文")
	a.ContentType = utils.Ptr(domain.ContentTypeMV)

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), gomock.Any(), domain.StatusGenerating).Return(true, nil)
	s.artists.EXPECT().FindByName(ctx, "Bicep").Return(nil, errors.New("db down"))
	s.writer.EXPECT().GeneratePost(ctx, gomock.Any()).Return("post", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(nil, domain.ErrNotFound)
	s.posts.EXPECT().Insert(ctx, gomock.Any()).Return(int64(9), nil)

	got, err := s.service.Process(ctx, 1, domain.GenerateOptions{})

	s.NoError(err)
	s.Nil(got.ArtistID)
}

func (s *LifecycleServiceTestSuite) TestUnpublish_KeepsContentAndEmitsEvent() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusPosted
	a.TitleJa = utils.Ptr("タイトル")
	a.SummaryJa = utils.Ptr("本文")

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), domain.ActionUnpublish.From(), domain.StatusTranslated).Return(true, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.LifecycleEvent) error {
			s.Equal(domain.EventUnpublished, event.Type)
			s.Equal(int64(1), event.ArticleID)
			return errors.New("broker down")
		},
	)

	got, err := s.service.Unpublish(ctx, 1)

	s.NoError(err)
	s.Equal(domain.StatusTranslated, got.Status)
	s.Equal("本文", *got.SummaryJa)
	s.True(domain.ActionGenerate.Allows(got.Status))
}

func (s *LifecycleServiceTestSuite) TestSkip_RejectsError() {
	ctx := context.Background()
	a := pendingArticle()
	a.Status = domain.StatusError

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)

	_, err := s.service.Skip(ctx, 1)

	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *LifecycleServiceTestSuite) TestList_Validation() {
	ctx := context.Background()

	_, _, err := s.service.List(ctx, domain.ArticleFilter{Sort: "title"})
	s.ErrorIs(err, domain.ErrValidation)

	_, _, err = s.service.List(ctx, domain.ArticleFilter{Limit: -1})
	s.ErrorIs(err, domain.ErrValidation)

	s.articles.EXPECT().List(ctx, domain.ArticleFilter{Unpublished: true}).Return(nil, 0, nil)
	_, _, err = s.service.List(ctx, domain.ArticleFilter{Unpublished: true})
	s.NoError(err)
}

func (s *LifecycleServiceTestSuite) TestUpdate_AppliesPatch() {
	ctx := context.Background()
	a := pendingArticle()

	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().Update(ctx, a).Return(nil)

	got, err := s.service.Update(ctx, 1, domain.ArticlePatch{EditorNote: utils.Ptr("check the date")})

	s.NoError(err)
	s.Equal("check the date", *got.EditorNote)
	s.Equal(domain.StatusPending, got.Status)

	_, err = s.service.Update(ctx, 1, domain.ArticlePatch{ContentType: utils.Ptr(domain.ContentType("podcast"))})
	s.ErrorIs(err, domain.ErrValidation)
}

// publicArticle is an article that went out earlier and is being rewritten.
func publicArticle(status domain.Status) *domain.Article {
	a := pendingArticle()
	a.Status = status
	a.TitleJa = utils.Ptr("タイトル")
	a.SummaryJa = utils.Ptr("本文")
	a.ContentType = utils.Ptr(domain.ContentTypeMV)
	return a
}

// expectRegenerate covers the process path of an article that already has a
// translated title and a cached artist.
func (s *LifecycleServiceTestSuite) expectRegenerate(ctx context.Context, a *domain.Article) {
	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), domain.ActionProcess.From(), domain.StatusGenerating).Return(true, nil)
	s.artists.EXPECT().FindByName(ctx, "Bicep").Return(&domain.Artist{ID: 42, Name: "Bicep"}, nil)
	s.articles.EXPECT().ListRelated(ctx, "Bicep", int64(1), relatedLimit).Return(nil, nil)
	s.writer.EXPECT().GeneratePost(ctx, gomock.Any()).Return("new post", nil)
	s.articles.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.Article) error {
			s.Equal(domain.StatusReady, got.Status)
			return nil
		},
	)
}

// republish approves post 6 with a posting service over the same stores and
// returns the article status afterwards.
func (s *LifecycleServiceTestSuite) republish(ctx context.Context, draft *domain.Post) domain.Status {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	posting := NewPostingService(s.posts, s.articles, s.txManager, mocks.NewMockSocialPoster(s.ctrl), s.publisher, logger)

	article := publicArticle(domain.StatusReady)
	s.posts.EXPECT().Get(ctx, int64(6)).Return(draft, nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(6), domain.Approvable(), domain.PostStatusReady).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(article, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), domain.ActionPublish.From(), domain.StatusPublished).Return(true, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	got, err := posting.MarkReady(ctx, 6)
	s.Require().NoError(err)
	s.Equal(domain.PostStatusReady, got.Status)
	return article.Status
}

func (s *LifecycleServiceTestSuite) TestProcess_FromPublished() {
	ctx := context.Background()
	a := publicArticle(domain.StatusPublished)
	existing := &domain.Post{ID: 6, ArticleID: 1, Content: "old post", Platform: domain.PlatformX, Status: domain.PostStatusReady}

	s.expectRegenerate(ctx, a)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(existing, nil)
	s.posts.EXPECT().UpdateContent(ctx, existing).Return(nil)

	got, err := s.service.Process(ctx, 1, domain.GenerateOptions{})

	s.Require().NoError(err)
	s.Equal(domain.StatusReady, got.Status)
	s.Equal("new post", existing.Content)
	s.Equal(domain.StatusPublished, s.republish(ctx, existing))
}

func (s *LifecycleServiceTestSuite) TestProcess_FromPosted() {
	ctx := context.Background()
	a := publicArticle(domain.StatusPosted)
	posted := &domain.Post{ID: 5, ArticleID: 1, Content: "old post", Platform: domain.PlatformX, Status: domain.PostStatusPosted}

	var draft *domain.Post
	s.expectRegenerate(ctx, a)
	s.posts.EXPECT().FindActive(ctx, int64(1), domain.PlatformX).Return(posted, nil)
	s.posts.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Post) (int64, error) {
			p.ID = 6
			draft = p
			return 6, nil
		},
	)

	got, err := s.service.Process(ctx, 1, domain.GenerateOptions{})

	s.Require().NoError(err)
	s.Equal(domain.StatusReady, got.Status)
	s.Equal(domain.PostStatusPosted, posted.Status)
	s.Require().NotNil(draft)
	s.Equal("new post", draft.Content)
	s.Equal(domain.PostStatusDraft, draft.Status)
	s.Equal(domain.StatusPublished, s.republish(ctx, draft))
}

func (s *LifecycleServiceTestSuite) TestDelete_RefreshesTagCounts() {
	ctx := context.Background()

	gomock.InOrder(
		s.tags.EXPECT().ListByArticle(ctx, int64(1)).Return([]domain.Tag{{ID: 3}, {ID: 7}}, nil),
		s.articles.EXPECT().Delete(ctx, int64(1)).Return(nil),
		s.tags.EXPECT().RefreshCounts(ctx, []int64{3, 7}).Return(nil),
	)

	s.NoError(s.service.Delete(ctx, 1))
}

func (s *LifecycleServiceTestSuite) TestDelete_NotFoundSkipsRefresh() {
	ctx := context.Background()

	s.tags.EXPECT().ListByArticle(ctx, int64(1)).Return(nil, nil)
	s.articles.EXPECT().Delete(ctx, int64(1)).Return(domain.ErrNotFound)
	s.tags.EXPECT().RefreshCounts(gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(s.service.Delete(ctx, 1), domain.ErrNotFound)
}
