package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdesk/internal/domain"
	"newsdesk/internal/service/mocks"
)

type PostingServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	posts     *mocks.MockPostStore
	articles  *mocks.MockArticleStore
	txManager *mocks.MockTransactionManager
	poster    *mocks.MockSocialPoster
	publisher *mocks.MockPublisher

	service *PostingService
	now     time.Time
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.poster = mocks.NewMockSocialPoster(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewPostingService(s.posts, s.articles, s.txManager, s.poster, s.publisher, logger)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *PostingServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}

func readyPost() *domain.Post {
	return &domain.Post{ID: 5, ArticleID: 1, Content: "新曲きた", Platform: domain.PlatformX, Status: domain.PostStatusReady}
}

func publishedArticle() *domain.Article {
	return &domain.Article{ID: 1, TitleOriginal: "Bicep - Apricots", Link: "https://example.com/a", Status: domain.StatusPublished}
}

func (s *PostingServiceTestSuite) TestMarkReady_PublishesArticle() {
	ctx := context.Background()
	p := readyPost()
	p.Status = domain.PostStatusDraft
	a := publishedArticle()
	a.Status = domain.StatusReady

	s.posts.EXPECT().Get(ctx, int64(5)).Return(p, nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), domain.Approvable(), domain.PostStatusReady).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)
	s.articles.EXPECT().CompareAndSetStatus(ctx, int64(1), domain.ActionPublish.From(), domain.StatusPublished).Return(true, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.LifecycleEvent) error {
			s.Equal(domain.EventPublished, event.Type)
			s.Equal(domain.StatusPublished, event.Status)
			s.Equal(int64(5), *event.PostID)
			return nil
		},
	)

	got, err := s.service.MarkReady(ctx, 5)

	s.NoError(err)
	s.Equal(domain.PostStatusReady, got.Status)
	s.Equal(domain.StatusPublished, a.Status)
}

func (s *PostingServiceTestSuite) TestMarkReady_PostedArticleStaysPosted() {
	ctx := context.Background()
	a := publishedArticle()
	a.Status = domain.StatusPosted

	s.posts.EXPECT().Get(ctx, int64(5)).Return(readyPost(), nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), gomock.Any(), domain.PostStatusReady).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)

	_, err := s.service.MarkReady(ctx, 5)

	s.NoError(err)
	s.Equal(domain.StatusPosted, a.Status)
}

func (s *PostingServiceTestSuite) TestMarkReady_ArticleNotReady() {
	ctx := context.Background()
	a := publishedArticle()
	a.Status = domain.StatusPending

	s.posts.EXPECT().Get(ctx, int64(5)).Return(readyPost(), nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), gomock.Any(), domain.PostStatusReady).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(a, nil)

	_, err := s.service.MarkReady(ctx, 5)

	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *PostingServiceTestSuite) TestPublish_Succeeds() {
	ctx := context.Background()

	s.posts.EXPECT().Get(ctx, int64(5)).Return(readyPost(), nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), domain.Claimable(), domain.PostStatusPosting).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(publishedArticle(), nil)
	s.poster.EXPECT().Post(ctx, "新曲きた\n\nhttps://example.com/a").Return("1800000000000000001", nil)
	s.posts.EXPECT().MarkPosted(gomock.Any(), int64(5), "1800000000000000001", s.now).Return(nil)
	s.articles.EXPECT().CompareAndSetStatus(gomock.Any(), int64(1), domain.ActionPost.From(), domain.StatusPosted).Return(true, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.LifecycleEvent) error {
			s.Equal(domain.EventPosted, event.Type)
			s.Equal(domain.StatusPosted, event.Status)
			s.Equal("1800000000000000001", *event.ExternalID)
			return nil
		},
	)

	got, err := s.service.Publish(ctx, 5)

	s.NoError(err)
	s.Equal(domain.PostStatusPosted, got.Status)
	s.Equal("1800000000000000001", *got.ExternalPostID)
	s.Equal(s.now, *got.PostedAt)
}

func (s *PostingServiceTestSuite) TestPublish_AlreadyPosted() {
	ctx := context.Background()
	p := readyPost()
	p.Status = domain.PostStatusPosted

	s.posts.EXPECT().Get(ctx, int64(5)).Return(p, nil)

	_, err := s.service.Publish(ctx, 5)

	s.ErrorIs(err, domain.ErrAlreadyPosted)
}

func (s *PostingServiceTestSuite) TestPublish_CancelledPostIsRejected() {
	ctx := context.Background()
	p := readyPost()
	p.Status = domain.PostStatusCancelled

	s.posts.EXPECT().Get(ctx, int64(5)).Return(p, nil).Times(2)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), gomock.Any(), domain.PostStatusPosting).Return(false, nil)

	_, err := s.service.Publish(ctx, 5)

	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *PostingServiceTestSuite) TestPublish_DraftNeedsApproval() {
	ctx := context.Background()
	p := readyPost()
	p.Status = domain.PostStatusDraft

	s.posts.EXPECT().Get(ctx, int64(5)).Return(p, nil).Times(2)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), domain.Claimable(), domain.PostStatusPosting).Return(false, nil)
	s.poster.EXPECT().Post(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Publish(ctx, 5)

	s.ErrorIs(err, domain.ErrInvalidTransition)
	s.NotContains(domain.Claimable(), domain.PostStatusDraft)
}

func (s *PostingServiceTestSuite) TestPublish_ConcurrentCallsPostOnce() {
	ctx := context.Background()

	var status atomic.Value
	status.Store(domain.PostStatusReady)

	s.posts.EXPECT().Get(gomock.Any(), int64(5)).DoAndReturn(
		func(context.Context, int64) (*domain.Post, error) {
			p := readyPost()
			p.Status = status.Load().(domain.PostStatus)
			return p, nil
		},
	).AnyTimes()

	var claimed atomic.Bool
	s.posts.EXPECT().TransitionStatus(gomock.Any(), int64(5), gomock.Any(), domain.PostStatusPosting).DoAndReturn(
		func(context.Context, int64, []domain.PostStatus, domain.PostStatus) (bool, error) {
			if claimed.CompareAndSwap(false, true) {
				status.Store(domain.PostStatusPosting)
				return true, nil
			}
			return false, nil
		},
	).MinTimes(1).MaxTimes(2)
	s.articles.EXPECT().Get(gomock.Any(), int64(1)).Return(publishedArticle(), nil)
	s.poster.EXPECT().Post(gomock.Any(), gomock.Any()).Return("42", nil).Times(1)
	s.posts.EXPECT().MarkPosted(gomock.Any(), int64(5), "42", s.now).DoAndReturn(
		func(context.Context, int64, string, time.Time) error {
			status.Store(domain.PostStatusPosted)
			return nil
		},
	)
	s.articles.EXPECT().CompareAndSetStatus(gomock.Any(), int64(1), gomock.Any(), domain.StatusPosted).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.service.Publish(ctx, 5)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, domain.ErrAlreadyPosted)
	}
	s.Equal(1, succeeded)
}

func (s *PostingServiceTestSuite) TestPublish_PlatformErrorMarksFailed() {
	ctx := context.Background()

	s.posts.EXPECT().Get(ctx, int64(5)).Return(readyPost(), nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), gomock.Any(), domain.PostStatusPosting).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(publishedArticle(), nil)
	s.poster.EXPECT().Post(ctx, gomock.Any()).Return("", errors.New("duplicate content"))
	s.posts.EXPECT().MarkFailed(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, msg string) error {
			s.Contains(msg, "duplicate content")
			return nil
		},
	)

	_, err := s.service.Publish(ctx, 5)

	s.Error(err)
	s.Contains(err.Error(), "duplicate content")
}

func (s *PostingServiceTestSuite) TestPublish_UnsupportedPlatform() {
	ctx := context.Background()
	p := readyPost()
	p.Platform = domain.PlatformThreads

	s.posts.EXPECT().Get(ctx, int64(5)).Return(p, nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), gomock.Any(), domain.PostStatusPosting).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(publishedArticle(), nil)
	s.posts.EXPECT().MarkFailed(gomock.Any(), int64(5), gomock.Any()).Return(nil)

	_, err := s.service.Publish(ctx, 5)

	s.ErrorIs(err, domain.ErrValidation)
}

func (s *PostingServiceTestSuite) TestPublish_SaveFailureLeavesPostClaimed() {
	ctx := context.Background()

	s.posts.EXPECT().Get(ctx, int64(5)).Return(readyPost(), nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), gomock.Any(), domain.PostStatusPosting).Return(true, nil)
	s.articles.EXPECT().Get(ctx, int64(1)).Return(publishedArticle(), nil)
	s.poster.EXPECT().Post(ctx, gomock.Any()).Return("42", nil)
	s.posts.EXPECT().MarkPosted(gomock.Any(), int64(5), "42", s.now).Return(errors.New("db down"))

	_, err := s.service.Publish(ctx, 5)

	s.Error(err)
}

func (s *PostingServiceTestSuite) TestCancel() {
	ctx := context.Background()

	s.posts.EXPECT().Get(ctx, int64(5)).Return(readyPost(), nil)
	s.posts.EXPECT().TransitionStatus(ctx, int64(5), domain.Approvable(), domain.PostStatusCancelled).Return(true, nil)

	got, err := s.service.Cancel(ctx, 5)

	s.NoError(err)
	s.Equal(domain.PostStatusCancelled, got.Status)
}

func (s *PostingServiceTestSuite) TestUpdateContent() {
	ctx := context.Background()

	_, err := s.service.UpdateContent(ctx, 5, "   ")
	s.ErrorIs(err, domain.ErrValidation)

	posted := readyPost()
	posted.Status = domain.PostStatusPosted
	s.posts.EXPECT().Get(ctx, int64(5)).Return(posted, nil)
	_, err = s.service.UpdateContent(ctx, 5, "edit")
	s.ErrorIs(err, domain.ErrInvalidTransition)

	s.posts.EXPECT().Get(ctx, int64(6)).Return(&domain.Post{ID: 6, Status: domain.PostStatusDraft}, nil)
	s.posts.EXPECT().UpdateContent(ctx, gomock.Any()).Return(nil)
	got, err := s.service.UpdateContent(ctx, 6, "  edited  ")
	s.NoError(err)
	s.Equal("edited", got.Content)
}
