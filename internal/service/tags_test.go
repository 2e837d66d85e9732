package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdesk/internal/domain"
	"newsdesk/internal/service/mocks"
)

type TagServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	tags      *mocks.MockTagStore
	articles  *mocks.MockArticleStore
	txManager *mocks.MockTransactionManager

	service *TagService
}

func (s *TagServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.tags = mocks.NewMockTagStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewTagService(s.tags, s.articles, s.txManager, logger)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *TagServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}

func (s *TagServiceTestSuite) TestSet_RefreshesOldAndNewTags() {
	ctx := context.Background()

	s.articles.EXPECT().Get(ctx, int64(1)).Return(&domain.Article{ID: 1}, nil)
	gomock.InOrder(
		s.tags.EXPECT().ListByArticle(ctx, int64(1)).Return([]domain.Tag{{ID: 2}, {ID: 3}}, nil),
		s.tags.EXPECT().LinkToArticle(ctx, int64(1), []int64{3, 4}).Return(nil),
		s.tags.EXPECT().RefreshCounts(ctx, []int64{3, 4, 2}).Return(nil),
		s.tags.EXPECT().ListByArticle(ctx, int64(1)).Return([]domain.Tag{{ID: 3}, {ID: 4}}, nil),
	)

	tags, err := s.service.Set(ctx, 1, []int64{3, 4, 3})

	s.NoError(err)
	s.Len(tags, 2)
}

func (s *TagServiceTestSuite) TestSet_UnknownArticle() {
	ctx := context.Background()

	s.articles.EXPECT().Get(ctx, int64(9)).Return(nil, domain.ErrNotFound)

	_, err := s.service.Set(ctx, 9, []int64{1})

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *TagServiceTestSuite) TestAddAndRemove() {
	ctx := context.Background()

	s.articles.EXPECT().Get(ctx, int64(1)).Return(&domain.Article{ID: 1}, nil)
	s.tags.EXPECT().AddToArticle(ctx, int64(1), int64(5)).Return(nil)
	s.tags.EXPECT().RefreshCounts(ctx, []int64{5}).Return(nil).Times(2)
	s.tags.EXPECT().RemoveFromArticle(ctx, int64(1), int64(5)).Return(nil)

	s.NoError(s.service.Add(ctx, 1, 5))
	s.NoError(s.service.Remove(ctx, 1, 5))
}
