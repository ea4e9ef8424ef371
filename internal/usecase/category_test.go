//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/usecase"
	"petstore-backend/tests/common/builder"
	usecasemock "petstore-backend/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CategoryUseCaseTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	repo  *usecasemock.MockCategoryRepository
	cache *usecasemock.MockCategoryCache
	uc    usecase.CategoryUseCase
}

func (s *CategoryUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockCategoryRepository(s.ctrl)
	s.cache = usecasemock.NewMockCategoryCache(s.ctrl)
	s.uc = usecase.NewCategoryUseCase(s.repo, s.cache, discardLogger())
}

func (s *CategoryUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CategoryUseCaseTestSuite))
}

func (s *CategoryUseCaseTestSuite) TestList() {
	ctx := context.Background()
	list := []*category.Category{builder.NewCategoryBuilder().BuildDomain()}

	s.Run("cache hit skips storage", func() {
		s.cache.EXPECT().GetAll(ctx).Return(list, true, nil)

		got, err := s.uc.List(ctx)
		s.Require().NoError(err)
		s.Equal(list, got)
	})

	s.Run("cache miss reads storage and fills the cache", func() {
		s.cache.EXPECT().GetAll(ctx).Return(nil, false, nil)
		s.repo.EXPECT().FindAll(ctx).Return(list, nil)
		s.cache.EXPECT().SetAll(ctx, list).Return(nil)

		got, err := s.uc.List(ctx)
		s.Require().NoError(err)
		s.Equal(list, got)
	})

	s.Run("cache failures are not fatal", func() {
		s.cache.EXPECT().GetAll(ctx).Return(nil, false, errors.New("redis down"))
		s.repo.EXPECT().FindAll(ctx).Return(list, nil)
		s.cache.EXPECT().SetAll(ctx, list).Return(errors.New("redis down"))

		got, err := s.uc.List(ctx)
		s.Require().NoError(err)
		s.Equal(list, got)
	})

	s.Run("storage fault propagates", func() {
		s.cache.EXPECT().GetAll(ctx).Return(nil, false, nil)
		s.repo.EXPECT().FindAll(ctx).Return(nil, infra.WrapRepoErr("failed", errors.New("timeout")))

		_, err := s.uc.List(ctx)
		s.Error(err)
	})
}

func (s *CategoryUseCaseTestSuite) TestGet() {
	ctx := context.Background()
	c := builder.NewCategoryBuilder().BuildDomain()

	s.Run("miss then fill", func() {
		s.cache.EXPECT().Get(ctx, int64(5)).Return(nil, false, nil)
		s.repo.EXPECT().FindByID(ctx, int64(5)).Return(c, nil)
		s.cache.EXPECT().Set(ctx, c).Return(nil)

		got, err := s.uc.Get(ctx, 5)
		s.Require().NoError(err)
		s.Equal(c, got)
	})

	s.Run("missing category yields nil", func() {
		s.cache.EXPECT().Get(ctx, int64(9)).Return(nil, false, nil)
		s.repo.EXPECT().FindByID(ctx, int64(9)).Return(nil, infra.NotFound("category 9 not found"))

		got, err := s.uc.Get(ctx, 9)
		s.NoError(err)
		s.Nil(got)
	})
}

func (s *CategoryUseCaseTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("persists and drops the cached list", func() {
		saved := builder.NewCategoryBuilder().BuildDomain()
		s.repo.EXPECT().Save(ctx, &category.Category{Name: "Dog Food", Description: "Food and treats for dogs"}).Return(saved, nil)
		s.cache.EXPECT().Invalidate(ctx).Return(nil)

		got, err := s.uc.Create(ctx, " Dog Food ", "Food and treats for dogs")
		s.Require().NoError(err)
		s.Equal(saved, got)
	})

	s.Run("blank name is a validation error", func() {
		_, err := s.uc.Create(ctx, "  ", "")
		s.True(errs.Is(err, errs.ErrDomainValidation), "got %v", err)
	})
}

func (s *CategoryUseCaseTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("existing category", func() {
		want := &category.Category{ID: 5, Name: "Cat Food", Description: "d"}
		s.repo.EXPECT().ExistsByID(ctx, int64(5)).Return(true, nil)
		s.repo.EXPECT().Save(ctx, want).Return(want, nil)
		s.cache.EXPECT().Invalidate(ctx, int64(5)).Return(nil)

		got, err := s.uc.Update(ctx, 5, "Cat Food", "d")
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("missing category yields nil", func() {
		s.repo.EXPECT().ExistsByID(ctx, int64(9)).Return(false, nil)

		got, err := s.uc.Update(ctx, 9, "Cat Food", "d")
		s.NoError(err)
		s.Nil(got)
	})
}

func (s *CategoryUseCaseTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("existing category", func() {
		s.repo.EXPECT().ExistsByID(ctx, int64(5)).Return(true, nil)
		s.repo.EXPECT().DeleteByID(ctx, int64(5)).Return(nil)
		s.cache.EXPECT().Invalidate(ctx, int64(5)).Return(nil)

		ok, err := s.uc.Delete(ctx, 5)
		s.NoError(err)
		s.True(ok)
	})

	s.Run("missing category", func() {
		s.repo.EXPECT().ExistsByID(ctx, int64(9)).Return(false, nil)

		ok, err := s.uc.Delete(ctx, 9)
		s.NoError(err)
		s.False(ok)
	})

	s.Run("still referenced", func() {
		fk := infra.WrapRepoErr("failed to delete category", errors.New("fk"), infra.KindForeignKeyViolated)
		s.repo.EXPECT().ExistsByID(ctx, int64(5)).Return(true, nil)
		s.repo.EXPECT().DeleteByID(ctx, int64(5)).Return(fk)

		ok, err := s.uc.Delete(ctx, 5)
		s.False(ok)
		s.True(infra.IsKind(err, infra.KindForeignKeyViolated), "got %v", err)
	})
}
