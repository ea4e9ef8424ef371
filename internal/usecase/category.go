package usecase

//go:generate mockgen -source=category.go -destination=../../tests/mock/usecase/category.go -package=usecasemock

import (
	"context"
	"log/slog"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/errs"
)

type CategoryUseCase interface {
	List(ctx context.Context) ([]*category.Category, error)
	// Get returns (nil, nil) when the category does not exist.
	Get(ctx context.Context, id int64) (*category.Category, error)
	Create(ctx context.Context, name, description string) (*category.Category, error)
	// Update returns (nil, nil) when the category does not exist.
	Update(ctx context.Context, id int64, name, description string) (*category.Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type categoryUseCaseImpl struct {
	repo   CategoryRepository
	cache  CategoryCache
	logger *slog.Logger
}

func NewCategoryUseCase(repo CategoryRepository, cache CategoryCache, logger *slog.Logger) CategoryUseCase {
	return &categoryUseCaseImpl{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (u *categoryUseCaseImpl) List(ctx context.Context) ([]*category.Category, error) {
	if cached, found, err := u.cache.GetAll(ctx); err != nil {
		u.logger.Warn("Category cache read failed", "error", err.Error())
	} else if found {
		return cached, nil
	}

	list, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list categories")
	}

	if err := u.cache.SetAll(ctx, list); err != nil {
		u.logger.Warn("Category cache write failed", "error", err.Error())
	}
	return list, nil
}

func (u *categoryUseCaseImpl) Get(ctx context.Context, id int64) (*category.Category, error) {
	if cached, found, err := u.cache.Get(ctx, id); err != nil {
		u.logger.Warn("Category cache read failed", "category_id", id, "error", err.Error())
	} else if found {
		return cached, nil
	}

	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrapf(err, "get category %d", id)
	}

	if err := u.cache.Set(ctx, c); err != nil {
		u.logger.Warn("Category cache write failed", "category_id", id, "error", err.Error())
	}
	return c, nil
}

func (u *categoryUseCaseImpl) Create(ctx context.Context, name, description string) (*category.Category, error) {
	c, err := category.New(name, description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return nil, errs.Wrap(err, "save category")
	}
	u.invalidate(ctx)
	return saved, nil
}

func (u *categoryUseCaseImpl) Update(ctx context.Context, id int64, name, description string) (*category.Category, error) {
	exists, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, errs.Wrapf(err, "check category %d", id)
	}
	if !exists {
		return nil, nil
	}

	c, err := category.New(name, description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	c.ID = id

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return nil, errs.Wrapf(err, "save category %d", id)
	}
	u.invalidate(ctx, id)
	return saved, nil
}

func (u *categoryUseCaseImpl) Delete(ctx context.Context, id int64) (bool, error) {
	exists, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return false, errs.Wrapf(err, "check category %d", id)
	}
	if !exists {
		return false, nil
	}

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return false, errs.Wrapf(err, "delete category %d", id)
	}
	u.invalidate(ctx, id)
	return true, nil
}

func (u *categoryUseCaseImpl) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := u.repo.ExistsByID(ctx, id)
	return ok, errs.Wrapf(err, "check category %d", id)
}

func (u *categoryUseCaseImpl) Count(ctx context.Context) (int64, error) {
	n, err := u.repo.Count(ctx)
	return n, errs.Wrap(err, "count categories")
}

func (u *categoryUseCaseImpl) invalidate(ctx context.Context, ids ...int64) {
	if err := u.cache.Invalidate(ctx, ids...); err != nil {
		u.logger.Warn("Category cache invalidation failed", "error", err.Error())
	}
}
