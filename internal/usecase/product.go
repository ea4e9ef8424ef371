package usecase

//go:generate mockgen -source=product.go -destination=../../tests/mock/usecase/product.go -package=usecasemock

import (
	"context"
	"strings"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/product"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/config"
	"petstore-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ProductInput replaces every writable field of a product.
type ProductInput struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
	SKU         int64
	CategoryID  *int64
	PromotionID *int64
}

type ProductUseCase interface {
	List(ctx context.Context) ([]*product.Product, error)
	// Get returns (nil, nil) when the product does not exist.
	Get(ctx context.Context, id int64) (*product.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*product.Product, error)
	ListByPromotion(ctx context.Context, promotionID int64) ([]*product.Product, error)
	SearchByName(ctx context.Context, fragment string) ([]*product.Product, error)
	ListByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*product.Product, error)
	Create(ctx context.Context, in ProductInput) (*product.Product, error)
	// Update returns (nil, nil) when the product does not exist.
	Update(ctx context.Context, id int64, in ProductInput) (*product.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type productUseCaseImpl struct {
	products   ProductRepository
	categories CategoryRepository
	promotions PromotionRepository
	policy     DanglingReferencePolicy
}

func NewProductUseCase(products ProductRepository, categories CategoryRepository, promotions PromotionRepository, cfg config.Config) ProductUseCase {
	return &productUseCaseImpl{
		products:   products,
		categories: categories,
		promotions: promotions,
		policy:     PolicyFromStrict(cfg.App.StrictRelations),
	}
}

func (u *productUseCaseImpl) List(ctx context.Context) ([]*product.Product, error) {
	list, err := u.products.FindAll(ctx)
	return list, errs.Wrap(err, "list products")
}

func (u *productUseCaseImpl) Get(ctx context.Context, id int64) (*product.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrapf(err, "get product %d", id)
	}
	return p, nil
}

func (u *productUseCaseImpl) ListByCategory(ctx context.Context, categoryID int64) ([]*product.Product, error) {
	list, err := u.products.FindByCategoryID(ctx, categoryID)
	return list, errs.Wrapf(err, "list products of category %d", categoryID)
}

func (u *productUseCaseImpl) ListByPromotion(ctx context.Context, promotionID int64) ([]*product.Product, error) {
	list, err := u.products.FindByPromotionID(ctx, promotionID)
	return list, errs.Wrapf(err, "list products of promotion %d", promotionID)
}

func (u *productUseCaseImpl) SearchByName(ctx context.Context, fragment string) ([]*product.Product, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return u.List(ctx)
	}
	list, err := u.products.SearchByName(ctx, fragment)
	return list, errs.Wrapf(err, "search products by %q", fragment)
}

func (u *productUseCaseImpl) ListByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*product.Product, error) {
	r, err := product.NewPriceRange(minPrice, maxPrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	list, err := u.products.FindByPriceRange(ctx, r)
	return list, errs.Wrap(err, "list products by price range")
}

func (u *productUseCaseImpl) Create(ctx context.Context, in ProductInput) (*product.Product, error) {
	p, err := u.build(ctx, in)
	if err != nil {
		return nil, err
	}

	saved, err := u.products.Save(ctx, p)
	if err != nil {
		return nil, errs.Wrap(err, "save product")
	}
	return saved, nil
}

func (u *productUseCaseImpl) Update(ctx context.Context, id int64, in ProductInput) (*product.Product, error) {
	exists, err := u.products.ExistsByID(ctx, id)
	if err != nil {
		return nil, errs.Wrapf(err, "check product %d", id)
	}
	if !exists {
		return nil, nil
	}

	p, err := u.build(ctx, in)
	if err != nil {
		return nil, err
	}
	p.ID = id

	saved, err := u.products.Save(ctx, p)
	if err != nil {
		return nil, errs.Wrapf(err, "save product %d", id)
	}
	return saved, nil
}

func (u *productUseCaseImpl) Delete(ctx context.Context, id int64) (bool, error) {
	exists, err := u.products.ExistsByID(ctx, id)
	if err != nil {
		return false, errs.Wrapf(err, "check product %d", id)
	}
	if !exists {
		return false, nil
	}
	if err := u.products.DeleteByID(ctx, id); err != nil {
		return false, errs.Wrapf(err, "delete product %d", id)
	}
	return true, nil
}

func (u *productUseCaseImpl) Count(ctx context.Context) (int64, error) {
	n, err := u.products.Count(ctx)
	return n, errs.Wrap(err, "count products")
}

func (u *productUseCaseImpl) build(ctx context.Context, in ProductInput) (*product.Product, error) {
	p := &product.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		BasePrice:   in.BasePrice,
		SKU:         in.SKU,
	}
	if err := p.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	cat, err := resolveOrNone[category.Category](ctx, in.CategoryID, u.categories.FindByID, u.policy, "category")
	if err != nil {
		return nil, err
	}
	p.Category = cat

	if in.PromotionID != nil {
		exists, err := u.promotions.ExistsByID(ctx, *in.PromotionID)
		if err != nil {
			return nil, errs.Wrapf(err, "resolve promotion %d", *in.PromotionID)
		}
		switch {
		case exists:
			id := *in.PromotionID
			p.PromotionID = &id
		case u.policy == RejectDanglingReferences:
			return nil, errs.Mark(errs.Newf("promotion %d does not exist", *in.PromotionID), errs.ErrDanglingReference)
		}
	}
	return p, nil
}
