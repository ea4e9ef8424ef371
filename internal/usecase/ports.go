package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"
	"time"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/product"
	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/domain/user"
)

// Gateways report a missing row as an infra.RepositoryError of kind NOT_FOUND.

type PromotionRepository interface {
	FindAll(ctx context.Context) ([]*promotion.Promotion, error)
	FindByID(ctx context.Context, id int64) (*promotion.Promotion, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]*promotion.Promotion, error)
	// FindActiveFlagged filters on the persisted status label only.
	FindActiveFlagged(ctx context.Context) ([]*promotion.Promotion, error)
	FindExpired(ctx context.Context) ([]*promotion.Promotion, error)
	FindScheduled(ctx context.Context) ([]*promotion.Promotion, error)
	FindByStatusName(ctx context.Context, statusName string) ([]*promotion.Promotion, error)
	// FindValid filters on start_date <= day <= end_date only.
	FindValid(ctx context.Context, day time.Time) ([]*promotion.Promotion, error)
	Save(ctx context.Context, p *promotion.Promotion) (*promotion.Promotion, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type StatusRepository interface {
	FindByID(ctx context.Context, id int64) (*promotion.Status, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindMarketingAdminByEmail(ctx context.Context, email string) (*user.User, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*category.Category, error)
	FindByID(ctx context.Context, id int64) (*category.Category, error)
	Save(ctx context.Context, c *category.Category) (*category.Category, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]*product.Product, error)
	FindByID(ctx context.Context, id int64) (*product.Product, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]*product.Product, error)
	FindByPromotionID(ctx context.Context, promotionID int64) ([]*product.Product, error)
	SearchByName(ctx context.Context, fragment string) ([]*product.Product, error)
	FindByPriceRange(ctx context.Context, r product.PriceRange) ([]*product.Product, error)
	Save(ctx context.Context, p *product.Product) (*product.Product, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// CategoryCache is a read-through cache for the category catalog.
// A miss is reported with found=false and a nil error.
type CategoryCache interface {
	GetAll(ctx context.Context) (list []*category.Category, found bool, err error)
	SetAll(ctx context.Context, list []*category.Category) error
	Get(ctx context.Context, id int64) (c *category.Category, found bool, err error)
	Set(ctx context.Context, c *category.Category) error
	Invalidate(ctx context.Context, ids ...int64) error
}
