package usecase

//go:generate mockgen -source=promotion.go -destination=../../tests/mock/usecase/promotion.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/clock"
	"petstore-backend/internal/pkg/config"
	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/pkg/patch"
)

// PromotionInput carries create/update fields. A nil field means "not provided":
// create leaves it at its zero value, update leaves the stored value unchanged.
type PromotionInput struct {
	Name          *string
	Description   *string
	StartDate     *time.Time
	EndDate       *time.Time
	DiscountValue *float64
	StatusID      *int64
	UserID        *int64
	CategoryID    *int64
}

// PromotionUseCase is the single read/write entry point for promotions.
//
// Two definitions of "currently valid" coexist on purpose:
//   - ListActive: status flagged ACTIVE in storage AND today within [start, end]
//   - ListValid:  today within [start, end], regardless of status
//
// Callers depend on the difference; keep them separate.
type PromotionUseCase interface {
	ListActive(ctx context.Context) ([]*promotion.Promotion, error)
	ListAll(ctx context.Context) ([]*promotion.Promotion, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*promotion.Promotion, error)
	ListValid(ctx context.Context) ([]*promotion.Promotion, error)
	ListExpired(ctx context.Context) ([]*promotion.Promotion, error)
	ListScheduled(ctx context.Context) ([]*promotion.Promotion, error)
	ListByStatus(ctx context.Context, statusName string) ([]*promotion.Promotion, error)
	// GetByID returns (nil, nil) when the promotion does not exist.
	GetByID(ctx context.Context, id int64) (*promotion.Promotion, error)
	Create(ctx context.Context, in PromotionInput) (*promotion.Promotion, error)
	// Update returns (nil, nil) when the promotion does not exist.
	Update(ctx context.Context, id int64, in PromotionInput) (*promotion.Promotion, error)
	// Delete reports false both for a missing id and for a storage fault.
	Delete(ctx context.Context, id int64) bool
	Today() time.Time
}

type promotionUseCaseImpl struct {
	promotions PromotionRepository
	statuses   StatusRepository
	users      UserRepository
	categories CategoryRepository
	clock      clock.Clock
	location   *time.Location
	policy     DanglingReferencePolicy
	logger     *slog.Logger
}

func NewPromotionUseCase(
	promotions PromotionRepository,
	statuses StatusRepository,
	users UserRepository,
	categories CategoryRepository,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) PromotionUseCase {
	return &promotionUseCaseImpl{
		promotions: promotions,
		statuses:   statuses,
		users:      users,
		categories: categories,
		clock:      clk,
		location:   cfg.App.Location(),
		policy:     PolicyFromStrict(cfg.App.StrictRelations),
		logger:     logger,
	}
}

func (u *promotionUseCaseImpl) Today() time.Time {
	return clock.Today(u.clock, u.location)
}

func (u *promotionUseCaseImpl) ListActive(ctx context.Context) ([]*promotion.Promotion, error) {
	flagged, err := u.promotions.FindActiveFlagged(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list active-flagged promotions")
	}
	return promotion.ClassifyActive(flagged, u.Today()), nil
}

func (u *promotionUseCaseImpl) ListAll(ctx context.Context) ([]*promotion.Promotion, error) {
	list, err := u.promotions.FindAll(ctx)
	return list, errs.Wrap(err, "list promotions")
}

func (u *promotionUseCaseImpl) ListByCategory(ctx context.Context, categoryID int64) ([]*promotion.Promotion, error) {
	list, err := u.promotions.FindByCategoryID(ctx, categoryID)
	return list, errs.Wrapf(err, "list promotions of category %d", categoryID)
}

func (u *promotionUseCaseImpl) ListValid(ctx context.Context) ([]*promotion.Promotion, error) {
	list, err := u.promotions.FindValid(ctx, u.Today())
	return list, errs.Wrap(err, "list valid promotions")
}

func (u *promotionUseCaseImpl) ListExpired(ctx context.Context) ([]*promotion.Promotion, error) {
	list, err := u.promotions.FindExpired(ctx)
	return list, errs.Wrap(err, "list expired promotions")
}

func (u *promotionUseCaseImpl) ListScheduled(ctx context.Context) ([]*promotion.Promotion, error) {
	list, err := u.promotions.FindScheduled(ctx)
	return list, errs.Wrap(err, "list scheduled promotions")
}

func (u *promotionUseCaseImpl) ListByStatus(ctx context.Context, statusName string) ([]*promotion.Promotion, error) {
	list, err := u.promotions.FindByStatusName(ctx, statusName)
	return list, errs.Wrapf(err, "list promotions with status %q", statusName)
}

func (u *promotionUseCaseImpl) GetByID(ctx context.Context, id int64) (*promotion.Promotion, error) {
	p, err := u.promotions.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrapf(err, "get promotion %d", id)
	}
	return p, nil
}

func (u *promotionUseCaseImpl) Create(ctx context.Context, in PromotionInput) (*promotion.Promotion, error) {
	p := &promotion.Promotion{
		Name:          patch.Coalesce(in.Name, ""),
		Description:   patch.Coalesce(in.Description, ""),
		StartDate:     dateOrZero(in.StartDate),
		EndDate:       dateOrZero(in.EndDate),
		DiscountValue: patch.Coalesce(in.DiscountValue, 0),
	}

	if err := u.applyRelations(ctx, p, in); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	saved, err := u.promotions.Save(ctx, p)
	if err != nil {
		return nil, errs.Wrap(err, "save promotion")
	}
	return saved, nil
}

func (u *promotionUseCaseImpl) Update(ctx context.Context, id int64, in PromotionInput) (*promotion.Promotion, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	patch.Apply(&p.Name, in.Name)
	patch.Apply(&p.Description, in.Description)
	patch.Apply(&p.DiscountValue, in.DiscountValue)
	if in.StartDate != nil {
		p.StartDate = promotion.DateOf(*in.StartDate)
	}
	if in.EndDate != nil {
		p.EndDate = promotion.DateOf(*in.EndDate)
	}

	if err := u.applyRelations(ctx, p, in); err != nil {
		return nil, err
	}
	changes := promotion.Changes{
		Name:     in.Name != nil,
		Discount: in.DiscountValue != nil,
		Dates:    in.StartDate != nil || in.EndDate != nil,
	}
	if err := p.ValidateChanges(changes); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	saved, err := u.promotions.Save(ctx, p)
	if err != nil {
		return nil, errs.Wrapf(err, "save promotion %d", id)
	}
	return saved, nil
}

func (u *promotionUseCaseImpl) Delete(ctx context.Context, id int64) bool {
	exists, err := u.promotions.ExistsByID(ctx, id)
	if err != nil {
		u.logger.Error("Failed to check promotion existence", "promotion_id", id, "error", err.Error())
		return false
	}
	if !exists {
		return false
	}

	if err := u.promotions.DeleteByID(ctx, id); err != nil {
		u.logger.Error("Failed to delete promotion", "promotion_id", id, "error", err.Error())
		return false
	}
	return true
}

// applyRelations overwrites a relation only when its id resolves.
func (u *promotionUseCaseImpl) applyRelations(ctx context.Context, p *promotion.Promotion, in PromotionInput) error {
	status, err := resolveOrNone(ctx, in.StatusID, u.statuses.FindByID, u.policy, "status")
	if err != nil {
		return err
	}
	if status != nil {
		p.Status = status
	}

	owner, err := resolveOrNone[user.User](ctx, in.UserID, u.users.FindByID, u.policy, "user")
	if err != nil {
		return err
	}
	if owner != nil {
		p.User = owner
	}

	cat, err := resolveOrNone[category.Category](ctx, in.CategoryID, u.categories.FindByID, u.policy, "category")
	if err != nil {
		return err
	}
	if cat != nil {
		p.Category = cat
	}
	return nil
}

func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return promotion.DateOf(*t)
}
