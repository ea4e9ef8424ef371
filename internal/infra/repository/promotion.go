package repository

import (
	"context"
	"fmt"
	"time"

	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

const promotionSelect = `
SELECT p.promotion_id, p.promotion_name, p.description, p.start_date, p.end_date, p.discount_value,
       s.status_id, s.status_name,
       c.category_id, c.category_name, c.description,
       u.user_id, u.user_name, u.email, r.role_id, r.role_name
FROM promotions p
LEFT JOIN statuses s ON s.status_id = p.status_id
LEFT JOIN categories c ON c.category_id = p.category_id
LEFT JOIN users u ON u.user_id = p.user_id
LEFT JOIN roles r ON r.role_id = u.role_id`

const promotionOrder = ` ORDER BY p.promotion_id`

const (
	insertPromotion = `
INSERT INTO promotions (promotion_name, description, start_date, end_date, discount_value, status_id, user_id, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING promotion_id`

	updatePromotion = `
UPDATE promotions
SET promotion_name = $2, description = $3, start_date = $4, end_date = $5, discount_value = $6,
    status_id = $7, user_id = $8, category_id = $9
WHERE promotion_id = $1`

	existsPromotion = `SELECT EXISTS (SELECT 1 FROM promotions WHERE promotion_id = $1)`
	deletePromotion = `DELETE FROM promotions WHERE promotion_id = $1`
	countPromotions = `SELECT COUNT(*) FROM promotions`
)

type PromotionRepository struct {
	db DBTX
}

func NewPromotionRepository(db DBTX) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) FindAll(ctx context.Context) ([]*promotion.Promotion, error) {
	return r.list(ctx, "find all promotions", promotionSelect+promotionOrder)
}

func (r *PromotionRepository) FindByID(ctx context.Context, id int64) (*promotion.Promotion, error) {
	var row promotionRow
	err := r.db.QueryRow(ctx, promotionSelect+` WHERE p.promotion_id = $1`, id).Scan(row.dest()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("promotion %d not found", id), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by ID", err)
	}
	return row.toDomain(), nil
}

func (r *PromotionRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]*promotion.Promotion, error) {
	return r.list(ctx, "find promotions by category",
		promotionSelect+` WHERE p.category_id = $1`+promotionOrder, categoryID)
}

func (r *PromotionRepository) FindActiveFlagged(ctx context.Context) ([]*promotion.Promotion, error) {
	return r.FindByStatusName(ctx, promotion.StatusActive)
}

func (r *PromotionRepository) FindExpired(ctx context.Context) ([]*promotion.Promotion, error) {
	return r.FindByStatusName(ctx, promotion.StatusExpired)
}

// FindScheduled treats PENDING as an alias of SCHEDULED.
func (r *PromotionRepository) FindScheduled(ctx context.Context) ([]*promotion.Promotion, error) {
	return r.list(ctx, "find scheduled promotions",
		promotionSelect+` WHERE s.status_name = ANY($1)`+promotionOrder,
		[]string{promotion.StatusScheduled, promotion.StatusPending})
}

func (r *PromotionRepository) FindByStatusName(ctx context.Context, statusName string) ([]*promotion.Promotion, error) {
	return r.list(ctx, "find promotions by status",
		promotionSelect+` WHERE s.status_name = $1`+promotionOrder, statusName)
}

func (r *PromotionRepository) FindValid(ctx context.Context, day time.Time) ([]*promotion.Promotion, error) {
	return r.list(ctx, "find valid promotions",
		promotionSelect+` WHERE p.start_date <= $1 AND p.end_date >= $1`+promotionOrder,
		pgconv.DateToPgtype(day))
}

// Save inserts when p.ID is zero and updates otherwise, then reloads the row
// so joined relation names are populated.
func (r *PromotionRepository) Save(ctx context.Context, p *promotion.Promotion) (*promotion.Promotion, error) {
	statusID, userID, categoryID := promotionRelationIDs(p)

	id := p.ID
	if id == 0 {
		err := r.db.QueryRow(ctx, insertPromotion,
			p.Name, pgconv.StringToPgtype(p.Description),
			pgconv.DateToPgtype(p.StartDate), pgconv.DateToPgtype(p.EndDate), p.DiscountValue,
			statusID, userID, categoryID,
		).Scan(&id)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to insert promotion", err)
		}
	} else {
		tag, err := r.db.Exec(ctx, updatePromotion, id,
			p.Name, pgconv.StringToPgtype(p.Description),
			pgconv.DateToPgtype(p.StartDate), pgconv.DateToPgtype(p.EndDate), p.DiscountValue,
			statusID, userID, categoryID,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to update promotion", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, infra.NotFound(fmt.Sprintf("promotion %d not found", id))
		}
	}

	return r.FindByID(ctx, id)
}

func (r *PromotionRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsPromotion, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check promotion existence", err)
	}
	return exists, nil
}

func (r *PromotionRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, deletePromotion, id); err != nil {
		return infra.WrapRepoErr("failed to delete promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countPromotions).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count promotions", err)
	}
	return n, nil
}

func (r *PromotionRepository) list(ctx context.Context, op, query string, args ...any) ([]*promotion.Promotion, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to "+op, err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*promotion.Promotion, error) {
		var pr promotionRow
		if err := row.Scan(pr.dest()...); err != nil {
			return nil, err
		}
		return pr.toDomain(), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to "+op, err)
	}
	return list, nil
}

func promotionRelationIDs(p *promotion.Promotion) (statusID, userID, categoryID *int64) {
	if p.Status != nil {
		statusID = &p.Status.ID
	}
	if p.User != nil {
		userID = &p.User.ID
	}
	if p.Category != nil {
		categoryID = &p.Category.ID
	}
	return statusID, userID, categoryID
}
