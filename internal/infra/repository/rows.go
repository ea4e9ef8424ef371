package repository

import (
	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/product"
	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// promotionRow mirrors promotionSelect column by column.
type promotionRow struct {
	ID                  int64
	Name                string
	Description         pgtype.Text
	StartDate           pgtype.Date
	EndDate             pgtype.Date
	DiscountValue       float64
	StatusID            pgtype.Int8
	StatusName          pgtype.Text
	CategoryID          pgtype.Int8
	CategoryName        pgtype.Text
	CategoryDescription pgtype.Text
	UserID              pgtype.Int8
	UserName            pgtype.Text
	UserEmail           pgtype.Text
	RoleID              pgtype.Int8
	RoleName            pgtype.Text
}

func (r *promotionRow) dest() []any {
	return []any{
		&r.ID, &r.Name, &r.Description, &r.StartDate, &r.EndDate, &r.DiscountValue,
		&r.StatusID, &r.StatusName,
		&r.CategoryID, &r.CategoryName, &r.CategoryDescription,
		&r.UserID, &r.UserName, &r.UserEmail, &r.RoleID, &r.RoleName,
	}
}

func (r *promotionRow) toDomain() *promotion.Promotion {
	p := &promotion.Promotion{
		ID:            r.ID,
		Name:          r.Name,
		Description:   pgconv.StringFromPgtype(r.Description),
		StartDate:     pgconv.DateFromPgtype(r.StartDate),
		EndDate:       pgconv.DateFromPgtype(r.EndDate),
		DiscountValue: r.DiscountValue,
	}
	if r.StatusID.Valid {
		p.Status = &promotion.Status{ID: r.StatusID.Int64, Name: pgconv.StringFromPgtype(r.StatusName)}
	}
	if r.CategoryID.Valid {
		p.Category = &category.Category{
			ID:          r.CategoryID.Int64,
			Name:        pgconv.StringFromPgtype(r.CategoryName),
			Description: pgconv.StringFromPgtype(r.CategoryDescription),
		}
	}
	if r.UserID.Valid {
		p.User = &user.User{
			ID:    r.UserID.Int64,
			Name:  pgconv.StringFromPgtype(r.UserName),
			Email: pgconv.StringFromPgtype(r.UserEmail),
		}
		if r.RoleID.Valid {
			p.User.Role = &user.Role{ID: r.RoleID.Int64, Name: pgconv.StringFromPgtype(r.RoleName)}
		}
	}
	return p
}

type categoryRow struct {
	ID          int64
	Name        string
	Description pgtype.Text
}

func (r *categoryRow) dest() []any {
	return []any{&r.ID, &r.Name, &r.Description}
}

func (r *categoryRow) toDomain() *category.Category {
	return &category.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: pgconv.StringFromPgtype(r.Description),
	}
}

// productRow mirrors productSelect column by column.
type productRow struct {
	ID                  int64
	Name                string
	Description         pgtype.Text
	BasePrice           pgtype.Numeric
	SKU                 pgtype.Int8
	CategoryID          pgtype.Int8
	CategoryName        pgtype.Text
	CategoryDescription pgtype.Text
	PromotionID         pgtype.Int8
	PromotionStatus     pgtype.Text
}

func (r *productRow) dest() []any {
	return []any{
		&r.ID, &r.Name, &r.Description, &r.BasePrice, &r.SKU,
		&r.CategoryID, &r.CategoryName, &r.CategoryDescription,
		&r.PromotionID, &r.PromotionStatus,
	}
}

func (r *productRow) toDomain() (*product.Product, error) {
	price, err := pgconv.DecimalFromNumeric(r.BasePrice)
	if err != nil {
		return nil, err
	}

	p := &product.Product{
		ID:              r.ID,
		Name:            r.Name,
		Description:     pgconv.StringFromPgtype(r.Description),
		BasePrice:       price,
		PromotionID:     pgconv.Int8PtrFromPgtype(r.PromotionID),
		PromotionStatus: pgconv.StringFromPgtype(r.PromotionStatus),
	}
	if r.SKU.Valid {
		p.SKU = r.SKU.Int64
	}
	if r.CategoryID.Valid {
		p.Category = &category.Category{
			ID:          r.CategoryID.Int64,
			Name:        pgconv.StringFromPgtype(r.CategoryName),
			Description: pgconv.StringFromPgtype(r.CategoryDescription),
		}
	}
	return p, nil
}

type userRow struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RoleID       pgtype.Int8
	RoleName     pgtype.Text
}

func (r *userRow) dest() []any {
	return []any{&r.ID, &r.Name, &r.Email, &r.PasswordHash, &r.RoleID, &r.RoleName}
}

func (r *userRow) toDomain() *user.User {
	u := &user.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	}
	if r.RoleID.Valid {
		u.Role = &user.Role{ID: r.RoleID.Int64, Name: pgconv.StringFromPgtype(r.RoleName)}
	}
	return u
}
