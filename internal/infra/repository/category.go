package repository

import (
	"context"
	"fmt"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

const (
	categorySelect = `SELECT category_id, category_name, description FROM categories`

	insertCategory = `
INSERT INTO categories (category_name, description) VALUES ($1, $2)
RETURNING category_id, category_name, description`

	updateCategory = `
UPDATE categories SET category_name = $2, description = $3 WHERE category_id = $1
RETURNING category_id, category_name, description`

	existsCategory = `SELECT EXISTS (SELECT 1 FROM categories WHERE category_id = $1)`
	deleteCategory = `DELETE FROM categories WHERE category_id = $1`
	countCategory  = `SELECT COUNT(*) FROM categories`
)

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*category.Category, error) {
	rows, err := r.db.Query(ctx, categorySelect+` ORDER BY category_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all categories", err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*category.Category, error) {
		var cr categoryRow
		if err := row.Scan(cr.dest()...); err != nil {
			return nil, err
		}
		return cr.toDomain(), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan categories", err)
	}
	return list, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	var row categoryRow
	err := r.db.QueryRow(ctx, categorySelect+` WHERE category_id = $1`, id).Scan(row.dest()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("category %d not found", id), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return row.toDomain(), nil
}

func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) (*category.Category, error) {
	var row categoryRow
	var err error
	if c.ID == 0 {
		err = r.db.QueryRow(ctx, insertCategory, c.Name, pgconv.StringToPgtype(c.Description)).Scan(row.dest()...)
	} else {
		err = r.db.QueryRow(ctx, updateCategory, c.ID, c.Name, pgconv.StringToPgtype(c.Description)).Scan(row.dest()...)
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("category %d not found", c.ID), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to save category", err)
	}
	return row.toDomain(), nil
}

func (r *CategoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsCategory, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check category existence", err)
	}
	return exists, nil
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, deleteCategory, id); err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countCategory).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count categories", err)
	}
	return n, nil
}
