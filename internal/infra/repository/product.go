package repository

import (
	"context"
	"fmt"
	"strings"

	"petstore-backend/internal/domain/product"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

const productSelect = `
SELECT p.product_id, p.product_name, p.description, p.base_price, p.sku,
       c.category_id, c.category_name, c.description,
       p.promotion_id, s.status_name
FROM products p
LEFT JOIN categories c ON c.category_id = p.category_id
LEFT JOIN promotions pr ON pr.promotion_id = p.promotion_id
LEFT JOIN statuses s ON s.status_id = pr.status_id`

const productOrder = ` ORDER BY p.product_id`

const (
	insertProduct = `
INSERT INTO products (product_name, description, base_price, sku, category_id, promotion_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING product_id`

	updateProduct = `
UPDATE products
SET product_name = $2, description = $3, base_price = $4, sku = $5, category_id = $6, promotion_id = $7
WHERE product_id = $1`

	existsProduct = `SELECT EXISTS (SELECT 1 FROM products WHERE product_id = $1)`
	deleteProduct = `DELETE FROM products WHERE product_id = $1`
	countProduct  = `SELECT COUNT(*) FROM products`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	return r.list(ctx, "find all products", productSelect+productOrder)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	var row productRow
	err := r.db.QueryRow(ctx, productSelect+` WHERE p.product_id = $1`, id).Scan(row.dest()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("product %d not found", id), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	p, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product", err)
	}
	return p, nil
}

func (r *ProductRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]*product.Product, error) {
	return r.list(ctx, "find products by category", productSelect+` WHERE p.category_id = $1`+productOrder, categoryID)
}

func (r *ProductRepository) FindByPromotionID(ctx context.Context, promotionID int64) ([]*product.Product, error) {
	return r.list(ctx, "find products by promotion", productSelect+` WHERE p.promotion_id = $1`+productOrder, promotionID)
}

// SearchByName matches a case-insensitive substring of the product name.
func (r *ProductRepository) SearchByName(ctx context.Context, fragment string) ([]*product.Product, error) {
	pattern := "%" + likeEscaper.Replace(fragment) + "%"
	return r.list(ctx, "search products by name", productSelect+` WHERE p.product_name ILIKE $1`+productOrder, pattern)
}

func (r *ProductRepository) FindByPriceRange(ctx context.Context, pr product.PriceRange) ([]*product.Product, error) {
	return r.list(ctx, "find products by price range",
		productSelect+` WHERE p.base_price BETWEEN $1 AND $2`+productOrder,
		pgconv.DecimalToNumeric(pr.Min), pgconv.DecimalToNumeric(pr.Max))
}

func (r *ProductRepository) Save(ctx context.Context, p *product.Product) (*product.Product, error) {
	id := p.ID
	if id == 0 {
		err := r.db.QueryRow(ctx, insertProduct,
			p.Name, pgconv.StringToPgtype(p.Description), pgconv.DecimalToNumeric(p.BasePrice), p.SKU,
			pgconv.Int8PtrToPgtype(p.CategoryID()), pgconv.Int8PtrToPgtype(p.PromotionID),
		).Scan(&id)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to insert product", err)
		}
	} else {
		tag, err := r.db.Exec(ctx, updateProduct, id,
			p.Name, pgconv.StringToPgtype(p.Description), pgconv.DecimalToNumeric(p.BasePrice), p.SKU,
			pgconv.Int8PtrToPgtype(p.CategoryID()), pgconv.Int8PtrToPgtype(p.PromotionID),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to update product", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, infra.NotFound(fmt.Sprintf("product %d not found", id))
		}
	}
	return r.FindByID(ctx, id)
}

func (r *ProductRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsProduct, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check product existence", err)
	}
	return exists, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, deleteProduct, id); err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countProduct).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count products", err)
	}
	return n, nil
}

func (r *ProductRepository) list(ctx context.Context, op, query string, args ...any) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to "+op, err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*product.Product, error) {
		var pr productRow
		if err := row.Scan(pr.dest()...); err != nil {
			return nil, err
		}
		return pr.toDomain()
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to "+op, err)
	}
	return list, nil
}
