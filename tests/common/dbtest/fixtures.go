//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"petstore-backend/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain-text password of every user created by CreateTestUser.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		// minimum cost keeps fixtures fast
		hash, err := password.HashPasswordWithCost(DefaultPassword, 4)
		require.NoError(t, err)
		defaultHash = hash
	})
	return defaultHash
}

func CreateTestUser(t *testing.T, db DBLike, name, email, roleName string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (user_name, email, password_hash, role_id)
		VALUES ($1, $2, $3, (SELECT role_id FROM roles WHERE role_name = $4))
		ON CONFLICT (email) DO UPDATE SET user_name = EXCLUDED.user_name
		RETURNING user_id`,
		name, email, defaultPasswordHash(t), roleName).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestCategory(t *testing.T, db DBLike, name, description string) int64 {
	t.Helper()

	var categoryID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO categories (category_name, description) VALUES ($1, $2) RETURNING category_id",
		name, description).Scan(&categoryID)
	require.NoError(t, err)

	return categoryID
}

type PromotionFixture struct {
	Name          string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	DiscountValue float64
	StatusName    string
	UserID        *int64
	CategoryID    *int64
}

func CreateTestPromotion(t *testing.T, db DBLike, f PromotionFixture) int64 {
	t.Helper()

	var promotionID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO promotions (promotion_name, description, start_date, end_date, discount_value, status_id, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, (SELECT status_id FROM statuses WHERE status_name = $6), $7, $8)
		RETURNING promotion_id`,
		f.Name, f.Description, f.StartDate, f.EndDate, f.DiscountValue, f.StatusName, f.UserID, f.CategoryID,
	).Scan(&promotionID)
	require.NoError(t, err)

	return promotionID
}

func CreateTestProduct(t *testing.T, db DBLike, name, basePrice string, categoryID, promotionID *int64) int64 {
	t.Helper()

	var productID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (product_name, description, base_price, sku, category_id, promotion_id)
		VALUES ($1, '', $2::numeric, 100001, $3, $4)
		RETURNING product_id`,
		name, basePrice, categoryID, promotionID).Scan(&productID)
	require.NoError(t, err)

	return productID
}

// inserts the role and status rows the application expects to exist
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO roles (role_name) VALUES
		    ('Marketing Admin'),
		    ('Customer')
		ON CONFLICT (role_name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO statuses (status_id, status_name) VALUES
		    (1, 'ACTIVE'),
		    (2, 'EXPIRED'),
		    (3, 'SCHEDULED'),
		    (4, 'PENDING')
		ON CONFLICT (status_id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
