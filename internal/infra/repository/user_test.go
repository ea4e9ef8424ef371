//go:build unit

package repository

import (
	"context"
	"testing"

	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindMarketingAdminByEmail(t *testing.T) {
	t.Run("filters on role name", func(t *testing.T) {
		db := new(mockDBTX)
		db.On("QueryRow", mock.Anything, sqlContaining("r.role_name = $2"), []any{"admin@petstore.com", user.RoleMarketingAdmin}).
			Return(fakeRow{values: []any{
				int64(1), "Admin", "admin@petstore.com", "$2a$10$hash",
				pgtype.Int8{Int64: 1, Valid: true}, pgtype.Text{String: user.RoleMarketingAdmin, Valid: true},
			}}).Once()

		got, err := NewUserRepository(db).FindMarketingAdminByEmail(context.Background(), "admin@petstore.com")
		require.NoError(t, err)
		assert.Equal(t, "Admin", got.Name)
		assert.True(t, got.CanManagePromotions())
		db.AssertExpectations(t)
	})

	t.Run("unknown or non-admin user is NOT_FOUND", func(t *testing.T) {
		db := new(mockDBTX)
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := NewUserRepository(db).FindMarketingAdminByEmail(context.Background(), "customer@petstore.com")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
