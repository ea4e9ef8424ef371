package repository

import (
	"context"

	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/pgconv"
)

const userSelect = `
SELECT u.user_id, u.user_name, u.email, u.password_hash, r.role_id, r.role_name
FROM users u
LEFT JOIN roles r ON r.role_id = u.role_id`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.one(ctx, "find user by ID", userSelect+` WHERE u.user_id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.one(ctx, "find user by email", userSelect+` WHERE u.email = $1`, email)
}

func (r *UserRepository) FindMarketingAdminByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.one(ctx, "find marketing admin by email",
		userSelect+` WHERE u.email = $1 AND r.role_name = $2`, email, user.RoleMarketingAdmin)
}

func (r *UserRepository) one(ctx context.Context, op, query string, args ...any) (*user.User, error) {
	var row userRow
	if err := r.db.QueryRow(ctx, query, args...).Scan(row.dest()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to "+op, err)
	}
	return row.toDomain(), nil
}
