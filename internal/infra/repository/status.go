package repository

import (
	"context"
	"fmt"

	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/pgconv"
)

type StatusRepository struct {
	db DBTX
}

func NewStatusRepository(db DBTX) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) FindByID(ctx context.Context, id int64) (*promotion.Status, error) {
	s := &promotion.Status{}
	err := r.db.QueryRow(ctx, `SELECT status_id, status_name FROM statuses WHERE status_id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("status %d not found", id), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find status by ID", err)
	}
	return s, nil
}
