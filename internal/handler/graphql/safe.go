package graphql

import (
	"context"
	"log/slog"

	"petstore-backend/internal/domain/auth"
	"petstore-backend/internal/pkg/errs"
)

// safeList runs a read and converts any failure into an empty list.
func safeList[T any](ctx context.Context, logger *slog.Logger, op string, fetch func(context.Context) ([]T, error)) []T {
	list, err := fetch(ctx)
	if err != nil {
		logger.Error("GraphQL query failed", "operation", op, "error", err.Error())
		return []T{}
	}
	if list == nil {
		return []T{}
	}
	return list
}

// safeOne runs a single-item read and converts any failure into an absent value.
func safeOne[T any](ctx context.Context, logger *slog.Logger, op string, fetch func(context.Context) (*T, error)) *T {
	v, err := fetch(ctx)
	if err != nil {
		logger.Error("GraphQL query failed", "operation", op, "error", err.Error())
		return nil
	}
	return v
}

// safeMutation applies the Authorization Gate, then runs the write. Gate
// failures surface unchanged; every other failure is prefixed with failure.
func safeMutation[T any](ctx context.Context, logger *slog.Logger, failure string, run func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := auth.RequireAuthentication(ctx); err != nil {
		return zero, err
	}

	v, err := run(ctx)
	if err != nil {
		logger.Error(failure, "error", err.Error())
		return zero, errs.Wrap(err, failure)
	}
	return v, nil
}
