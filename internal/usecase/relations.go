package usecase

import (
	"context"

	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/errs"
)

// DanglingReferencePolicy decides what happens when an input names a
// relation id that does not resolve to a row.
type DanglingReferencePolicy int

const (
	// SkipDanglingReferences leaves the relation unset (or unchanged on update).
	SkipDanglingReferences DanglingReferencePolicy = iota
	// RejectDanglingReferences fails the write with errs.ErrDanglingReference.
	RejectDanglingReferences
)

func PolicyFromStrict(strict bool) DanglingReferencePolicy {
	if strict {
		return RejectDanglingReferences
	}
	return SkipDanglingReferences
}

// resolveOrNone looks id up with find. A nil id and a missing row both yield
// (nil, nil) under SkipDanglingReferences; storage faults always propagate.
func resolveOrNone[T any](
	ctx context.Context,
	id *int64,
	find func(context.Context, int64) (*T, error),
	policy DanglingReferencePolicy,
	relation string,
) (*T, error) {
	if id == nil {
		return nil, nil
	}

	found, err := find(ctx, *id)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(err, "resolve %s %d", relation, *id)
		}
		found = nil
	}

	if found == nil && policy == RejectDanglingReferences {
		return nil, errs.Mark(errs.Newf("%s %d does not exist", relation, *id), errs.ErrDanglingReference)
	}
	return found, nil
}
