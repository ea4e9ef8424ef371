package graphql

import (
	"strings"
	"time"

	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/usecase"

	"github.com/graph-gophers/graphql-go"
)

var inputDateLayouts = []string{dateLayout, "2006-01-02T15:04:05", time.RFC3339}

// PromotionInput mirrors the SDL input type. Absent fields stay nil.
type PromotionInput struct {
	PromotionName      *string
	Description        *string
	StartDate          *string
	EndDate            *string
	DiscountPercentage *float64
	StatusID           *graphql.ID
	UserID             *graphql.ID
	CategoryID         *graphql.ID
}

func (in PromotionInput) toUseCase() (usecase.PromotionInput, error) {
	out := usecase.PromotionInput{
		Name:          in.PromotionName,
		Description:   in.Description,
		DiscountValue: in.DiscountPercentage,
	}

	var err error
	if out.StartDate, err = parseDate(in.StartDate); err != nil {
		return usecase.PromotionInput{}, errs.Wrap(err, "startDate")
	}
	if out.EndDate, err = parseDate(in.EndDate); err != nil {
		return usecase.PromotionInput{}, errs.Wrap(err, "endDate")
	}
	if out.StatusID, err = parseIDPtr(in.StatusID); err != nil {
		return usecase.PromotionInput{}, errs.Wrap(err, "statusId")
	}
	if out.UserID, err = parseIDPtr(in.UserID); err != nil {
		return usecase.PromotionInput{}, errs.Wrap(err, "userId")
	}
	if out.CategoryID, err = parseIDPtr(in.CategoryID); err != nil {
		return usecase.PromotionInput{}, errs.Wrap(err, "categoryId")
	}
	return out, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, errs.Newf("invalid date %q, expected YYYY-MM-DD", v)
}
