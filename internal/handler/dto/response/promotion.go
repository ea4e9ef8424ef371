package response

import (
	"petstore-backend/internal/domain/promotion"

	"github.com/shopspring/decimal"
)

// PromotionDTO is the REST projection of a promotion. Dates are widened to
// the first and last second of their day.
type PromotionDTO struct {
	PromotionID        int64        `json:"promotionId"`
	PromotionName      string       `json:"promotionName"`
	Description        string       `json:"description"`
	StartDate          *DateTime    `json:"startDate"`
	EndDate            *DateTime    `json:"endDate"`
	DiscountPercentage Decimal      `json:"discountPercentage"`
	Status             string       `json:"status"`
	Category           *CategoryDTO `json:"category"`
	// always null: promotions reach products only through their category
	Product *ProductDTO `json:"product"`
}

func FromPromotion(p *promotion.Promotion) *PromotionDTO {
	if p == nil {
		return nil
	}
	return &PromotionDTO{
		PromotionID:        p.ID,
		PromotionName:      p.Name,
		Description:        p.Description,
		StartDate:          startOfDay(p.StartDate),
		EndDate:            endOfDay(p.EndDate),
		DiscountPercentage: NewDecimal(decimal.NewFromFloat(p.DiscountValue)),
		Status:             p.StatusName(),
		Category:           FromCategory(p.Category),
	}
}

func FromPromotions(list []*promotion.Promotion) []*PromotionDTO {
	res := make([]*PromotionDTO, len(list))
	for i, p := range list {
		res[i] = FromPromotion(p)
	}
	return res
}

type ServiceStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
