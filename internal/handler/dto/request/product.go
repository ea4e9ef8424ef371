package request

import (
	"petstore-backend/internal/usecase"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	ProductName string          `json:"productName" binding:"required,max=255"`
	Description string          `json:"description" binding:"max=1000"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	SKU         int64           `json:"sku"`
	CategoryID  *int64          `json:"categoryId"`
	PromotionID *int64          `json:"promotionId"`
}

func (r *ProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.ProductName,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		SKU:         r.SKU,
		CategoryID:  r.CategoryID,
		PromotionID: r.PromotionID,
	}
}
