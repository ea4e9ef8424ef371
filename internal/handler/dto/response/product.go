package response

import (
	"petstore-backend/internal/domain/product"
)

type ProductDTO struct {
	ProductID   int64        `json:"productId"`
	ProductName string       `json:"productName"`
	Description string       `json:"description"`
	BasePrice   Decimal      `json:"basePrice"`
	SKU         int64        `json:"sku"`
	Category    *CategoryDTO `json:"category"`
	PromotionID *int64       `json:"promotionId"`
	// status of the linked promotion
	Status string `json:"status,omitempty"`
}

func FromProduct(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ProductID:   p.ID,
		ProductName: p.Name,
		Description: p.Description,
		BasePrice:   NewDecimal(p.BasePrice),
		SKU:         p.SKU,
		Category:    FromCategory(p.Category),
		PromotionID: p.PromotionID,
		Status:      p.PromotionStatus,
	}
}

func FromProducts(list []*product.Product) []*ProductDTO {
	res := make([]*ProductDTO, len(list))
	for i, p := range list {
		res[i] = FromProduct(p)
	}
	return res
}
