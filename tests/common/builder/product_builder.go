//go:build unit || e2e

package builder

import (
	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/product"
	reqdto "petstore-backend/internal/handler/dto/request"
	"petstore-backend/internal/usecase"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID              int64
	Name            string
	Description     string
	BasePrice       decimal.Decimal
	SKU             int64
	Category        *category.Category
	PromotionID     *int64
	PromotionStatus string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          10,
		Name:        "Premium Kibble",
		Description: "Grain-free dry food",
		BasePrice:   decimal.RequireFromString("49.99"),
		SKU:         100045,
		Category:    NewCategoryBuilder().BuildDomain(),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildDomain() *product.Product {
	return &product.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		BasePrice:       p.BasePrice,
		SKU:             p.SKU,
		Category:        p.Category,
		PromotionID:     p.PromotionID,
		PromotionStatus: p.PromotionStatus,
	}
}

func (p *ProductBuilder) BuildDTO() reqdto.ProductRequest {
	req := reqdto.ProductRequest{
		ProductName: p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		SKU:         p.SKU,
		PromotionID: p.PromotionID,
	}
	if p.Category != nil {
		id := p.Category.ID
		req.CategoryID = &id
	}
	return req
}

func (p *ProductBuilder) BuildInput() usecase.ProductInput {
	req := p.BuildDTO()
	return req.ToInput()
}
