package product

import (
	"errors"
	"strings"

	"petstore-backend/internal/domain/category"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNegativePrice = errors.New("product base price must not be negative")
	ErrInvalidRange  = errors.New("minimum price must not exceed maximum price")
)

type Product struct {
	ID          int64
	Name        string
	Description string
	BasePrice   decimal.Decimal
	SKU         int64
	Category    *category.Category
	PromotionID *int64
	// status name of the linked promotion, empty when there is none
	PromotionStatus string
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.BasePrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func (p *Product) CategoryID() *int64 {
	if p.Category == nil {
		return nil
	}
	id := p.Category.ID
	return &id
}

// PriceRange is an inclusive base-price filter.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func NewPriceRange(minPrice, maxPrice decimal.Decimal) (PriceRange, error) {
	if minPrice.GreaterThan(maxPrice) {
		return PriceRange{}, ErrInvalidRange
	}
	if minPrice.IsNegative() {
		return PriceRange{}, ErrNegativePrice
	}
	return PriceRange{Min: minPrice, Max: maxPrice}, nil
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	return !price.LessThan(r.Min) && !price.GreaterThan(r.Max)
}
