//go:build unit || e2e

package builder

import (
	"time"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/usecase"
)

type PromotionBuilder struct {
	ID            int64
	Name          string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	DiscountValue float64
	Status        *promotion.Status
	Category      *category.Category
	User          *user.User
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:            1,
		Name:          "Spring Sale",
		Description:   "Seasonal discount on dog food",
		StartDate:     Date(2024, time.March, 1),
		EndDate:       Date(2024, time.March, 31),
		DiscountValue: 15,
		Status:        &promotion.Status{ID: 1, Name: promotion.StatusActive},
		Category:      NewCategoryBuilder().BuildDomain(),
		User:          NewUserBuilder().BuildDomain(),
	}
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) WithStatus(id int64, name string) *PromotionBuilder {
	p.Status = &promotion.Status{ID: id, Name: name}
	return p
}

func (p *PromotionBuilder) WithDates(start, end time.Time) *PromotionBuilder {
	p.StartDate = start
	p.EndDate = end
	return p
}

func (p *PromotionBuilder) BuildDomain() *promotion.Promotion {
	return &promotion.Promotion{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		DiscountValue: p.DiscountValue,
		Status:        p.Status,
		Category:      p.Category,
		User:          p.User,
	}
}

// BuildInput fills every field, relations included.
func (p *PromotionBuilder) BuildInput() usecase.PromotionInput {
	in := usecase.PromotionInput{
		Name:          &p.Name,
		Description:   &p.Description,
		StartDate:     &p.StartDate,
		EndDate:       &p.EndDate,
		DiscountValue: &p.DiscountValue,
	}
	if p.Status != nil {
		in.StatusID = &p.Status.ID
	}
	if p.User != nil {
		in.UserID = &p.User.ID
	}
	if p.Category != nil {
		in.CategoryID = &p.Category.ID
	}
	return in
}
