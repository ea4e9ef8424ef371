//go:build unit || e2e

package builder

import (
	"petstore-backend/internal/domain/category"
	reqdto "petstore-backend/internal/handler/dto/request"
)

type CategoryBuilder struct {
	ID          int64
	Name        string
	Description string
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		ID:          5,
		Name:        "Dog Food",
		Description: "Food and treats for dogs",
	}
}

func (c *CategoryBuilder) With(mutate func(*CategoryBuilder)) *CategoryBuilder {
	mutate(c)
	return c
}

func (c *CategoryBuilder) BuildDomain() *category.Category {
	return &category.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func (c *CategoryBuilder) BuildDTO() reqdto.CategoryRequest {
	return reqdto.CategoryRequest{
		CategoryName: c.Name,
		Description:  c.Description,
	}
}
