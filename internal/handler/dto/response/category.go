package response

import (
	"petstore-backend/internal/domain/category"

	"github.com/jinzhu/copier"
)

type CategoryDTO struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

var categoryCopyOption = copier.Option{
	FieldNameMapping: []copier.FieldNameMapping{{
		SrcType: category.Category{},
		DstType: CategoryDTO{},
		Mapping: map[string]string{"ID": "CategoryID", "Name": "CategoryName"},
	}},
}

func FromCategory(c *category.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	var dto CategoryDTO
	if err := copier.CopyWithOption(&dto, c, categoryCopyOption); err != nil {
		return &CategoryDTO{CategoryID: c.ID, CategoryName: c.Name, Description: c.Description}
	}
	return &dto
}

func FromCategories(list []*category.Category) []*CategoryDTO {
	res := make([]*CategoryDTO, len(list))
	for i, c := range list {
		res[i] = FromCategory(c)
	}
	return res
}
