package request

type CategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required,max=255"`
	Description  string `json:"description" binding:"max=1000"`
}
