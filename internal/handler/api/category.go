package api

import (
	"net/http"

	reqdto "petstore-backend/internal/handler/dto/request"
	resdto "petstore-backend/internal/handler/dto/response"
	"petstore-backend/internal/handler/httperr"
	"petstore-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryDTO
// @Failure 500 {object} httperr.Response
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.categoryUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load categories", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategories(list))
}

// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} resdto.CategoryDTO
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cat, err := h.categoryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category", nil)
		return
	}
	if cat == nil {
		notFound(c, "Category", id)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategory(cat))
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} resdto.CategoryDTO
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	cat, err := h.categoryUseCase.Create(c.Request.Context(), req.CategoryName, req.Description)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCategory(cat))
}

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 200 {object} resdto.CategoryDTO
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	cat, err := h.categoryUseCase.Update(c.Request.Context(), id, req.CategoryName, req.Description)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to update category")
		return
	}
	if cat == nil {
		notFound(c, "Category", id)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategory(cat))
}

// @Summary Delete category
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.categoryUseCase.Delete(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to delete category")
		return
	}
	if !deleted {
		notFound(c, "Category", id)
		return
	}
	c.Status(http.StatusNoContent)
}
