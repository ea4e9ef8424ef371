package api

import (
	"net/http"

	reqdto "petstore-backend/internal/handler/dto/request"
	resdto "petstore-backend/internal/handler/dto/response"
	"petstore-backend/internal/handler/httperr"
	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
}

func NewProductHandler(productUseCase usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductDTO
// @Failure 500 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	list, err := h.productUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(list))
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.ProductDTO
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.productUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	if p == nil {
		notFound(c, "Product", id)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p))
}

// @Summary List products of a category
// @Tags products
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} resdto.ProductDTO
// @Failure 400 {object} httperr.Response
// @Router /products/category/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	list, err := h.productUseCase.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(list))
}

// @Summary Search products by name
// @Description Case-insensitive substring match; an empty name lists everything
// @Tags products
// @Produce json
// @Param name query string false "Name fragment"
// @Success 200 {array} resdto.ProductDTO
// @Router /products/search [get]
func (h *ProductHandler) Search(c *gin.Context) {
	list, err := h.productUseCase.SearchByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(list))
}

// @Summary List products in a price range
// @Tags products
// @Produce json
// @Param minPrice query number true "Minimum base price"
// @Param maxPrice query number true "Maximum base price"
// @Success 200 {array} resdto.ProductDTO
// @Failure 400 {object} httperr.Response
// @Router /products/price-range [get]
func (h *ProductHandler) ListByPriceRange(c *gin.Context) {
	minPrice, err := decimal.NewFromString(c.Query("minPrice"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "minPrice"), "Invalid minPrice", nil)
		return
	}
	maxPrice, err := decimal.NewFromString(c.Query("maxPrice"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "maxPrice"), "Invalid maxPrice", nil)
		return
	}

	list, err := h.productUseCase.ListByPriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load products")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(list))
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} resdto.ProductDTO
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	p, err := h.productUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProduct(p))
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 200 {object} resdto.ProductDTO
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	p, err := h.productUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to update product")
		return
	}
	if p == nil {
		notFound(c, "Product", id)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p))
}

// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.productUseCase.Delete(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to delete product")
		return
	}
	if !deleted {
		notFound(c, "Product", id)
		return
	}
	c.Status(http.StatusNoContent)
}
