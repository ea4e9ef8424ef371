package api

import (
	"net/http"

	resdto "petstore-backend/internal/handler/dto/response"
	"petstore-backend/internal/handler/httperr"
	"petstore-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionUseCase usecase.PromotionUseCase
}

func NewPromotionHandler(promotionUseCase usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{
		promotionUseCase: promotionUseCase,
	}
}

// @Summary List active promotions
// @Description Promotions flagged ACTIVE whose date range contains today
// @Tags promotions
// @Produce json
// @Success 200 {array} resdto.PromotionDTO
// @Failure 500 {object} httperr.Response
// @Router /promotions [get]
func (h *PromotionHandler) ListActive(c *gin.Context) {
	list, err := h.promotionUseCase.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load active promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(list))
}

// @Summary List all promotions
// @Tags promotions
// @Produce json
// @Success 200 {array} resdto.PromotionDTO
// @Failure 500 {object} httperr.Response
// @Router /promotions/all [get]
func (h *PromotionHandler) ListAll(c *gin.Context) {
	list, err := h.promotionUseCase.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(list))
}

// @Summary List promotions of a category
// @Tags promotions
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} resdto.PromotionDTO
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /promotions/category/{categoryId} [get]
func (h *PromotionHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	list, err := h.promotionUseCase.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(list))
}

// @Summary List date-valid promotions
// @Description Promotions whose date range contains today, regardless of status
// @Tags promotions
// @Produce json
// @Success 200 {array} resdto.PromotionDTO
// @Failure 500 {object} httperr.Response
// @Router /promotions/valid [get]
func (h *PromotionHandler) ListValid(c *gin.Context) {
	list, err := h.promotionUseCase.ListValid(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load valid promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(list))
}

// @Summary Promotion service status
// @Tags promotions
// @Produce json
// @Success 200 {object} resdto.ServiceStatus
// @Router /promotions/status [get]
func (h *PromotionHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ServiceStatus{Status: "OK", Message: "Promotion service is running"})
}
