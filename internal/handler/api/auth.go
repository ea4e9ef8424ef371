package api

import (
	"log/slog"
	"net/http"

	"petstore-backend/internal/domain/auth"
	reqdto "petstore-backend/internal/handler/dto/request"
	resdto "petstore-backend/internal/handler/dto/response"
	"petstore-backend/internal/handler/httperr"
	"petstore-backend/internal/handler/middleware"
	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Marketing admin login
// @Description Login with email and password; only Marketing Admins may sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} resdto.LoginResponse
// @Failure 401 {object} resdto.LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, &resdto.LoginResponse{Success: false, Message: "Invalid request format"})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, &resdto.LoginResponse{Success: false, Message: "Invalid request data"})
		return
	}

	result, err := h.authUseCase.Authenticate(c.Request.Context(), credentials)
	if err != nil {
		_ = c.Error(err)
		switch {
		case errs.Is(err, usecase.ErrInvalidCredentials),
			errs.Is(err, usecase.ErrUserNotFound),
			errs.Is(err, usecase.ErrNotMarketingAdmin):
			c.JSON(http.StatusUnauthorized, resdto.LoginFailed())
		default:
			slog.Error("Login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, resdto.LoginFailed())
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Auth service status
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.ServiceStatus
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ServiceStatus{Status: "OK", Message: "Auth service is running"})
}

// @Summary Verify bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.TokenStatus
// @Failure 401 {object} httperr.Response
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || !principal.Authenticated {
		httperr.AbortWithError(c, http.StatusUnauthorized, auth.ErrAccessDenied, "Invalid or expired token", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.TokenStatus{
		Valid:   true,
		Email:   principal.Name,
		Role:    principal.Role,
		Message: "Token is valid",
	})
}

// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserDTO
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || !principal.Authenticated {
		httperr.AbortWithError(c, http.StatusUnauthorized, auth.ErrAccessDenied, "User not authenticated", nil)
		return
	}

	u, err := h.authUseCase.CurrentUser(c.Request.Context(), principal.Name)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if u == nil {
		httperr.AbortWithError(c, http.StatusNotFound, usecase.ErrUserNotFound, "User not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUser(u))
}
