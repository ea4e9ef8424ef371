package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"petstore-backend/internal/domain/auth"
	"petstore-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": auth.ErrAccessDenied.Error()},
			})
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth attaches the caller's principal when a valid token is present
// and the anonymous principal otherwise. It never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.Anonymous()

		if token := bearerToken(c); token != "" {
			p, err := m.tokenValidator.ValidateToken(token)
			if err != nil {
				slog.Debug("Ignoring invalid token on optional auth route", "error", err.Error())
			} else {
				principal = p
			}
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal attached by RequireAuth or OptionalAuth.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	return auth.PrincipalFrom(c.Request.Context())
}

func setPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
