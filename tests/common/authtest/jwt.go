//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/pkg/config"
	"petstore-backend/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration, h.cfg.Issuer)
}

func (h *JWTHelper) GenerateToken(t *testing.T, email string, userID int64, role string) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(email, userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T, email string, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, email, userID, user.RoleMarketingAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, email string, userID int64, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, h.cfg.Issuer)
	token, err := service.GenerateToken(email, userID, role)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}
