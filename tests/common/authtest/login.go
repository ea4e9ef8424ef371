//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/handler/dto/request"
	"petstore-backend/internal/handler/dto/response"
	"petstore-backend/tests/common/dbtest"
	"petstore-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success, w.Body.String())
	require.NotEmpty(t, body.Token, "Token not found in login response")

	return body.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, "Test Admin", email, user.RoleMarketingAdmin)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}
