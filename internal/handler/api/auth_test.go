//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"petstore-backend/internal/domain/auth"
	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/handler/api"
	resdto "petstore-backend/internal/handler/dto/response"
	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/usecase"
	"petstore-backend/tests/common/builder"
	"petstore-backend/tests/common/httptest"
	"petstore-backend/tests/common/testutil"
	usecasemock "petstore-backend/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)

	// stands in for the bearer-token middleware
	withPrincipal := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			p := builder.NewAuthBuilder().BuildPrincipal(1, user.RoleMarketingAdmin)
			c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		}
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/status", s.handler.Status)
	s.router.GET("/auth/verify", withPrincipal, s.handler.Verify)
	s.router.GET("/auth/me", withPrincipal, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	admin := builder.NewUserBuilder().BuildDomain()

	s.Run("success: returns token and profile", func() {
		s.mockUseCase.EXPECT().Authenticate(gomock.Any(), builder.NewAuthBuilder().BuildCredentials()).
			Return(&usecase.LoginResult{Token: "signed-token", User: admin}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("signed-token", body.Token)
		s.Equal(admin.ID, body.UserID)
		s.Equal(admin.Email, body.Email)
		s.Equal(user.RoleMarketingAdmin, body.Role)
		s.Equal(resdto.LoginSucceededMessage, body.Message)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "empty email", mutate: testutil.Field("email", "")},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")

				var body resdto.LoginResponse
				s.Equal(http.StatusBadRequest, rec.Code)
				s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				s.False(body.Success)
			})
		}
	})

	s.Run("error: failures collapse to one message", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "invalid credentials", err: errs.Mark(errors.New("mismatch"), usecase.ErrInvalidCredentials), expectCode: http.StatusUnauthorized},
			{name: "user not found", err: usecase.ErrUserNotFound, expectCode: http.StatusUnauthorized},
			{name: "not a marketing admin", err: usecase.ErrNotMarketingAdmin, expectCode: http.StatusUnauthorized},
			{name: "storage fault", err: errors.New("db down"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				var body resdto.LoginResponse
				s.Equal(tc.expectCode, rec.Code)
				s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				s.False(body.Success)
				s.Empty(body.Token)
				s.Equal(resdto.LoginFailedMessage, body.Message)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestStatus() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/status", nil, "")

	var body resdto.ServiceStatus
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("Auth service is running", body.Message)
}

func (s *AuthHandlerTestSuite) TestVerify() {
	s.Run("success", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/verify", nil, "bearer-token")

		var body resdto.TokenStatus
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal("admin@petstore.com", body.Email)
	})

	s.Run("error: no principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/verify", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user info", func() {
		u := builder.NewUserBuilder().BuildDomain()
		s.mockUseCase.EXPECT().CurrentUser(gomock.Any(), "admin@petstore.com").Return(u, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(u.Email, body["email"])
		s.NotContains(body, "passwordHash")
	})

	s.Run("error: 401 without principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 404 when the user is gone", func() {
		s.mockUseCase.EXPECT().CurrentUser(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 500 on storage fault", func() {
		s.mockUseCase.EXPECT().CurrentUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
