//go:build unit || e2e

package builder

import (
	"petstore-backend/internal/domain/auth"
	reqdto "petstore-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "admin@petstore.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	credentials, err := auth.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return credentials
}

func (a *AuthBuilder) BuildPrincipal(userID int64, role string) auth.Principal {
	return auth.Principal{
		Name:          a.Email,
		UserID:        userID,
		Role:          role,
		Authenticated: true,
	}
}
