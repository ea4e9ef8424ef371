package usecase

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=usecasemock

import (
	"context"
	"log/slog"

	"petstore-backend/internal/domain/auth"
	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/errs"
	"petstore-backend/internal/pkg/jwt"
	"petstore-backend/internal/pkg/password"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrNotMarketingAdmin  = errs.New("user is not a marketing admin")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type LoginResult struct {
	Token string
	User  *user.User
}

type AuthUseCase interface {
	// Authenticate signs in a Marketing Admin and issues a bearer token.
	Authenticate(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	// CurrentUser returns (nil, nil) when no user has that email.
	CurrentUser(ctx context.Context, email string) (*user.User, error)
	ValidateToken(tokenString string) (auth.Principal, error)
}

type authUseCaseImpl struct {
	users      UserRepository
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthUseCase(users UserRepository, jwtService *jwt.Service, logger *slog.Logger) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authUseCaseImpl) Authenticate(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	u, err := a.users.FindMarketingAdminByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "find marketing admin")
	}

	if !u.CanManagePromotions() {
		return nil, ErrNotMarketingAdmin
	}

	if err := password.ComparePassword(u.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(u.Email, u.ID, u.RoleName())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.logger.Info("Marketing admin authenticated", "user_id", u.ID)
	return &LoginResult{Token: token, User: u}, nil
}

func (a *authUseCaseImpl) CurrentUser(ctx context.Context, email string) (*user.User, error) {
	u, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "find current user")
	}
	return u, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (auth.Principal, error) {
	return principalFromToken(a.jwtService, tokenString)
}

func principalFromToken(svc *jwt.Service, tokenString string) (auth.Principal, error) {
	claims, err := svc.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, errs.Mark(err, ErrTokenValidation)
	}

	return auth.Principal{
		Name:          claims.Subject,
		UserID:        claims.UserID,
		Role:          claims.Role,
		Authenticated: true,
	}, nil
}
