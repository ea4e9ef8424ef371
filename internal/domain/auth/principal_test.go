//go:build unit

package auth_test

import (
	"context"
	"testing"

	"petstore-backend/internal/domain/auth"
	"petstore-backend/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuthentication(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		allowed bool
	}{
		{
			name: "no principal in context",
			ctx:  context.Background(),
		},
		{
			name: "anonymous principal",
			ctx:  auth.WithPrincipal(context.Background(), auth.Anonymous()),
		},
		{
			name: "anonymous name even when flagged authenticated",
			ctx: auth.WithPrincipal(context.Background(), auth.Principal{
				Name: auth.AnonymousPrincipal, Authenticated: true,
			}),
		},
		{
			name: "authenticated but empty name",
			ctx:  auth.WithPrincipal(context.Background(), auth.Principal{Authenticated: true}),
		},
		{
			name: "named principal without authentication flag",
			ctx:  auth.WithPrincipal(context.Background(), auth.Principal{Name: "admin@petstore.com"}),
		},
		{
			name: "authenticated named principal",
			ctx: auth.WithPrincipal(context.Background(), auth.Principal{
				Name: "admin@petstore.com", UserID: 1, Role: user.RoleMarketingAdmin, Authenticated: true,
			}),
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.RequireAuthentication(tt.ctx)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, auth.ErrAccessDenied)
		})
	}
}

func TestPrincipalFrom(t *testing.T) {
	_, ok := auth.PrincipalFrom(context.Background())
	assert.False(t, ok)

	want := auth.Principal{Name: "admin@petstore.com", UserID: 7, Authenticated: true}
	got, ok := auth.PrincipalFrom(auth.WithPrincipal(context.Background(), want))
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.False(t, got.IsAnonymous())
	assert.True(t, auth.Anonymous().IsAnonymous())
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := auth.NewCredentials(" admin@petstore.com ", "secret")
		require.NoError(t, err)
		assert.Equal(t, "admin@petstore.com", c.Email().Value())
		assert.Equal(t, "secret", c.Password().Value())
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := auth.NewCredentials("not-an-email", "secret")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := auth.NewCredentials("admin@petstore.com", "")
		assert.ErrorIs(t, err, user.ErrEmptyPassword)
	})
}
