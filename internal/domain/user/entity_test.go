//go:build unit

package user_test

import (
	"testing"

	"petstore-backend/internal/domain/user"
	"petstore-backend/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestUser_CanManagePromotions(t *testing.T) {
	tests := []struct {
		name string
		u    *user.User
		want bool
	}{
		{name: "marketing admin", u: builder.NewUserBuilder().BuildDomain(), want: true},
		{name: "customer", u: builder.NewUserBuilder().AsCustomer().BuildDomain(), want: false},
		{name: "no role", u: builder.NewUserBuilder().WithoutRole().BuildDomain(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.u.CanManagePromotions())
		})
	}
}

func TestUser_RoleName(t *testing.T) {
	assert.Equal(t, user.RoleMarketingAdmin, builder.NewUserBuilder().BuildDomain().RoleName())
	assert.Empty(t, builder.NewUserBuilder().WithoutRole().BuildDomain().RoleName())
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{in: "admin@petstore.com", valid: true},
		{in: "first.last+tag@pets.co.uk", valid: true},
		{in: "", valid: false},
		{in: "invalid-email", valid: false},
		{in: "missing-at.com", valid: false},
		{in: "a@b", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := user.NewEmail(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
			}
		})
	}
}
