//go:build unit || e2e

package builder

import (
	"petstore-backend/internal/domain/user"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RoleID       int64
	RoleName     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Name:         "Marketing Admin",
		Email:        "admin@petstore.com",
		PasswordHash: "hashed_password",
		RoleID:       1,
		RoleName:     user.RoleMarketingAdmin,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	var role *user.Role
	if u.RoleName != "" {
		role = &user.Role{ID: u.RoleID, Name: u.RoleName}
	}
	return &user.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(roleID int64, roleName string) *UserBuilder {
	u.RoleID = roleID
	u.RoleName = roleName
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsCustomer() *UserBuilder {
	return u.WithRole(2, "Customer")
}

func (u *UserBuilder) WithoutRole() *UserBuilder {
	u.RoleName = ""
	return u
}
