package user

// User is a back-office account. Email is the login identity.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         *Role
}

func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

func (u *User) CanManagePromotions() bool {
	return u.Role != nil && u.Role.IsMarketingAdmin()
}
