package user

// RoleMarketingAdmin is the only role allowed to sign in.
const RoleMarketingAdmin = "Marketing Admin"

type Role struct {
	ID   int64
	Name string
}

func (r Role) String() string {
	return r.Name
}

func (r Role) IsMarketingAdmin() bool {
	return r.Name == RoleMarketingAdmin
}
