package entity

// Role represents the access level of a user account.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleNormal     Role = "normal"
	RoleStoreOwner Role = "store_owner"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleNormal, RoleStoreOwner:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
