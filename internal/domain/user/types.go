package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// CanManageOrders reports whether the role may drive order status transitions.
func (r Role) CanManageOrders() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
