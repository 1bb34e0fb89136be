package actor

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role identifies who is calling the API: architects post RFQs,
// suppliers respond to them, admins operate the platform.
type Role string

const (
	RoleArchitect Role = "architect"
	RoleSupplier  Role = "supplier"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleArchitect, RoleSupplier, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
