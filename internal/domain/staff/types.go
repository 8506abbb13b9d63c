package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

// Role is carried in staff access tokens. Staff accounts themselves live in
// the identity service; this service only needs the role for authorization.
type Role string

const (
	RoleFrontDesk Role = "front_desk"
	RoleManager   Role = "manager"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleFrontDesk, RoleManager:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
