package domain

import "fmt"

type Role string

const (
	RoleClient          Role = "client"
	RoleRestaurantAdmin Role = "restaurant_admin"
	RoleSystemAdmin     Role = "system_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleRestaurantAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleRestaurantAdmin || r == RoleSystemAdmin
}

func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
	}
	return role, nil
}
