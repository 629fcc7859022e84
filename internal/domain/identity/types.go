package identity

import "strings"

type Role string

const (
	RoleStudent        Role = "STUDENT"
	RoleEmployee       Role = "EMPLOYEE"
	RoleOrdinary       Role = "ORDINARY"
	RoleEiffelBikeCorp Role = "EIFFEL_BIKE_CORP"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleEmployee, RoleOrdinary, RoleEiffelBikeCorp:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// NormalizeRole keeps unknown roles intact so the backend can introduce new
// ones without breaking the client; gating simply never matches them.
func NormalizeRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}
