package domain

import "time"

// Role enumerates the access levels in the system, from global to read-only.
type Role string

const (
	RoleMaster   Role = "MASTER"
	RoleManager  Role = "MANAGER"
	RoleStandard Role = "STANDARD"
	RoleObserver Role = "OBSERVER"
)

// ValidRole reports whether the value is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleMaster, RoleManager, RoleStandard, RoleObserver:
		return true
	}
	return false
}

// User is an account that can authenticate and own events.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	UnitID       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
