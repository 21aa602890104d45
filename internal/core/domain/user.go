package domain

import "time"

// Roles in ascending order of privilege.
const (
	RoleWorker     = "worker"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleWorker || role == RoleSupervisor || role == RoleAdmin
}

// User models an account in the system. Accounts are never hard-deleted;
// suspension flips Active to false and only takes effect at the next login.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsElevated reports whether the user holds a supervisor or admin role.
func (u *User) IsElevated() bool {
	return u.Role == RoleSupervisor || u.Role == RoleAdmin
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
