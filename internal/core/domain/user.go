package domain

import "time"

// Role is the capability level of a user.
type Role string

const (
	RoleAccountant Role = "ACCOUNTANT"
	RoleManager    Role = "MANAGER"
	RoleBoss       Role = "BOSS"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAccountant, RoleManager, RoleBoss:
		return true
	}
	return false
}

// User represents an application user.
type User struct {
	UserID       string    `json:"userID"` // Primary key (UUID)
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Email        string    `json:"email,omitempty"` // Optional, unique when present
	CreatedAt    time.Time `json:"createdAt"`
}

// Actor is the identity under which a core operation runs. It is established
// by the authentication boundary and passed explicitly into every service
// call; the core never reads ambient security state.
type Actor struct {
	UserID   string
	Username string
	Role     Role
}
