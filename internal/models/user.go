package models

import (
	"time"
)

// User represents an author or administrator. Authentication and session
// handling live outside this service; posts and settings only reference users
// by id.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"admin":  true,
	"editor": true,
	"viewer": true,
}

// IsAdmin reports whether the user may bypass publish visibility and moderate
// comments.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
