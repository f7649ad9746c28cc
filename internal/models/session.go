package models

import "time"

// RoleRef mirrors the role object attached to an upstream identity.
type RoleRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Identity is the current user as reported by the platform API.
type Identity struct {
	ID          int      `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"name,omitempty"`
	Role        *RoleRef `json:"role,omitempty"`
}

// RoleName returns the role's lookup key or "" for identities without one.
func (i *Identity) RoleName() string {
	if i == nil || i.Role == nil {
		return ""
	}
	return i.Role.Name
}

// Session is the server-side record behind the browser cookie. The upstream
// bearer token never leaves this record; the cookie only carries the ID.
type Session struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Identity   *Identity `json:"identity,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginRequest holds credentials relayed to the platform API.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
