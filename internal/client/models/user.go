package models

import "strings"

// Role names exactly as the backend spells them.
type Role string

const (
	RoleAdmin  Role = "Administrador"
	RoleClient Role = "Cliente"
)

// ParseRole normalises case and surrounding spaces. Unknown values are
// returned unchanged so callers can still log them.
func ParseRole(s string) Role {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(RoleAdmin)):
		return RoleAdmin
	case strings.EqualFold(s, string(RoleClient)):
		return RoleClient
	default:
		return Role(s)
	}
}

// Known reports whether r is one of the two storefront roles.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleClient
}

// Credentials is the login / register payload.
type Credentials struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Password string `json:"password"`
}

// User is the profile returned by GET /api/users/me.
type User struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Rol      Role   `json:"rol"`
}
