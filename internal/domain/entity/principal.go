package entity

import "github.com/golang-jwt/jwt/v5"

// Principal is the authenticated identity attached to a request for its
// lifetime. It is populated by the authentication middleware from a verified
// access token and never persisted on its own.
type Principal struct {
	UserID   string
	Email    string
	Role     UserRole
	Premium  bool
	Provider string
}

// IsAdmin reports whether the principal may reach admin-gated operations.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == UserRoleAdmin
}

// Claims are the JWT claims carried by access and refresh tokens.
type Claims struct {
	UserID  string   `json:"uid"`
	Email   string   `json:"email,omitempty"`
	Role    UserRole `json:"role,omitempty"`
	Premium bool     `json:"premium,omitempty"`
	jwt.RegisteredClaims
}
