package entity

import (
	"time"
)

// User represents a registered account in the store
type User struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Role           UserRole  `bson:"role" json:"role"`
	Premium        bool      `bson:"premium" json:"premium"`
	Provider       *string   `bson:"provider,omitempty" json:"provider,omitempty"`
	ProviderID     *string   `bson:"provider_id,omitempty" json:"provider_id,omitempty"`
	FirstName      *string   `bson:"firstname,omitempty" json:"firstname,omitempty"`
	LastName       *string   `bson:"lastname,omitempty" json:"lastname,omitempty"`
	CartID         *string   `bson:"cart_id,omitempty" json:"cart_id,omitempty"`
	LastConnection time.Time `bson:"last_connection" json:"last_connection"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// Federated identity providers the store accepts assertions from.
const (
	ProviderGitHub = "github"
	ProviderGoogle = "google"
)

// PublicUser is the projection of a User safe to return to callers.
type PublicUser struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Role           UserRole  `json:"role"`
	Premium        bool      `json:"premium"`
	LastConnection time.Time `json:"last_connection"`
}

// Public strips credentials and provider linkage from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Email:          u.Email,
		Role:           u.Role,
		Premium:        u.Premium,
		LastConnection: u.LastConnection,
	}
}
