package entity

import "time"

// TokenType discriminates stored credential tokens.
type TokenType string

const (
	TokenTypeRefresh       TokenType = "refresh"
	TokenTypePasswordReset TokenType = "password_reset"
)

// Token is a stored, hashed credential token (refresh session or password
// reset). The plain token never touches the database; only its hash does.
type Token struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenType TokenType `bson:"token_type" json:"token_type"`
	TokenHash string    `bson:"token_hash" json:"-"`
	Verifier  string    `bson:"verifier" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	Revoked   bool      `bson:"revoked" json:"revoked"`
}
