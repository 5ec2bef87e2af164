package contract

import (
	"context"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

type ITokenRepository interface {
	// CreateToken stores a hashed credential token.
	CreateToken(ctx context.Context, token *entity.Token) error
	// GetTokenByUserID retrieves the newest unrevoked token of the given type
	// for a user. Returns entity.ErrNotFound if absent.
	GetTokenByUserID(ctx context.Context, userID string, tokenType entity.TokenType) (*entity.Token, error)
	// GetTokenByVerifier retrieves a token by its verifier. Returns
	// entity.ErrNotFound if absent.
	GetTokenByVerifier(ctx context.Context, verifier string) (*entity.Token, error)
	// UpdateToken rewrites the hash and expiry of a stored token.
	UpdateToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	// RevokeToken marks a token as revoked. Revoking an already revoked token
	// is not an error.
	RevokeToken(ctx context.Context, id string) error
}
