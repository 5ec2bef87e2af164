package jwt

import (
	"fmt"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL = 15 * time.Minute
	// Refresh token lifetime is enforced against the stored token's expiry;
	// the JWT exp here is a backstop.
	refreshTokenTTL = 7 * 24 * time.Hour

	audienceAccess  = "access"
	audienceRefresh = "refresh"
)

// JWTManager signs and verifies HMAC session tokens.
type JWTManager struct {
	secret []byte
}

// NewJWTManager creates a manager signing with the given secret.
func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// GenerateAccessToken issues a short-lived token carrying the principal's
// identity, role and premium flag.
func (m *JWTManager) GenerateAccessToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &entity.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Premium: user.Premium,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Audience:  jwt.ClaimStrings{audienceAccess},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// GenerateRefreshToken issues a long-lived token used only to mint new access
// tokens. It carries no role so a stale role can never be replayed from it.
func (m *JWTManager) GenerateRefreshToken(userID string) (string, error) {
	now := time.Now()
	claims := &entity.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{audienceRefresh},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyToken parses a token and checks its signature and audience.
func (m *JWTManager) VerifyToken(tokenStr, audience string) (*entity.Claims, error) {
	claims := &entity.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithAudience(audience))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
