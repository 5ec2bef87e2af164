package usecase

import (
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

// JWTService issues and verifies the session tokens that carry a Principal
// between requests.
type JWTService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ParseAccessToken(tokenStr string) (*entity.Claims, error)
	ParseRefreshToken(tokenStr string) (*entity.Claims, error)
}
