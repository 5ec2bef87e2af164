package usecasecontract

import (
	"context"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

// IUserUseCase defines the account operations reachable once the gate admits
// a request.
type IUserUseCase interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	LoginWithOAuth(ctx context.Context, provider, providerID, email, firstName, lastName string) (*entity.User, string, string, error)
	Logout(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.PublicUser, error)
	GetAllUsers(ctx context.Context) ([]entity.PublicUser, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	ResetPass(ctx context.Context, email string) error
	UpdatePass(ctx context.Context, verifier, resetToken, newPassword string) error
	TogglePremium(ctx context.Context, userID string) (*entity.User, error)
	DeleteInactive(ctx context.Context) (int64, error)
	DeleteUser(ctx context.Context, userID string) error
}
