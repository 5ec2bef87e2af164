package contract

import (
	"context"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser stores a new user. Returns entity.ErrDuplicateKey when the
	// email is already registered.
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByID retrieves a user by ID. Returns entity.ErrNotFound if absent.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email. Returns entity.ErrNotFound if absent.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetAllUsers returns every stored user. No pagination; callers must not
	// assume a bounded result size.
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	// UpdateUser replaces the stored user and returns the updated record.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword rewrites the stored password hash for a user.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// DeleteUser removes a user by ID. Returns entity.ErrNotFound if absent.
	DeleteUser(ctx context.Context, id string) error
	// DeleteInactiveUsers removes every user whose last connection is older
	// than before and reports how many were removed. The sweep is a single
	// backend operation: it either completes or reports zero deletions.
	DeleteInactiveUsers(ctx context.Context, before time.Time) (int64, error)
}
