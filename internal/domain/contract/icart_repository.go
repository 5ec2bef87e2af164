package contract

import (
	"context"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

type ICartRepository interface {
	// CreateCart stores a new cart. Returns entity.ErrDuplicateKey when a cart
	// with the same ID already exists.
	CreateCart(ctx context.Context, cart *entity.Cart) error
	// GetCartByID retrieves a cart by ID. Returns entity.ErrNotFound if absent.
	GetCartByID(ctx context.Context, id string) (*entity.Cart, error)
	// GetAllCarts returns every stored cart.
	GetAllCarts(ctx context.Context) ([]*entity.Cart, error)
	// UpdateCart replaces the stored cart and returns the updated record.
	UpdateCart(ctx context.Context, cart *entity.Cart) (*entity.Cart, error)
	// DeleteCart removes a cart by ID. Returns entity.ErrNotFound if absent.
	DeleteCart(ctx context.Context, id string) error
}
