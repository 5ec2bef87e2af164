package contract

import (
	"context"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

// IProductCache is an optional read-through cache in front of the product
// repository. A nil cache is valid and means caching is disabled.
type IProductCache interface {
	GetProducts(ctx context.Context, key string) ([]*entity.Product, bool, error)
	SetProducts(ctx context.Context, key string, products []*entity.Product) error
	Invalidate(ctx context.Context, key string) error
}
