package contract

import (
	"context"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

type IProductRepository interface {
	// CreateProduct stores a new product. Returns entity.ErrDuplicateKey when
	// a product with the same ID already exists.
	CreateProduct(ctx context.Context, product *entity.Product) error
	// GetProductByID retrieves a product by ID. Returns entity.ErrNotFound if absent.
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
	// GetAllProducts returns products matching the filter (nil filter = all).
	GetAllProducts(ctx context.Context, filter *ProductFilter) ([]*entity.Product, error)
	// UpdateProduct replaces the stored product and returns the updated record.
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// DeleteProduct removes a product by ID. Returns entity.ErrNotFound if absent.
	DeleteProduct(ctx context.Context, id string) error
}

// ProductFilter narrows GetAllProducts results.
type ProductFilter struct {
	Category string
	Owner    string
}
