package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

// FSProductRepository stores the whole product collection as one JSON file.
// Every operation is a whole-file read-modify-write guarded by an in-process
// mutex. Concurrent writers from other processes are not safe against this
// store; run a single process per data directory.
type FSProductRepository struct {
	path string
	mu   sync.Mutex
}

var _ contract.IProductRepository = (*FSProductRepository)(nil)

func NewFSProductRepository(path string) *FSProductRepository {
	return &FSProductRepository{path: path}
}

func (r *FSProductRepository) load() ([]*entity.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*entity.Product{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return []*entity.Product{}, nil
	}
	var products []*entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return products, nil
}

func (r *FSProductRepository) save(products []*entity.Product) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}

func (r *FSProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.ID == product.ID {
			return entity.ErrDuplicateKey
		}
	}
	products = append(products, product)
	return r.save(products)
}

func (r *FSProductRepository) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *FSProductRepository) GetAllProducts(ctx context.Context, filter *contract.ProductFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return products, nil
	}
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Owner != "" && p.Owner != filter.Owner {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (r *FSProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for i, p := range products {
		if p.ID == product.ID {
			product.UpdatedAt = time.Now()
			products[i] = product
			if err := r.save(products); err != nil {
				return nil, err
			}
			return product, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *FSProductRepository) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == id {
			products = append(products[:i], products[i+1:]...)
			return r.save(products)
		}
	}
	return entity.ErrNotFound
}
