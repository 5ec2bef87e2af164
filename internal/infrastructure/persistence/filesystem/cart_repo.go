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

// FSCartRepository stores the whole cart collection as one JSON file. Same
// single-process caveat as FSProductRepository.
type FSCartRepository struct {
	path string
	mu   sync.Mutex
}

var _ contract.ICartRepository = (*FSCartRepository)(nil)

func NewFSCartRepository(path string) *FSCartRepository {
	return &FSCartRepository{path: path}
}

func (r *FSCartRepository) load() ([]*entity.Cart, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*entity.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return []*entity.Cart{}, nil
	}
	var carts []*entity.Cart
	if err := json.Unmarshal(data, &carts); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return carts, nil
}

func (r *FSCartRepository) save(carts []*entity.Cart) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(carts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}

func (r *FSCartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts, err := r.load()
	if err != nil {
		return err
	}
	for _, c := range carts {
		if c.ID == cart.ID {
			return entity.ErrDuplicateKey
		}
	}
	carts = append(carts, cart)
	return r.save(carts)
}

func (r *FSCartRepository) GetCartByID(ctx context.Context, id string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, c := range carts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *FSCartRepository) GetAllCarts(ctx context.Context) ([]*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FSCartRepository) UpdateCart(ctx context.Context, cart *entity.Cart) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i, c := range carts {
		if c.ID == cart.ID {
			cart.UpdatedAt = time.Now()
			carts[i] = cart
			if err := r.save(carts); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *FSCartRepository) DeleteCart(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts, err := r.load()
	if err != nil {
		return err
	}
	for i, c := range carts {
		if c.ID == id {
			carts = append(carts[:i], carts[i+1:]...)
			return r.save(carts)
		}
	}
	return entity.ErrNotFound
}
