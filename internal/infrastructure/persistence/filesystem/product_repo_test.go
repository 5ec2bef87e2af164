package filesystem_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/persistence/filesystem"
)

func newProduct(id, title, category string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:          id,
		Title:       title,
		Description: "test product",
		Code:        "code-" + id,
		Price:       9.99,
		Stock:       5,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestFSProductRepositoryCRUD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	repo := filesystem.NewFSProductRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("p1", "Keyboard", "peripherals")))
	require.NoError(t, repo.CreateProduct(ctx, newProduct("p2", "Mouse", "peripherals")))

	got, err := repo.GetProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", got.Title)

	got.Title = "Mechanical Keyboard"
	updated, err := repo.UpdateProduct(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", updated.Title)

	all, err := repo.GetAllProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.DeleteProduct(ctx, "p2"))
	all, err = repo.GetAllProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFSProductRepositoryDuplicateID(t *testing.T) {
	repo := filesystem.NewFSProductRepository(filepath.Join(t.TempDir(), "products.json"))
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("p1", "Keyboard", "peripherals")))
	err := repo.CreateProduct(ctx, newProduct("p1", "Other", "peripherals"))
	assert.ErrorIs(t, err, entity.ErrDuplicateKey)
}

func TestFSProductRepositoryNotFound(t *testing.T) {
	repo := filesystem.NewFSProductRepository(filepath.Join(t.TempDir(), "products.json"))
	ctx := context.Background()

	_, err := repo.GetProductByID(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.UpdateProduct(ctx, newProduct("missing", "Ghost", "none"))
	assert.ErrorIs(t, err, entity.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteProduct(ctx, "missing"), entity.ErrNotFound)
}

func TestFSProductRepositoryFilter(t *testing.T) {
	repo := filesystem.NewFSProductRepository(filepath.Join(t.TempDir(), "products.json"))
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("p1", "Keyboard", "peripherals")))
	require.NoError(t, repo.CreateProduct(ctx, newProduct("p2", "Desk", "furniture")))

	matched, err := repo.GetAllProducts(ctx, &contract.ProductFilter{Category: "furniture"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "p2", matched[0].ID)
}

func TestFSProductRepositoryPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	ctx := context.Background()

	first := filesystem.NewFSProductRepository(path)
	require.NoError(t, first.CreateProduct(ctx, newProduct("p1", "Keyboard", "peripherals")))

	// A fresh instance over the same file sees the stored data.
	second := filesystem.NewFSProductRepository(path)
	got, err := second.GetProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", got.Title)
}

func TestFSProductRepositoryEmptyStore(t *testing.T) {
	repo := filesystem.NewFSProductRepository(filepath.Join(t.TempDir(), "products.json"))

	all, err := repo.GetAllProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}
