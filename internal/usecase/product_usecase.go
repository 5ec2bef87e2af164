package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
)

const productListCacheKey = "all"

// ProductUsecase exposes catalog operations over the selected backend.
type ProductUsecase struct {
	productRepo   contract.IProductRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	cache         contract.IProductCache
}

func NewProductUsecase(productRepo contract.IProductRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// SetProductCache enables the optional Redis read-through cache.
func (uc *ProductUsecase) SetProductCache(cache contract.IProductCache) {
	uc.cache = cache
}

func (uc *ProductUsecase) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product.ID == "" {
		product.ID = uc.uuidGenerator.NewUUID()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := uc.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, entity.ErrDuplicateKey) {
			return nil, entity.ErrDuplicateKey
		}
		uc.logger.Errorf("failed to create product: %v", err)
		return nil, errors.New("failed to create product")
	}
	uc.invalidateListCache(ctx)
	return product, nil
}

func (uc *ProductUsecase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetProductByID(ctx, id)
}

func (uc *ProductUsecase) GetAllProducts(ctx context.Context, filter *contract.ProductFilter) ([]*entity.Product, error) {
	unfiltered := filter == nil || (filter.Category == "" && filter.Owner == "")
	if uc.cache != nil && unfiltered {
		if products, ok, err := uc.cache.GetProducts(ctx, productListCacheKey); err == nil && ok {
			return products, nil
		}
	}

	products, err := uc.productRepo.GetAllProducts(ctx, filter)
	if err != nil {
		uc.logger.Errorf("failed to list products: %v", err)
		return nil, errors.New("failed to list products")
	}

	if uc.cache != nil && unfiltered {
		if err := uc.cache.SetProducts(ctx, productListCacheKey, products); err != nil {
			uc.logger.Warnf("failed to cache product list: %v", err)
		}
	}
	return products, nil
}

func (uc *ProductUsecase) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	updated, err := uc.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	uc.invalidateListCache(ctx)
	return updated, nil
}

func (uc *ProductUsecase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.invalidateListCache(ctx)
	return nil
}

func (uc *ProductUsecase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, productListCacheKey); err != nil {
		uc.logger.Warnf("failed to invalidate product cache: %v", err)
	}
}
