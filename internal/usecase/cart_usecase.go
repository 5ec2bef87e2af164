package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
)

// CartUsecase exposes cart operations over the selected backend.
type CartUsecase struct {
	cartRepo      contract.ICartRepository
	productRepo   contract.IProductRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewCartUsecase(cartRepo contract.ICartRepository, productRepo contract.IProductRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *CartUsecase {
	return &CartUsecase{
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

func (uc *CartUsecase) CreateCart(ctx context.Context, userID string) (*entity.Cart, error) {
	now := time.Now()
	cart := &entity.Cart{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    userID,
		Items:     []entity.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.cartRepo.CreateCart(ctx, cart); err != nil {
		uc.logger.Errorf("failed to create cart: %v", err)
		return nil, errors.New("failed to create cart")
	}
	return cart, nil
}

func (uc *CartUsecase) GetCartByID(ctx context.Context, id string) (*entity.Cart, error) {
	return uc.cartRepo.GetCartByID(ctx, id)
}

// AddProduct adds one unit of a product to a cart, verifying the product
// exists first.
func (uc *CartUsecase) AddProduct(ctx context.Context, cartID, productID string) (*entity.Cart, error) {
	if _, err := uc.productRepo.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := uc.cartRepo.GetCartByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, entity.CartItem{ProductID: productID, Quantity: 1})
	}

	return uc.cartRepo.UpdateCart(ctx, cart)
}

// RemoveProduct removes a product line from a cart.
func (uc *CartUsecase) RemoveProduct(ctx context.Context, cartID, productID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetCartByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return uc.cartRepo.UpdateCart(ctx, cart)
		}
	}
	return nil, entity.ErrNotFound
}

func (uc *CartUsecase) DeleteCart(ctx context.Context, id string) error {
	return uc.cartRepo.DeleteCart(ctx, id)
}
