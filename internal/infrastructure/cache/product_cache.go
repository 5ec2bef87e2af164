package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/contract"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
)

// ProductCacheStore caches product listings in Redis.
type ProductCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.IProductCache = (*ProductCacheStore)(nil)

func NewProductCacheStore(rdb *redis.Client) *ProductCacheStore {
	return &ProductCacheStore{
		rdb:     rdb,
		listTTL: 30 * time.Minute,
	}
}

func productsKey(key string) string { return fmt.Sprintf("products:%s", key) }

func (c *ProductCacheStore) GetProducts(ctx context.Context, key string) ([]*entity.Product, bool, error) {
	b, err := c.rdb.Get(ctx, productsKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var products []*entity.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, false, nil
	}
	return products, true, nil
}

func (c *ProductCacheStore) SetProducts(ctx context.Context, key string, products []*entity.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, productsKey(key), data, c.listTTL).Err()
}

func (c *ProductCacheStore) Invalidate(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, productsKey(key)).Err()
}
