package redis

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/repository"
)

type catalogCache struct {
	client *redislib.Client
	key    string
	ttl    time.Duration
}

// NewCatalogCache creates a Redis-backed snapshot cache for the product
// catalog. The snapshot is the last successful feed fetch, serialized as
// one JSON value.
func NewCatalogCache(client *redislib.Client, ttl time.Duration) repository.CatalogCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &catalogCache{
		client: client,
		key:    "catalog:snapshot",
		ttl:    ttl,
	}
}

func (c *catalogCache) Get(ctx context.Context) ([]domain.Product, bool, error) {
	result, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var products []domain.Product
	if err := json.Unmarshal([]byte(result), &products); err != nil {
		// A corrupt snapshot is worth less than a miss.
		return nil, false, nil
	}
	return products, true, nil
}

func (c *catalogCache) Set(ctx context.Context, products []domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, payload, c.ttl).Err()
}
