package sport

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const catalogTTL = 5 * time.Minute

// CatalogCache holds serialized catalog listings between requests. Misses
// and backend errors look the same to callers; the catalog is always
// reloadable from Mongo.
type CatalogCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type redisCatalogCache struct {
	client *redis.Client
}

// NewRedisCatalogCache returns a CatalogCache backed by the shared cache
// Redis database.
func NewRedisCatalogCache(client *redis.Client) CatalogCache {
	return &redisCatalogCache{client: client}
}

func (c *redisCatalogCache) Get(ctx context.Context, key string) (string, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return data, true
}

func (c *redisCatalogCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCatalogCache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func catalogKey(activeOnly bool) string {
	if activeOnly {
		return "sports:catalog:active"
	}
	return "sports:catalog:all"
}
