// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"courtside/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// SessionCacheClient holds live booking sessions.
	SessionCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetSessionCacheClient returns the Redis client holding booking sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}
