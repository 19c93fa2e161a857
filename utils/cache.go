// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"arogyamitra/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the shared Redis cache client, nil when caching is
// disabled.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Caching is optional: an
// empty REDIS_ADDR or an unreachable server leaves the client nil and
// reads go straight to Mongo.
func InitCache() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("Redis not configured, first-aid cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis, first-aid cache disabled", zap.Error(err))
		return nil
	}

	CacheClient = client
	return CacheClient
}

// GetCacheClient returns the cache client, nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
