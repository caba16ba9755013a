package utils

import (
	"context"
	"time"

	"tripnest/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix namespaces auth-token hashes in Redis.
const AuthCachePrefix = "auth:"

// AuthCacheTTL bounds how long a token hash stays cached.
const AuthCacheTTL = 24 * time.Hour

var (
	// CacheClient is the generic cache client (feeds, short-lived listings).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client. An unreachable
// Redis degrades the caches rather than stopping the process; individual
// operations surface their own errors and the health monitor reports the
// outage.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		zap.L().Warn("redis cache unreachable, continuing degraded", zap.Error(err))
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		zap.L().Warn("redis auth cache unreachable, continuing degraded", zap.Error(err))
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitRedis initializes all Redis clients at startup.
func InitRedis() {
	InitCache()
	InitAuthCache()
}

// CacheAuthToken stores the hash of an issued token for the given subject.
func CacheAuthToken(subject, tokenHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+subject, tokenHash, AuthCacheTTL).Err()
}

// RevokeAuthToken removes the cached token hash for the given subject.
func RevokeAuthToken(subject string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+subject).Err()
}
