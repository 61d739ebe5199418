package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ponsiv/backend/internal/domain/identity"
	"github.com/ponsiv/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisSessionCache caches session-token-to-user lookups in Redis. Cache
// failures are treated as misses so the identity service remains the
// source of truth.
type RedisSessionCache struct {
	client     *redis.Client
	ownsClient bool
	logger     *zap.Logger
}

// NewRedisSessionCache creates a session cache with its own Redis client
func NewRedisSessionCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisSessionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for session cache: %w", err)
	}

	return &RedisSessionCache{client: client, ownsClient: true, logger: logger}, nil
}

// NewRedisSessionCacheWithClient creates a session cache over an existing
// client. The caller retains ownership of the client.
func NewRedisSessionCacheWithClient(client *redis.Client, logger *zap.Logger) *RedisSessionCache {
	return &RedisSessionCache{client: client, ownsClient: false, logger: logger}
}

// sessionKey hashes the token so raw session tokens never appear in Redis
func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}

// Get retrieves the cached user for a session token
func (c *RedisSessionCache) Get(ctx context.Context, token string) (*identity.User, bool) {
	data, err := c.client.Get(ctx, sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("session cache read failed", zap.Error(err))
		return nil, false
	}

	var user identity.User
	if err := json.Unmarshal(data, &user); err != nil {
		c.logger.Warn("corrupt session cache entry, dropping", zap.Error(err))
		_ = c.client.Del(ctx, sessionKey(token))
		return nil, false
	}
	return &user, true
}

// Set stores the user for a session token
func (c *RedisSessionCache) Set(ctx context.Context, token string, user *identity.User, ttl time.Duration) {
	if user == nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		c.logger.Warn("failed to encode session cache entry", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, sessionKey(token), data, ttl).Err(); err != nil {
		c.logger.Warn("session cache write failed", zap.Error(err))
	}
}

// Delete drops the cache entry for a session token
func (c *RedisSessionCache) Delete(ctx context.Context, token string) {
	if err := c.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		c.logger.Warn("session cache delete failed", zap.Error(err))
	}
}

// Close releases the Redis client if this cache owns it
func (c *RedisSessionCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}
