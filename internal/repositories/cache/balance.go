// Package cache provides the Redis-backed balance cache. The balance is a
// pure reduction over the transaction list, so the cache is an optimization
// only: a miss or a down Redis falls back to recomputation.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	balanceKeyPrefix = "balance:"
	defaultTTL       = 5 * time.Minute
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// BalanceCache stores computed balances in minor units keyed by user.
type BalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBalanceCache(client *redis.Client, ttl time.Duration) *BalanceCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &BalanceCache{client: client, ttl: ttl}
}

// GetBalance returns the cached balance and whether it was present.
func (c *BalanceCache) GetBalance(ctx context.Context, userID string) (int64, bool, error) {
	val, err := c.client.Get(ctx, balanceKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get cached balance: %w", err)
	}
	return val, true, nil
}

func (c *BalanceCache) SetBalance(ctx context.Context, userID string, balance int64) error {
	return c.client.Set(ctx, balanceKey(userID), balance, c.ttl).Err()
}

// InvalidateBalance drops the cached balance. Called on every append.
func (c *BalanceCache) InvalidateBalance(ctx context.Context, userID string) error {
	return c.client.Del(ctx, balanceKey(userID)).Err()
}

// Close releases the underlying Redis connection.
func (c *BalanceCache) Close() error {
	return c.client.Close()
}

func balanceKey(userID string) string {
	return balanceKeyPrefix + userID
}
