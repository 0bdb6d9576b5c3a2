package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

const revokedPrefix = "revoked:"

// RedisStore backs both the sales cache and the token denylist with one client.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisStore{client: client}
}

func (c *RedisStore) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisStore) Close() error {
	return c.client.Close()
}

func (c *RedisStore) Get(ctx context.Context, key string) ([]domain.SaleRecord, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var records []domain.SaleRecord
	if err := json.Unmarshal([]byte(val), &records); err != nil {
		return nil, false, err
	}
	return records, true, nil
}

func (c *RedisStore) Set(ctx context.Context, key string, value []domain.SaleRecord, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func (c *RedisStore) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, revokedPrefix+tokenHash, "1", ttl).Err()
}

func (c *RedisStore) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	n, err := c.client.Exists(ctx, revokedPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var (
	_ SalesCache    = (*RedisStore)(nil)
	_ TokenDenylist = (*RedisStore)(nil)
	_ SalesCache    = NoopSalesCache{}
	_ TokenDenylist = (*MemoryTokenDenylist)(nil)
)
