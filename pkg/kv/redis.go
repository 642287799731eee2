package kv

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs the key-value store with Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore accepts either a "redis://..." URL or a plain "host:port"
// address.
func NewRedisStore(addr string) *RedisStore {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		}
	}
	return &RedisStore{client: redis.NewClient(opts)}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping reports whether the Redis backend is reachable.
func (r *RedisStore) Ping(ctx context.Context) bool {
	return r.client.Ping(ctx).Err() == nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
