package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNotFound = errors.New("key not found in cache")
)

// ListTTL is how long a cached public collection response stays fresh.
// Writes invalidate their own entity's keys before this elapses.
const ListTTL = 5 * time.Minute

// RedisCache wraps redis client with common cache operations
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Get retrieves a value from cache
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a value in cache with expiration
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Delete removes keys from cache
func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// Close closes the underlying client
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// listKey builds the cache key for an entity collection response.
// The full query string participates so distinct filters cache apart.
func listKey(entity, query string) string {
	return "list:" + entity + ":" + query
}

// GetList retrieves a cached collection response into dest.
func (r *RedisCache) GetList(ctx context.Context, entity, query string, dest interface{}) error {
	raw, err := r.Get(ctx, listKey(entity, query))
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

// SetList caches a collection response under the entity+query key.
func (r *RedisCache) SetList(ctx context.Context, entity, query string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, listKey(entity, query), raw, ListTTL)
}

// InvalidateEntity drops every cached list for one entity. Related
// entities are deliberately left alone: deleting a category does not
// touch cached colleges that reference it.
func (r *RedisCache) InvalidateEntity(ctx context.Context, entity string) error {
	var cursor uint64
	prefix := listKey(entity, "")
	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if err := r.Delete(ctx, keys...); err != nil {
			return err
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
