package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "claty:weather:seoul"

type Cache interface {
	Get(ctx context.Context) (Weather, bool, error)
	Set(ctx context.Context, w Weather) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) (Weather, bool, error) {
	data, err := c.client.Get(ctx, cacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return Weather{}, false, nil
	}
	if err != nil {
		return Weather{}, false, fmt.Errorf("redis get weather: %w", err)
	}

	var w Weather
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return Weather{}, false, fmt.Errorf("decode cached weather: %w", err)
	}
	return w, true, nil
}

func (c *RedisCache) Set(ctx context.Context, w Weather) error {
	data, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, data, c.ttl).Err()
}

// MemoryCache holds a single entry in process, used when Redis is not configured.
type MemoryCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	value     Weather
	expiresAt time.Time
	set       bool
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCache) Get(ctx context.Context) (Weather, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set || !c.now().Before(c.expiresAt) {
		return Weather{}, false, nil
	}
	return c.value, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, w Weather) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = w
	c.expiresAt = c.now().Add(c.ttl)
	c.set = true
	return nil
}
