package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection configuration
type Config struct {
	Address  string
	Password string
	DB       int

	// DefaultTTL applies to SetJSON when no explicit TTL is given
	DefaultTTL time.Duration
}

// Client wraps the Redis client with JSON helpers used for short-lived
// read-side caches (the booth list).
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and verifies the connection.
func New(cfg Config) (*Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// FromRedis wraps an already-connected client (shared with the rest of the
// application).
func FromRedis(rdb *redis.Client, defaultTTL time.Duration) *Client {
	if defaultTTL <= 0 {
		defaultTTL = 30 * time.Second
	}
	return &Client{rdb: rdb, ttl: defaultTTL}
}

// GetJSON reads a key into out. The second return reports a cache hit.
func (c *Client) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key with the default TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete drops a key; missing keys are not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
