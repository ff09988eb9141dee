package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage shares a session between processes through Redis. Reads that
// fail (network, timeout) behave as a missing key, which downstream code
// treats as "not authenticated".
type RedisStorage struct {
	rdb     *redis.Client
	prefix  string
	timeout time.Duration
}

func NewRedisStorage(rdb *redis.Client, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = "expohall:session:"
	}
	return &RedisStorage{
		rdb:     rdb,
		prefix:  prefix,
		timeout: 3 * time.Second,
	}
}

func (s *RedisStorage) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *RedisStorage) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisStorage) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	err := s.rdb.Del(ctx, s.prefix+key).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
