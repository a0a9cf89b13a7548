package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig addresses the redis server holding the slot.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisSlot keeps the profile under one redis key without expiry.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot connects lazily; the first Read or Write surfaces connection
// problems.
func NewRedisSlot(cfg RedisConfig, key string) *RedisSlot {
	if key == "" {
		key = DefaultKey
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Describe() string {
	return fmt.Sprintf("redis:%s/%s", s.client.Options().Addr, s.key)
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return data, nil
}

func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func (s *RedisSlot) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to remove profile: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
