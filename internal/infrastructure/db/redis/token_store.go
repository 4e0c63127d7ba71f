package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobportal/portal/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the Redis token store.
type Config struct {
	Addr      string
	DB        int
	KeyPrefix string
	Timeout   time.Duration
}

// TokenStore keeps the token under a single Redis key, shared by every portal
// process pointed at the same instance and prefix.
type TokenStore struct {
	client *redis.Client
	key    string
}

// Open connects to Redis, validates connectivity with a ping and returns a
// store. A default timeout is applied when none is provided.
func Open(ctx context.Context, cfg Config) (*TokenStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewTokenStore(client, cfg.KeyPrefix), nil
}

// NewTokenStore wraps an existing client. The key is prefix + "token".
func NewTokenStore(client *redis.Client, prefix string) *TokenStore {
	return &TokenStore{client: client, key: prefix + domain.TokenKey}
}

func (s *TokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *TokenStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis delete token: %w", err)
	}
	return nil
}

func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *TokenStore) Close() error {
	return s.client.Close()
}
