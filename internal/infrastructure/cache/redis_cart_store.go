package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/storefront"
)

// RedisCartStore implements storefront.CartStore using Redis
// This is suitable for distributed deployments where multiple instances
// need to share cart sessions
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisCartStore creates a new Redis-based cart store
func NewRedisCartStore(cfg RedisConfig) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCartStore{
		client:    client,
		keyPrefix: "cart:session:",
	}, nil
}

// NewRedisCartStoreWithClient creates a store with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisCartStoreWithClient(client *redis.Client, keyPrefix string) *RedisCartStore {
	if keyPrefix == "" {
		keyPrefix = "cart:session:"
	}
	return &RedisCartStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cart stored under the key, or shared.ErrNotFound when
// the session is unknown or has expired
func (s *RedisCartStore) Get(ctx context.Context, key string) (*storefront.Cart, error) {
	payload, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart storefront.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return &cart, nil
}

// Put stores the cart under the key, refreshing its expiration
func (s *RedisCartStore) Put(ctx context.Context, key string, cart *storefront.Cart, ttl time.Duration) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, s.keyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}

	return nil
}

// Delete removes the cart stored under the key
func (s *RedisCartStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}

// Ensure RedisCartStore implements storefront.CartStore
var _ storefront.CartStore = (*RedisCartStore)(nil)
