package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/redis/go-redis/v9"
)

const defaultZoneKeyPrefix = "shipping:zones:"

// RedisZoneCache implements shipping.ZoneCache with JSON values in Redis,
// so every instance sees the same entries and invalidations
type RedisZoneCache struct {
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

// NewRedisZoneCache connects to Redis and verifies the connection
func NewRedisZoneCache(cfg RedisConfig) (*RedisZoneCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisZoneCacheWithClient(client, ""), nil
}

// NewRedisZoneCacheWithClient wraps an existing client
func NewRedisZoneCacheWithClient(client *redis.Client, keyPrefix string) *RedisZoneCache {
	if keyPrefix == "" {
		keyPrefix = defaultZoneKeyPrefix
	}
	return &RedisZoneCache{client: client, keyPrefix: keyPrefix}
}

func (c *RedisZoneCache) key(warehouseID uuid.UUID) string {
	return c.keyPrefix + warehouseID.String()
}

// Get loads and decodes the cached zones
func (c *RedisZoneCache) Get(ctx context.Context, warehouseID uuid.UUID) ([]shipping.ShippingZone, bool, error) {
	data, err := c.client.Get(ctx, c.key(warehouseID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read zone cache: %w", err)
	}

	var zones []shipping.ShippingZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, false, fmt.Errorf("failed to decode zone cache: %w", err)
	}
	return zones, true, nil
}

// Set encodes the zones and stores them with ttl
func (c *RedisZoneCache) Set(ctx context.Context, warehouseID uuid.UUID, zones []shipping.ShippingZone, ttl time.Duration) error {
	if zones == nil {
		zones = []shipping.ShippingZone{}
	}
	data, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to encode zone cache: %w", err)
	}
	if err := c.client.Set(ctx, c.key(warehouseID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write zone cache: %w", err)
	}
	return nil
}

// Invalidate deletes the warehouse's entry
func (c *RedisZoneCache) Invalidate(ctx context.Context, warehouseID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(warehouseID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zone cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisZoneCache) Close() error {
	return c.client.Close()
}

// Ensure RedisZoneCache implements shipping.ZoneCache
var _ shipping.ZoneCache = (*RedisZoneCache)(nil)
