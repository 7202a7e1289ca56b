package cache

import (
	"fmt"
	"time"

	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/hacom/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Zone cache drivers
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// ZoneCacheFactory creates zone caches based on configuration
type ZoneCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
	cleanupInterval       time.Duration
}

// ZoneCacheFactoryOption is a functional option for configuring the factory
type ZoneCacheFactoryOption func(*ZoneCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) ZoneCacheFactoryOption {
	return func(f *ZoneCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis degrades to the
// in-memory cache. Default is true.
func WithInMemoryFallback(allow bool) ZoneCacheFactoryOption {
	return func(f *ZoneCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// WithCleanupInterval sets the janitor interval of in-memory caches
func WithCleanupInterval(d time.Duration) ZoneCacheFactoryOption {
	return func(f *ZoneCacheFactory) {
		f.cleanupInterval = d
	}
}

// NewZoneCacheFactory creates a new factory
func NewZoneCacheFactory(cfg config.RedisConfig, opts ...ZoneCacheFactoryOption) *ZoneCacheFactory {
	f := &ZoneCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		cleanupInterval:       time.Minute,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the cache for driver, or nil for DriverNone
func (f *ZoneCacheFactory) Create(driver string) (shipping.ZoneCache, error) {
	switch driver {
	case "", DriverNone:
		return nil, nil
	case DriverMemory:
		f.logger.Info("using in-memory shipping zone cache")
		return NewInMemoryZoneCache(f.cleanupInterval), nil
	case DriverRedis:
		return f.createRedis()
	default:
		return nil, fmt.Errorf("unknown zone cache driver %q", driver)
	}
}

func (f *ZoneCacheFactory) createRedis() (shipping.ZoneCache, error) {
	c, err := NewRedisZoneCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err == nil {
		f.logger.Info("using Redis shipping zone cache", zap.String("addr", f.redisConfig.Addr()))
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for zone cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory zone cache. "+
		"Zone edits on one instance will not invalidate the others until the TTL expires.",
		zap.Error(err),
	)
	return NewInMemoryZoneCache(f.cleanupInterval), nil
}
