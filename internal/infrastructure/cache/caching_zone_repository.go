package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
	"go.uber.org/zap"
)

// CachingZoneRepository memoises FindActiveByWarehouse and invalidates the
// owning warehouse's entry on every write. Cache failures fall through to
// the wrapped repository.
type CachingZoneRepository struct {
	inner  shipping.ZoneRepository
	cache  shipping.ZoneCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingZoneRepository wraps inner with cache
func NewCachingZoneRepository(inner shipping.ZoneRepository, cache shipping.ZoneCache, ttl time.Duration, logger *zap.Logger) *CachingZoneRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingZoneRepository{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

// FindByID delegates to the wrapped repository
func (r *CachingZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShippingZone, error) {
	return r.inner.FindByID(ctx, id)
}

// FindAll delegates to the wrapped repository
func (r *CachingZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.ShippingZone, error) {
	return r.inner.FindAll(ctx, filter)
}

// Count delegates to the wrapped repository
func (r *CachingZoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.inner.Count(ctx, filter)
}

// CountByWarehouse delegates to the wrapped repository
func (r *CachingZoneRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error) {
	return r.inner.CountByWarehouse(ctx, warehouseID)
}

// FindActiveByWarehouse serves the zone list from cache when present
func (r *CachingZoneRepository) FindActiveByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]shipping.ShippingZone, error) {
	zones, ok, err := r.cache.Get(ctx, warehouseID)
	if err != nil {
		r.logger.Warn("zone cache read failed", zap.String("warehouse_id", warehouseID.String()), zap.Error(err))
	} else if ok {
		return zones, nil
	}

	zones, err = r.inner.FindActiveByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, warehouseID, zones, r.ttl); err != nil {
		r.logger.Warn("zone cache write failed", zap.String("warehouse_id", warehouseID.String()), zap.Error(err))
	}
	return zones, nil
}

// Save persists the zone and invalidates its warehouse's entry
func (r *CachingZoneRepository) Save(ctx context.Context, zone *shipping.ShippingZone) error {
	if err := r.inner.Save(ctx, zone); err != nil {
		return err
	}
	r.invalidate(ctx, zone.WarehouseID)
	return nil
}

// Delete removes the zone and invalidates its warehouse's entry
func (r *CachingZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	zone, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, zone.WarehouseID)
	return nil
}

func (r *CachingZoneRepository) invalidate(ctx context.Context, warehouseID uuid.UUID) {
	if err := r.cache.Invalidate(ctx, warehouseID); err != nil {
		r.logger.Warn("zone cache invalidation failed", zap.String("warehouse_id", warehouseID.String()), zap.Error(err))
	}
}

// Ensure CachingZoneRepository implements shipping.ZoneRepository
var _ shipping.ZoneRepository = (*CachingZoneRepository)(nil)
