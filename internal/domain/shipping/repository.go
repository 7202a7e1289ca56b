package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
)

// WarehouseRepository defines the interface for warehouse persistence
type WarehouseRepository interface {
	// FindByID finds a warehouse by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)

	// FindAll finds all warehouses matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Warehouse, error)

	// Count counts warehouses matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindDefaultActive finds the active warehouse flagged as default
	FindDefaultActive(ctx context.Context) (*Warehouse, error)

	// FindLatestActive finds the most recently created active warehouse
	FindLatestActive(ctx context.Context) (*Warehouse, error)

	// Create inserts a warehouse. When it is flagged default, the flag is
	// cleared on every other warehouse in the same transaction.
	Create(ctx context.Context, warehouse *Warehouse) error

	// Update writes the editable columns of an existing warehouse. The
	// default flag is only changed through SetDefault.
	Update(ctx context.Context, warehouse *Warehouse) error

	// SetDefault flags the warehouse as default and clears the flag on every
	// other warehouse in one transaction
	SetDefault(ctx context.Context, id uuid.UUID) error

	// Delete deletes a warehouse
	Delete(ctx context.Context, id uuid.UUID) error
}

// ZoneRepository defines the interface for shipping zone persistence
type ZoneRepository interface {
	// FindByID finds a zone by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ShippingZone, error)

	// FindAll finds all zones matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ShippingZone, error)

	// Count counts zones matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindActiveByWarehouse returns the warehouse's active zones in storage
	// order (created_at, then id)
	FindActiveByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]ShippingZone, error)

	// CountByWarehouse counts all zones owned by a warehouse
	CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error)

	// Save creates or updates a zone
	Save(ctx context.Context, zone *ShippingZone) error

	// Delete deletes a zone together with its rates
	Delete(ctx context.Context, id uuid.UUID) error
}

// RateRepository defines the interface for shipping rate persistence
type RateRepository interface {
	// FindByID finds a rate by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ShippingRate, error)

	// FindByZone lists every rate of a zone ordered by min_distance
	FindByZone(ctx context.Context, zoneID uuid.UUID) ([]ShippingRate, error)

	// FindApplicable returns the active band of the zone covering distance with
	// the highest min_distance
	FindApplicable(ctx context.Context, zoneID uuid.UUID, distance float64) (*ShippingRate, error)

	// Save creates or updates a rate
	Save(ctx context.Context, rate *ShippingRate) error

	// Delete deletes a rate
	Delete(ctx context.Context, id uuid.UUID) error
}

// ZoneCache memoises the active zones of a warehouse
type ZoneCache interface {
	// Get returns the cached zones and whether the entry was present
	Get(ctx context.Context, warehouseID uuid.UUID) ([]ShippingZone, bool, error)

	// Set stores the zones for ttl
	Set(ctx context.Context, warehouseID uuid.UUID, zones []ShippingZone, ttl time.Duration) error

	// Invalidate drops the entry of a warehouse
	Invalidate(ctx context.Context, warehouseID uuid.UUID) error

	// Close releases resources held by the cache
	Close() error
}
