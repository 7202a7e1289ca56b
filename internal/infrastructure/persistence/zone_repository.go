package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
	"gorm.io/gorm"
)

// GormZoneRepository implements shipping.ZoneRepository using GORM
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GormZoneRepository
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// FindByID finds a zone by its ID
func (r *GormZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShippingZone, error) {
	var zone shipping.ShippingZone
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shipping.ErrZoneNotFound
		}
		return nil, err
	}
	return &zone, nil
}

// FindAll finds all zones matching the filter
func (r *GormZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.ShippingZone, error) {
	var zones []shipping.ShippingZone
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shipping.ShippingZone{}), filter)
	query = applyOrderAndPage(query, filter, ZoneSortFields)

	if err := query.Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// Count counts zones matching the filter
func (r *GormZoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shipping.ShippingZone{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindActiveByWarehouse returns the active zones of a warehouse in storage order
func (r *GormZoneRepository) FindActiveByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]shipping.ShippingZone, error) {
	var zones []shipping.ShippingZone
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND is_active = ?", warehouseID, true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// CountByWarehouse counts every zone owned by a warehouse
func (r *GormZoneRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&shipping.ShippingZone{}).
		Where("warehouse_id = ?", warehouseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a zone
func (r *GormZoneRepository) Save(ctx context.Context, zone *shipping.ShippingZone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

// Delete removes a zone and its rate bands
func (r *GormZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("zone_id = ?", id).Delete(&shipping.ShippingRate{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&shipping.ShippingZone{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shipping.ErrZoneNotFound
		}
		return nil
	})
}

func (r *GormZoneRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\'", likePattern(filter.Search))
	}
	if v, ok := filter.Filters["warehouse_id"]; ok {
		query = query.Where("warehouse_id = ?", v)
	}
	if v, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", v)
	}
	return query
}

// Ensure GormZoneRepository implements shipping.ZoneRepository
var _ shipping.ZoneRepository = (*GormZoneRepository)(nil)
