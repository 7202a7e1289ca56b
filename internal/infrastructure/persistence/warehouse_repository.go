package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
	"gorm.io/gorm"
)

// GormWarehouseRepository implements shipping.WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// FindByID finds a warehouse by its ID
func (r *GormWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Warehouse, error) {
	var warehouse shipping.Warehouse
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&warehouse).Error; err != nil {
		return nil, translateWarehouseError(err)
	}
	return &warehouse, nil
}

// FindAll finds all warehouses matching the filter
func (r *GormWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Warehouse, error) {
	var warehouses []shipping.Warehouse
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shipping.Warehouse{}), filter)
	query = applyOrderAndPage(query, filter, WarehouseSortFields)

	if err := query.Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

// Count counts warehouses matching the filter
func (r *GormWarehouseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shipping.Warehouse{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindDefaultActive finds the active warehouse flagged as default
func (r *GormWarehouseRepository) FindDefaultActive(ctx context.Context) (*shipping.Warehouse, error) {
	var warehouse shipping.Warehouse
	if err := r.db.WithContext(ctx).
		Where("is_default = ? AND is_active = ?", true, true).
		Order("updated_at DESC").
		Take(&warehouse).Error; err != nil {
		return nil, translateWarehouseError(err)
	}
	return &warehouse, nil
}

// FindLatestActive finds the most recently created active warehouse
func (r *GormWarehouseRepository) FindLatestActive(ctx context.Context) (*shipping.Warehouse, error) {
	var warehouse shipping.Warehouse
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Take(&warehouse).Error; err != nil {
		return nil, translateWarehouseError(err)
	}
	return &warehouse, nil
}

// Create inserts a warehouse, clearing any other default in the same
// transaction when the new one is flagged default
func (r *GormWarehouseRepository) Create(ctx context.Context, warehouse *shipping.Warehouse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if warehouse.IsDefault {
			if err := tx.Model(&shipping.Warehouse{}).
				Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(warehouse).Error
	})
}

// Update writes the editable columns of a warehouse. is_default belongs to
// SetDefault and is only written here to clear it on an inactive warehouse.
func (r *GormWarehouseRepository) Update(ctx context.Context, warehouse *shipping.Warehouse) error {
	columns := []string{"name", "address", "latitude", "longitude", "is_active", "updated_at"}
	if !warehouse.IsActive {
		warehouse.IsDefault = false
		columns = append(columns, "is_default")
	}

	result := r.db.WithContext(ctx).
		Model(warehouse).
		Select(columns).
		Updates(warehouse)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shipping.ErrWarehouseNotFound
	}
	return nil
}

// SetDefault clears the default flag everywhere and sets it on one warehouse
func (r *GormWarehouseRepository) SetDefault(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&shipping.Warehouse{}).
			Where("is_default = ? AND id <> ?", true, id).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&shipping.Warehouse{}).
			Where("id = ?", id).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shipping.ErrWarehouseNotFound
		}
		return nil
	})
}

// Delete deletes a warehouse
func (r *GormWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shipping.Warehouse{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shipping.ErrWarehouseNotFound
	}
	return nil
}

func (r *GormWarehouseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(address) LIKE ? ESCAPE '\\')", pattern, pattern)
	}
	if v, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", v)
	}
	if v, ok := filter.Filters["is_default"]; ok {
		query = query.Where("is_default = ?", v)
	}
	return query
}

func translateWarehouseError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shipping.ErrWarehouseNotFound
	}
	return err
}

// Ensure GormWarehouseRepository implements shipping.WarehouseRepository
var _ shipping.WarehouseRepository = (*GormWarehouseRepository)(nil)
