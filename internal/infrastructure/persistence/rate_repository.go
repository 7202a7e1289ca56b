package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shipping"
	"gorm.io/gorm"
)

// GormRateRepository implements shipping.RateRepository using GORM
type GormRateRepository struct {
	db *gorm.DB
}

// NewGormRateRepository creates a new GormRateRepository
func NewGormRateRepository(db *gorm.DB) *GormRateRepository {
	return &GormRateRepository{db: db}
}

// FindByID finds a rate by its ID
func (r *GormRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShippingRate, error) {
	var rate shipping.ShippingRate
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rate).Error; err != nil {
		return nil, translateRateError(err)
	}
	return &rate, nil
}

// FindByZone lists the bands of a zone by ascending min_distance
func (r *GormRateRepository) FindByZone(ctx context.Context, zoneID uuid.UUID) ([]shipping.ShippingRate, error) {
	var rates []shipping.ShippingRate
	if err := r.db.WithContext(ctx).
		Where("zone_id = ?", zoneID).
		Order("min_distance ASC").
		Order("created_at ASC").
		Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// FindApplicable returns the active band covering distance. When bands
// overlap the one with the highest min_distance wins.
func (r *GormRateRepository) FindApplicable(ctx context.Context, zoneID uuid.UUID, distance float64) (*shipping.ShippingRate, error) {
	var rate shipping.ShippingRate
	if err := r.db.WithContext(ctx).
		Where("zone_id = ? AND is_active = ?", zoneID, true).
		Where("min_distance <= ?", distance).
		Where("(max_distance IS NULL OR max_distance >= ?)", distance).
		Order("min_distance DESC").
		Order("created_at ASC").
		Take(&rate).Error; err != nil {
		return nil, translateRateError(err)
	}
	return &rate, nil
}

// Save creates or updates a rate
func (r *GormRateRepository) Save(ctx context.Context, rate *shipping.ShippingRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

// Delete deletes a rate
func (r *GormRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shipping.ShippingRate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shipping.ErrRateNotFound
	}
	return nil
}

func translateRateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shipping.ErrRateNotFound
	}
	return err
}

// Ensure GormRateRepository implements shipping.RateRepository
var _ shipping.RateRepository = (*GormRateRepository)(nil)
