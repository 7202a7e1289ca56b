package shipping

import (
	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RateBand describes the pricing of one distance interval
type RateBand struct {
	MinDistance    decimal.Decimal
	MaxDistance    *decimal.Decimal // nil means unbounded
	BaseRate       decimal.Decimal
	PerKmRate      decimal.Decimal
	MinOrderAmount decimal.Decimal // free-shipping threshold, zero disables it
}

// ShippingRate is a distance band within a zone with its own tariff
type ShippingRate struct {
	shared.BaseEntity
	ZoneID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	MinDistance    decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	MaxDistance    decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	BaseRate       decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	PerKmRate      decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	MinOrderAmount decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	IsActive       bool                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ShippingRate) TableName() string {
	return "shipping_rates"
}

// NewShippingRate creates an active rate band for a zone
func NewShippingRate(zoneID uuid.UUID, band RateBand) (*ShippingRate, error) {
	if zoneID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ZONE", "Zone ID is required")
	}
	if err := validateBand(band); err != nil {
		return nil, err
	}

	r := &ShippingRate{
		BaseEntity: shared.NewBaseEntity(),
		ZoneID:     zoneID,
		IsActive:   true,
	}
	r.applyBand(band)
	return r, nil
}

// Update replaces the tariff of the band
func (r *ShippingRate) Update(band RateBand) error {
	if err := validateBand(band); err != nil {
		return err
	}
	r.applyBand(band)
	r.Touch()
	return nil
}

// SetActive toggles whether the band is considered during rate selection
func (r *ShippingRate) SetActive(active bool) {
	r.IsActive = active
	r.Touch()
}

// Band returns the tariff as a RateBand
func (r *ShippingRate) Band() RateBand {
	band := RateBand{
		MinDistance:    r.MinDistance,
		BaseRate:       r.BaseRate,
		PerKmRate:      r.PerKmRate,
		MinOrderAmount: r.MinOrderAmount,
	}
	if r.MaxDistance.Valid {
		max := r.MaxDistance.Decimal
		band.MaxDistance = &max
	}
	return band
}

// Covers reports whether distance lies within [MinDistance, MaxDistance]
func (r *ShippingRate) Covers(distance decimal.Decimal) bool {
	if distance.LessThan(r.MinDistance) {
		return false
	}
	return !r.MaxDistance.Valid || distance.LessThanOrEqual(r.MaxDistance.Decimal)
}

// Fee returns the distance-based fee: the base rate plus the per-km rate for
// every kilometre beyond the band's lower bound
func (r *ShippingRate) Fee(distance decimal.Decimal) decimal.Decimal {
	fee := r.BaseRate
	if r.PerKmRate.IsPositive() && distance.GreaterThan(r.MinDistance) {
		fee = fee.Add(distance.Sub(r.MinDistance).Mul(r.PerKmRate))
	}
	return fee
}

// QualifiesForFreeShipping reports whether the order amount reaches a positive threshold
func (r *ShippingRate) QualifiesForFreeShipping(orderAmount decimal.Decimal) bool {
	return r.MinOrderAmount.IsPositive() && orderAmount.GreaterThanOrEqual(r.MinOrderAmount)
}

// Overlaps reports whether two bands share any distance. Touching bounds
// ([0,10] and [10,20]) count as overlapping because 10 is in both.
func (r *ShippingRate) Overlaps(other *ShippingRate) bool {
	if r.MaxDistance.Valid && r.MaxDistance.Decimal.LessThan(other.MinDistance) {
		return false
	}
	if other.MaxDistance.Valid && other.MaxDistance.Decimal.LessThan(r.MinDistance) {
		return false
	}
	return true
}

func (r *ShippingRate) applyBand(band RateBand) {
	r.MinDistance = band.MinDistance
	if band.MaxDistance != nil {
		r.MaxDistance = decimal.NewNullDecimal(*band.MaxDistance)
	} else {
		r.MaxDistance = decimal.NullDecimal{}
	}
	r.BaseRate = band.BaseRate
	r.PerKmRate = band.PerKmRate
	r.MinOrderAmount = band.MinOrderAmount
}

func validateBand(band RateBand) error {
	if band.MinDistance.IsNegative() {
		return shared.NewDomainError("INVALID_DISTANCE", "Minimum distance cannot be negative")
	}
	if band.MaxDistance != nil && band.MaxDistance.LessThan(band.MinDistance) {
		return shared.NewDomainError("INVALID_DISTANCE", "Maximum distance cannot be less than minimum distance")
	}
	if band.BaseRate.IsNegative() || band.PerKmRate.IsNegative() || band.MinOrderAmount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Rates and thresholds cannot be negative")
	}
	return nil
}
