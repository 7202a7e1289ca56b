package shipping

import (
	"time"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Fee calculation DTOs
// =============================================================================

// CalculateFeeRequest is the input of a shipping quote
type CalculateFeeRequest struct {
	DestinationProvinceID int
	DestinationDistrictID *int
	OrderAmount           decimal.Decimal
}

// RateDetails describes the band a quote was priced with
type RateDetails struct {
	BaseRate    float64  `json:"base_rate"`
	PerKmRate   float64  `json:"per_km_rate"`
	MinDistance float64  `json:"min_distance"`
	MaxDistance *float64 `json:"max_distance"`
}

// ShippingFeeResponse is a shipping quote. Warehouse address, threshold and
// rate details are omitted on the fallback quote.
type ShippingFeeResponse struct {
	ShippingFee           int64        `json:"shipping_fee"`
	Distance              float64      `json:"distance"`
	ZoneName              string       `json:"zone_name"`
	WarehouseName         string       `json:"warehouse_name"`
	WarehouseAddress      *string      `json:"warehouse_address,omitempty"`
	IsFreeShipping        bool         `json:"is_free_shipping"`
	FreeShippingThreshold *float64     `json:"free_shipping_threshold,omitempty"`
	RateDetails           *RateDetails `json:"rate_details,omitempty"`
}

// ProvinceResponse represents a province in API responses
type ProvinceResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToProvinceResponses converts domain provinces to responses
func ToProvinceResponses(provinces []shipping.Province) []ProvinceResponse {
	responses := make([]ProvinceResponse, len(provinces))
	for i, p := range provinces {
		responses[i] = ProvinceResponse{
			ID:        p.ID,
			Name:      p.Name,
			Latitude:  p.Coordinate.Latitude,
			Longitude: p.Coordinate.Longitude,
		}
	}
	return responses
}

// =============================================================================
// Warehouse DTOs
// =============================================================================

// CreateWarehouseRequest represents a request to create a new warehouse
type CreateWarehouseRequest struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	IsDefault bool
}

// UpdateWarehouseRequest represents a partial warehouse update
type UpdateWarehouseRequest struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
	IsActive  *bool
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsDefault bool      `json:"is_default"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListFilter represents filter options for warehouse list
type WarehouseListFilter struct {
	Search   string
	IsActive *bool
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// ToWarehouseResponse converts a domain Warehouse to WarehouseResponse
func ToWarehouseResponse(w *shipping.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		IsDefault: w.IsDefault,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToWarehouseResponses converts a slice of domain Warehouses
func ToWarehouseResponses(warehouses []shipping.Warehouse) []WarehouseResponse {
	responses := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		responses[i] = ToWarehouseResponse(&warehouses[i])
	}
	return responses
}

// =============================================================================
// Zone DTOs
// =============================================================================

// CreateZoneRequest represents a request to create a shipping zone
type CreateZoneRequest struct {
	WarehouseID uuid.UUID
	Name        string
	ProvinceIDs []int
	DistrictIDs []int
}

// UpdateZoneRequest represents a partial zone update
type UpdateZoneRequest struct {
	Name        *string
	ProvinceIDs []int
	DistrictIDs []int
	IsActive    *bool
}

// ZoneResponse represents a shipping zone in API responses
type ZoneResponse struct {
	ID          uuid.UUID `json:"id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Name        string    `json:"name"`
	ProvinceIDs []int     `json:"province_ids"`
	DistrictIDs []int     `json:"district_ids"`
	IsActive    bool      `json:"is_active"`
	Malformed   bool      `json:"malformed,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ZoneListFilter represents filter options for zone list
type ZoneListFilter struct {
	WarehouseID *uuid.UUID
	Search      string
	IsActive    *bool
	Page        int
	PageSize    int
}

// ToZoneResponse converts a domain ShippingZone to ZoneResponse. A zone whose
// stored lists cannot be decoded is flagged as malformed with empty lists.
func ToZoneResponse(z *shipping.ShippingZone) ZoneResponse {
	resp := ZoneResponse{
		ID:          z.ID,
		WarehouseID: z.WarehouseID,
		Name:        z.Name,
		ProvinceIDs: []int{},
		DistrictIDs: []int{},
		IsActive:    z.IsActive,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
	coverage, err := z.Coverage()
	if err != nil {
		resp.Malformed = true
		return resp
	}
	resp.ProvinceIDs = append(resp.ProvinceIDs, coverage.Provinces...)
	resp.DistrictIDs = append(resp.DistrictIDs, coverage.Districts...)
	return resp
}

// ToZoneResponses converts a slice of domain zones
func ToZoneResponses(zones []shipping.ShippingZone) []ZoneResponse {
	responses := make([]ZoneResponse, len(zones))
	for i := range zones {
		responses[i] = ToZoneResponse(&zones[i])
	}
	return responses
}

// =============================================================================
// Rate DTOs
// =============================================================================

// RateRequest carries the tariff of a rate band for create and update
type RateRequest struct {
	MinDistance    decimal.Decimal
	MaxDistance    *decimal.Decimal
	BaseRate       decimal.Decimal
	PerKmRate      decimal.Decimal
	MinOrderAmount decimal.Decimal
	IsActive       *bool
}

func (r RateRequest) band() shipping.RateBand {
	return shipping.RateBand{
		MinDistance:    r.MinDistance,
		MaxDistance:    r.MaxDistance,
		BaseRate:       r.BaseRate,
		PerKmRate:      r.PerKmRate,
		MinOrderAmount: r.MinOrderAmount,
	}
}

// RateResponse represents a rate band in API responses
type RateResponse struct {
	ID             uuid.UUID        `json:"id"`
	ZoneID         uuid.UUID        `json:"zone_id"`
	MinDistance    decimal.Decimal  `json:"min_distance"`
	MaxDistance    *decimal.Decimal `json:"max_distance"`
	BaseRate       decimal.Decimal  `json:"base_rate"`
	PerKmRate      decimal.Decimal  `json:"per_km_rate"`
	MinOrderAmount decimal.Decimal  `json:"min_order_amount"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToRateResponse converts a domain ShippingRate to RateResponse
func ToRateResponse(r *shipping.ShippingRate) RateResponse {
	band := r.Band()
	return RateResponse{
		ID:             r.ID,
		ZoneID:         r.ZoneID,
		MinDistance:    band.MinDistance,
		MaxDistance:    band.MaxDistance,
		BaseRate:       band.BaseRate,
		PerKmRate:      band.PerKmRate,
		MinOrderAmount: band.MinOrderAmount,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToRateResponses converts a slice of domain rates
func ToRateResponses(rates []shipping.ShippingRate) []RateResponse {
	responses := make([]RateResponse, len(rates))
	for i := range rates {
		responses[i] = ToRateResponse(&rates[i])
	}
	return responses
}
