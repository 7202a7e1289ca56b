package shipping

import (
	"strings"

	"github.com/hacom/backend/internal/domain/shared"
)

// Warehouse is a shipping origin. Fees are priced by distance from the
// warehouse coordinate to the destination.
type Warehouse struct {
	shared.BaseEntity
	Name      string  `gorm:"type:varchar(200);not null"`
	Address   string  `gorm:"type:text"`
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
	IsDefault bool    `gorm:"not null"`
	IsActive  bool    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates an active, non-default warehouse
func NewWarehouse(name, address string, location Coordinate) (*Warehouse, error) {
	if err := validateWarehouseName(name); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	if !location.Valid() {
		return nil, invalidCoordinateError()
	}

	return &Warehouse{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Address:    strings.TrimSpace(address),
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		IsActive:   true,
	}, nil
}

// Update changes the warehouse's name and address
func (w *Warehouse) Update(name, address string) error {
	if err := validateWarehouseName(name); err != nil {
		return err
	}
	if err := validateAddress(address); err != nil {
		return err
	}
	w.Name = strings.TrimSpace(name)
	w.Address = strings.TrimSpace(address)
	w.Touch()
	return nil
}

// Relocate moves the warehouse to a new coordinate
func (w *Warehouse) Relocate(location Coordinate) error {
	if !location.Valid() {
		return invalidCoordinateError()
	}
	w.Latitude = location.Latitude
	w.Longitude = location.Longitude
	w.Touch()
	return nil
}

// Location returns the warehouse coordinate
func (w *Warehouse) Location() Coordinate {
	return Coordinate{Latitude: w.Latitude, Longitude: w.Longitude}
}

// SetDefault marks or unmarks this warehouse as the default origin
func (w *Warehouse) SetDefault(isDefault bool) {
	w.IsDefault = isDefault
	w.Touch()
}

// Activate makes the warehouse eligible as a shipping origin
func (w *Warehouse) Activate() {
	w.IsActive = true
	w.Touch()
}

// Deactivate removes the warehouse from origin selection. An inactive
// warehouse cannot stay the default.
func (w *Warehouse) Deactivate() {
	w.IsActive = false
	w.IsDefault = false
	w.Touch()
}

func validateWarehouseName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot exceed 200 characters")
	}
	return nil
}

func validateAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	return nil
}

func invalidCoordinateError() error {
	return shared.NewDomainError("INVALID_COORDINATE", "Latitude must be within [-90, 90] and longitude within [-180, 180]")
}
