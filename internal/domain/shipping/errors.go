package shipping

import "github.com/hacom/backend/internal/domain/shared"

// Shipping domain errors
var (
	ErrNoActiveWarehouse  = shared.NewDomainError("NO_ACTIVE_WAREHOUSE", "No active warehouse is available for shipping")
	ErrNoShippingRate     = shared.NewDomainError("NO_SHIPPING_RATE", "No shipping rate for this distance")
	ErrInvalidDestination = shared.NewDomainError("INVALID_DESTINATION", "Destination province is required")
	ErrWarehouseHasZones  = shared.NewDomainError("WAREHOUSE_HAS_ZONES", "Warehouse still owns shipping zones")
	ErrWarehouseNotFound  = shared.NewDomainError("NOT_FOUND", "Warehouse not found")
	ErrZoneNotFound       = shared.NewDomainError("NOT_FOUND", "Shipping zone not found")
	ErrRateNotFound       = shared.NewDomainError("NOT_FOUND", "Shipping rate not found")
)
