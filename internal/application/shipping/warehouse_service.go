package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
)

// WarehouseService handles warehouse administration
type WarehouseService struct {
	warehouseRepo shipping.WarehouseRepository
	zoneRepo      shipping.ZoneRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo shipping.WarehouseRepository, zoneRepo shipping.ZoneRepository) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		zoneRepo:      zoneRepo,
	}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := shipping.NewWarehouse(req.Name, req.Address, shipping.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return nil, err
	}

	warehouse.SetDefault(req.IsDefault)

	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// List retrieves warehouses with filtering and pagination
func (s *WarehouseService) List(ctx context.Context, filter WarehouseListFilter) ([]WarehouseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	warehouses, err := s.warehouseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.warehouseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToWarehouseResponses(warehouses), total, nil
}

// Update updates a warehouse
func (s *WarehouseService) Update(ctx context.Context, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Address != nil {
		name := warehouse.Name
		address := warehouse.Address
		if req.Name != nil {
			name = *req.Name
		}
		if req.Address != nil {
			address = *req.Address
		}
		if err := warehouse.Update(name, address); err != nil {
			return nil, err
		}
	}

	if req.Latitude != nil || req.Longitude != nil {
		location := warehouse.Location()
		if req.Latitude != nil {
			location.Latitude = *req.Latitude
		}
		if req.Longitude != nil {
			location.Longitude = *req.Longitude
		}
		if err := warehouse.Relocate(location); err != nil {
			return nil, err
		}
	}

	if req.IsActive != nil {
		if *req.IsActive {
			warehouse.Activate()
		} else {
			warehouse.Deactivate()
		}
	}

	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// SetDefault makes the warehouse the default shipping origin. Only active
// warehouses can be the default.
func (s *WarehouseService) SetDefault(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !warehouse.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Only an active warehouse can be the default")
	}

	if err := s.warehouseRepo.SetDefault(ctx, id); err != nil {
		return nil, err
	}
	warehouse.SetDefault(true)

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// Delete deletes a warehouse that owns no zones
func (s *WarehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.warehouseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	zones, err := s.zoneRepo.CountByWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if zones > 0 {
		return shipping.ErrWarehouseHasZones
	}

	return s.warehouseRepo.Delete(ctx, id)
}
