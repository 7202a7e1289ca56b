package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
)

// ZoneService handles shipping zone administration
type ZoneService struct {
	zoneRepo      shipping.ZoneRepository
	warehouseRepo shipping.WarehouseRepository
}

// NewZoneService creates a new ZoneService
func NewZoneService(zoneRepo shipping.ZoneRepository, warehouseRepo shipping.WarehouseRepository) *ZoneService {
	return &ZoneService{
		zoneRepo:      zoneRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create creates a zone for an existing warehouse
func (s *ZoneService) Create(ctx context.Context, req CreateZoneRequest) (*ZoneResponse, error) {
	if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID); err != nil {
		return nil, err
	}

	zone, err := shipping.NewShippingZone(req.WarehouseID, req.Name, req.ProvinceIDs, req.DistrictIDs)
	if err != nil {
		return nil, err
	}

	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		return nil, err
	}

	response := ToZoneResponse(zone)
	return &response, nil
}

// GetByID retrieves a zone by ID
func (s *ZoneService) GetByID(ctx context.Context, id uuid.UUID) (*ZoneResponse, error) {
	zone, err := s.zoneRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToZoneResponse(zone)
	return &response, nil
}

// List retrieves zones, optionally restricted to one warehouse
func (s *ZoneService) List(ctx context.Context, filter ZoneListFilter) ([]ZoneResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.WarehouseID != nil {
		domainFilter.Filters["warehouse_id"] = *filter.WarehouseID
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	zones, err := s.zoneRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.zoneRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToZoneResponses(zones), total, nil
}

// Update updates a zone. Nil id lists keep the stored lists; empty lists make
// the zone a wildcard.
func (s *ZoneService) Update(ctx context.Context, id uuid.UUID, req UpdateZoneRequest) (*ZoneResponse, error) {
	zone, err := s.zoneRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.ProvinceIDs != nil || req.DistrictIDs != nil {
		name := zone.Name
		if req.Name != nil {
			name = *req.Name
		}
		provinces, districts, err := currentIDs(zone)
		if err != nil && (req.ProvinceIDs == nil || req.DistrictIDs == nil) {
			return nil, shared.NewDomainError("INVALID_STATE", "Stored zone lists are malformed, provide both province_ids and district_ids")
		}
		if req.ProvinceIDs != nil {
			provinces = req.ProvinceIDs
		}
		if req.DistrictIDs != nil {
			districts = req.DistrictIDs
		}
		if err := zone.Update(name, provinces, districts); err != nil {
			return nil, err
		}
	}

	if req.IsActive != nil {
		zone.SetActive(*req.IsActive)
	}

	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		return nil, err
	}

	response := ToZoneResponse(zone)
	return &response, nil
}

// Delete deletes a zone and its rates
func (s *ZoneService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.zoneRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.zoneRepo.Delete(ctx, id)
}

func currentIDs(zone *shipping.ShippingZone) ([]int, []int, error) {
	coverage, err := zone.Coverage()
	if err != nil {
		return nil, nil, err
	}
	return coverage.Provinces, coverage.Districts, nil
}
