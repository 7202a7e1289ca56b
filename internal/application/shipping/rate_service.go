package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/hacom/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RateService handles rate band administration
type RateService struct {
	rateRepo shipping.RateRepository
	zoneRepo shipping.ZoneRepository
	logger   *zap.Logger
}

// NewRateService creates a new RateService
func NewRateService(rateRepo shipping.RateRepository, zoneRepo shipping.ZoneRepository, log *zap.Logger) *RateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RateService{
		rateRepo: rateRepo,
		zoneRepo: zoneRepo,
		logger:   log,
	}
}

// ListByZone lists the bands of a zone
func (s *RateService) ListByZone(ctx context.Context, zoneID uuid.UUID) ([]RateResponse, error) {
	if _, err := s.zoneRepo.FindByID(ctx, zoneID); err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.FindByZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	return ToRateResponses(rates), nil
}

// Create adds a band to a zone
func (s *RateService) Create(ctx context.Context, zoneID uuid.UUID, req RateRequest) (*RateResponse, error) {
	if _, err := s.zoneRepo.FindByID(ctx, zoneID); err != nil {
		return nil, err
	}

	rate, err := shipping.NewShippingRate(zoneID, req.band())
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil && !*req.IsActive {
		rate.SetActive(false)
	}

	s.warnOverlaps(ctx, rate)

	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return nil, err
	}

	response := ToRateResponse(rate)
	return &response, nil
}

// Update replaces the tariff of a band
func (s *RateService) Update(ctx context.Context, id uuid.UUID, req RateRequest) (*RateResponse, error) {
	rate, err := s.rateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := rate.Update(req.band()); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		rate.SetActive(*req.IsActive)
	}

	s.warnOverlaps(ctx, rate)

	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return nil, err
	}

	response := ToRateResponse(rate)
	return &response, nil
}

// Delete deletes a band
func (s *RateService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rateRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.rateRepo.Delete(ctx, id)
}

// warnOverlaps logs every active band of the same zone that shares distance
// with rate. Overlaps are allowed; selection takes the highest min_distance.
func (s *RateService) warnOverlaps(ctx context.Context, rate *shipping.ShippingRate) {
	if !rate.IsActive {
		return
	}
	siblings, err := s.rateRepo.FindByZone(ctx, rate.ZoneID)
	if err != nil {
		logger.WithLogger(ctx, s.logger).Warn("overlap check skipped", zap.Error(err))
		return
	}
	for i := range siblings {
		other := &siblings[i]
		if other.ID == rate.ID || !other.IsActive {
			continue
		}
		if rate.Overlaps(other) {
			logger.WithLogger(ctx, s.logger).Warn("shipping rate bands overlap",
				zap.String("zone_id", rate.ZoneID.String()),
				zap.String("rate_id", rate.ID.String()),
				zap.String("overlapping_rate_id", other.ID.String()),
			)
		}
	}
}
