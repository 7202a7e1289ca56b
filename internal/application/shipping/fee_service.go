package shipping

import (
	"context"
	"errors"
	"fmt"

	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/hacom/backend/internal/infrastructure/logger"
	"github.com/hacom/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteRecorder receives one observation per quote
type QuoteRecorder interface {
	RecordQuote(ctx context.Context, outcome shipping.QuoteOutcome, fee int64, free bool)
}

// FeeConfig holds the fallback quote used when no zone covers a destination
type FeeConfig struct {
	FallbackFee           decimal.Decimal
	FallbackFreeThreshold decimal.Decimal // zero or negative disables free fallback shipping
	FallbackZoneName      string
}

// DefaultFeeConfig returns the storefront's historical fallback values
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		FallbackFee:           decimal.NewFromInt(30000),
		FallbackFreeThreshold: decimal.NewFromInt(500000),
		FallbackZoneName:      "other region",
	}
}

// FeeService resolves shipping quotes from warehouses, zones and rate bands
type FeeService struct {
	warehouseRepo shipping.WarehouseRepository
	zoneRepo      shipping.ZoneRepository
	rateRepo      shipping.RateRepository
	provinces     *shipping.ProvinceDirectory
	config        FeeConfig
	logger        *zap.Logger
	metrics       QuoteRecorder
}

// NewFeeService creates a new FeeService
func NewFeeService(
	warehouseRepo shipping.WarehouseRepository,
	zoneRepo shipping.ZoneRepository,
	rateRepo shipping.RateRepository,
	provinces *shipping.ProvinceDirectory,
	config FeeConfig,
	log *zap.Logger,
) *FeeService {
	if log == nil {
		log = zap.NewNop()
	}
	if provinces == nil {
		provinces = shipping.NewProvinceDirectory(shipping.CapitalProvinceID)
	}
	return &FeeService{
		warehouseRepo: warehouseRepo,
		zoneRepo:      zoneRepo,
		rateRepo:      rateRepo,
		provinces:     provinces,
		config:        config,
		logger:        log,
	}
}

// SetMetrics sets the quote recorder
func (s *FeeService) SetMetrics(m QuoteRecorder) {
	s.metrics = m
}

// Calculate computes the shipping fee for a destination and order amount
func (s *FeeService) Calculate(ctx context.Context, req CalculateFeeRequest) (*ShippingFeeResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "shipping_fee", "calculate")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrProvinceID, req.DestinationProvinceID,
		telemetry.SpanAttrOrderAmount, req.OrderAmount.String(),
	)

	resp, outcome, err := s.calculate(ctx, req)
	if err != nil {
		telemetry.RecordError(span, err)
		s.record(ctx, shipping.QuoteOutcomeError, 0, false)
		return nil, err
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrQuoteOutcome, string(outcome),
		telemetry.SpanAttrZoneName, resp.ZoneName,
		telemetry.SpanAttrShippingFee, resp.ShippingFee,
	)
	s.record(ctx, outcome, resp.ShippingFee, resp.IsFreeShipping)
	return resp, nil
}

func (s *FeeService) calculate(ctx context.Context, req CalculateFeeRequest) (*ShippingFeeResponse, shipping.QuoteOutcome, error) {
	if req.DestinationProvinceID <= 0 {
		return nil, "", shipping.ErrInvalidDestination
	}
	if req.OrderAmount.IsNegative() {
		return nil, "", shared.NewDomainError("INVALID_ORDER_AMOUNT", "Order amount cannot be negative")
	}
	log := logger.WithLogger(ctx, s.logger)

	warehouse, err := s.originWarehouse(ctx)
	if err != nil {
		return nil, "", err
	}

	zones, err := s.zoneRepo.FindActiveByWarehouse(ctx, warehouse.ID)
	if err != nil {
		return nil, "", fmt.Errorf("load shipping zones: %w", err)
	}

	dest := shipping.Destination{
		ProvinceID: req.DestinationProvinceID,
		DistrictID: req.DestinationDistrictID,
	}
	zone, skipped := shipping.MatchZone(zones, dest)
	for _, sk := range skipped {
		log.Warn("skipping shipping zone with malformed id list",
			zap.String("zone_id", sk.ZoneID.String()),
			zap.Error(sk.Err),
		)
	}
	if zone == nil {
		return s.fallbackQuote(warehouse, req.OrderAmount), shipping.QuoteOutcomeFallback, nil
	}

	if _, ok := s.provinces.Lookup(dest.ProvinceID); !ok {
		log.Debug("unknown destination province, using fallback coordinate",
			zap.Int("province_id", dest.ProvinceID),
			zap.Int("fallback_province_id", s.provinces.Fallback().ID),
		)
	}
	distanceKm := shipping.HaversineKm(warehouse.Location(), s.provinces.Coordinate(dest.ProvinceID))

	rate, err := s.rateRepo.FindApplicable(ctx, zone.ID, distanceKm)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, "", shipping.ErrNoShippingRate
		}
		return nil, "", fmt.Errorf("find shipping rate: %w", err)
	}

	distance := decimal.NewFromFloat(distanceKm)
	fee := rate.Fee(distance)
	free := rate.QualifiesForFreeShipping(req.OrderAmount)
	if free {
		fee = decimal.Zero
	}

	band := rate.Band()
	threshold := band.MinOrderAmount.InexactFloat64()
	details := &RateDetails{
		BaseRate:    band.BaseRate.InexactFloat64(),
		PerKmRate:   band.PerKmRate.InexactFloat64(),
		MinDistance: band.MinDistance.InexactFloat64(),
	}
	if band.MaxDistance != nil {
		max := band.MaxDistance.InexactFloat64()
		details.MaxDistance = &max
	}
	address := warehouse.Address

	log.Debug("shipping quote resolved",
		zap.String("warehouse_id", warehouse.ID.String()),
		zap.String("zone_id", zone.ID.String()),
		zap.String("rate_id", rate.ID.String()),
		zap.Float64("distance_km", distanceKm),
		zap.String("fee", fee.String()),
	)

	return &ShippingFeeResponse{
		ShippingFee:           fee.Round(0).IntPart(),
		Distance:              distance.Round(2).InexactFloat64(),
		ZoneName:              zone.Name,
		WarehouseName:         warehouse.Name,
		WarehouseAddress:      &address,
		IsFreeShipping:        free,
		FreeShippingThreshold: &threshold,
		RateDetails:           details,
	}, shipping.QuoteOutcomeMatched, nil
}

// originWarehouse returns the default active warehouse, else the newest active one
func (s *FeeService) originWarehouse(ctx context.Context) (*shipping.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindDefaultActive(ctx)
	if err == nil {
		return warehouse, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("find default warehouse: %w", err)
	}

	warehouse, err = s.warehouseRepo.FindLatestActive(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shipping.ErrNoActiveWarehouse
		}
		return nil, fmt.Errorf("find active warehouse: %w", err)
	}
	return warehouse, nil
}

func (s *FeeService) fallbackQuote(warehouse *shipping.Warehouse, orderAmount decimal.Decimal) *ShippingFeeResponse {
	free := s.config.FallbackFreeThreshold.IsPositive() &&
		orderAmount.GreaterThanOrEqual(s.config.FallbackFreeThreshold)
	fee := s.config.FallbackFee
	if free {
		fee = decimal.Zero
	}
	return &ShippingFeeResponse{
		ShippingFee:    fee.Round(0).IntPart(),
		Distance:       0,
		ZoneName:       s.config.FallbackZoneName,
		WarehouseName:  warehouse.Name,
		IsFreeShipping: free,
	}
}

func (s *FeeService) record(ctx context.Context, outcome shipping.QuoteOutcome, fee int64, free bool) {
	if s.metrics != nil {
		s.metrics.RecordQuote(ctx, outcome, fee, free)
	}
}
