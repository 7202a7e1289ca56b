package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Warehouse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarehouseRepository) FindDefaultActive(ctx context.Context) (*shipping.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindLatestActive(ctx context.Context) (*shipping.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *shipping.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, warehouse *shipping.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) SetDefault(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockZoneRepository is a mock implementation of ZoneRepository
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShippingZone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShippingZone), args.Error(1)
}

func (m *MockZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.ShippingZone, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.ShippingZone), args.Error(1)
}

func (m *MockZoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockZoneRepository) FindActiveByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]shipping.ShippingZone, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.ShippingZone), args.Error(1)
}

func (m *MockZoneRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockZoneRepository) Save(ctx context.Context, zone *shipping.ShippingZone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRateRepository is a mock implementation of RateRepository
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShippingRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShippingRate), args.Error(1)
}

func (m *MockRateRepository) FindByZone(ctx context.Context, zoneID uuid.UUID) ([]shipping.ShippingRate, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.ShippingRate), args.Error(1)
}

func (m *MockRateRepository) FindApplicable(ctx context.Context, zoneID uuid.UUID, distance float64) (*shipping.ShippingRate, error) {
	args := m.Called(ctx, zoneID, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShippingRate), args.Error(1)
}

func (m *MockRateRepository) Save(ctx context.Context, rate *shipping.ShippingRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuoteRecorder is a mock implementation of QuoteRecorder
type MockQuoteRecorder struct {
	mock.Mock
}

func (m *MockQuoteRecorder) RecordQuote(ctx context.Context, outcome shipping.QuoteOutcome, fee int64, free bool) {
	m.Called(ctx, outcome, fee, free)
}

var (
	_ shipping.WarehouseRepository = (*MockWarehouseRepository)(nil)
	_ shipping.ZoneRepository      = (*MockZoneRepository)(nil)
	_ shipping.RateRepository      = (*MockRateRepository)(nil)
	_ QuoteRecorder                = (*MockQuoteRecorder)(nil)
)
