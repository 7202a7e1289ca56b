package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockZoneRepository struct {
	mock.Mock
}

func (m *mockZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShippingZone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShippingZone), args.Error(1)
}

func (m *mockZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.ShippingZone, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shipping.ShippingZone), args.Error(1)
}

func (m *mockZoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockZoneRepository) FindActiveByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]shipping.ShippingZone, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.ShippingZone), args.Error(1)
}

func (m *mockZoneRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockZoneRepository) Save(ctx context.Context, zone *shipping.ShippingZone) error {
	return m.Called(ctx, zone).Error(0)
}

func (m *mockZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// brokenCache fails every operation
type brokenCache struct{}

func (brokenCache) Get(context.Context, uuid.UUID) ([]shipping.ShippingZone, bool, error) {
	return nil, false, errors.New("cache down")
}
func (brokenCache) Set(context.Context, uuid.UUID, []shipping.ShippingZone, time.Duration) error {
	return errors.New("cache down")
}
func (brokenCache) Invalidate(context.Context, uuid.UUID) error { return errors.New("cache down") }
func (brokenCache) Close() error                                 { return nil }

func TestCachingZoneRepository_FindActiveByWarehouse(t *testing.T) {
	ctx := context.Background()
	whID := uuid.New()
	zones := testZones(t, whID, "Nội thành")

	inner := new(mockZoneRepository)
	inner.On("FindActiveByWarehouse", ctx, whID).Return(zones, nil).Once()

	c := NewInMemoryZoneCache(time.Minute)
	defer c.Close()
	repo := NewCachingZoneRepository(inner, c, time.Hour, nil)

	first, err := repo.FindActiveByWarehouse(ctx, whID)
	require.NoError(t, err)
	second, err := repo.FindActiveByWarehouse(ctx, whID)
	require.NoError(t, err)

	assert.Equal(t, zones, first)
	assert.Equal(t, zones, second)
	inner.AssertNumberOfCalls(t, "FindActiveByWarehouse", 1)
}

func TestCachingZoneRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	whID := uuid.New()
	zones := testZones(t, whID, "Nội thành")
	zone := zones[0]

	c := NewInMemoryZoneCache(time.Minute)
	defer c.Close()

	t.Run("save", func(t *testing.T) {
		inner := new(mockZoneRepository)
		inner.On("Save", ctx, &zone).Return(nil)
		repo := NewCachingZoneRepository(inner, c, time.Hour, nil)
		require.NoError(t, c.Set(ctx, whID, zones, time.Hour))

		require.NoError(t, repo.Save(ctx, &zone))

		_, ok, _ := c.Get(ctx, whID)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		inner := new(mockZoneRepository)
		inner.On("FindByID", ctx, zone.ID).Return(&zone, nil)
		inner.On("Delete", ctx, zone.ID).Return(nil)
		repo := NewCachingZoneRepository(inner, c, time.Hour, nil)
		require.NoError(t, c.Set(ctx, whID, zones, time.Hour))

		require.NoError(t, repo.Delete(ctx, zone.ID))

		_, ok, _ := c.Get(ctx, whID)
		assert.False(t, ok)
	})

	t.Run("failed save keeps the entry", func(t *testing.T) {
		inner := new(mockZoneRepository)
		inner.On("Save", ctx, &zone).Return(errors.New("db down"))
		repo := NewCachingZoneRepository(inner, c, time.Hour, nil)
		require.NoError(t, c.Set(ctx, whID, zones, time.Hour))

		require.Error(t, repo.Save(ctx, &zone))

		_, ok, _ := c.Get(ctx, whID)
		assert.True(t, ok)
	})

	t.Run("delete of unknown zone", func(t *testing.T) {
		inner := new(mockZoneRepository)
		missing := uuid.New()
		inner.On("FindByID", ctx, missing).Return(nil, shipping.ErrZoneNotFound)
		repo := NewCachingZoneRepository(inner, c, time.Hour, nil)

		assert.ErrorIs(t, repo.Delete(ctx, missing), shipping.ErrZoneNotFound)
		inner.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCachingZoneRepository_CacheFailuresFallThrough(t *testing.T) {
	ctx := context.Background()
	whID := uuid.New()
	zones := testZones(t, whID, "Nội thành")

	inner := new(mockZoneRepository)
	inner.On("FindActiveByWarehouse", ctx, whID).Return(zones, nil)
	inner.On("Save", ctx, &zones[0]).Return(nil)

	core, recorded := observer.New(zapcore.WarnLevel)
	repo := NewCachingZoneRepository(inner, brokenCache{}, time.Hour, zap.New(core))

	got, err := repo.FindActiveByWarehouse(ctx, whID)
	require.NoError(t, err)
	assert.Equal(t, zones, got)
	require.NoError(t, repo.Save(ctx, &zones[0]))

	assert.Equal(t, 1, recorded.FilterMessage("zone cache read failed").Len())
	assert.Equal(t, 1, recorded.FilterMessage("zone cache write failed").Len())
	assert.Equal(t, 1, recorded.FilterMessage("zone cache invalidation failed").Len())
}
