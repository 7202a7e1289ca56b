package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testZones(t *testing.T, warehouseID uuid.UUID, names ...string) []shipping.ShippingZone {
	t.Helper()
	zones := make([]shipping.ShippingZone, 0, len(names))
	for i, name := range names {
		z, err := shipping.NewShippingZone(warehouseID, name, []int{i + 1}, nil)
		require.NoError(t, err)
		zones = append(zones, *z)
	}
	return zones
}

func TestInMemoryZoneCache_GetSet(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewInMemoryZoneCache(time.Minute)
	defer c.Close()
	ctx := context.Background()
	whID := uuid.New()

	_, ok, err := c.Get(ctx, whID)
	require.NoError(t, err)
	assert.False(t, ok)

	zones := testZones(t, whID, "Nội thành", "Ngoại thành")
	require.NoError(t, c.Set(ctx, whID, zones, time.Hour))

	got, ok, err := c.Get(ctx, whID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, zones, got)

	t.Run("returned slice is a copy", func(t *testing.T) {
		got[0].Name = "changed"
		again, _, _ := c.Get(ctx, whID)
		assert.Equal(t, "Nội thành", again[0].Name)
	})

	t.Run("empty list is a hit", func(t *testing.T) {
		other := uuid.New()
		require.NoError(t, c.Set(ctx, other, nil, time.Hour))
		got, ok, err := c.Get(ctx, other)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, got)
	})
}

func TestInMemoryZoneCache_Expiry(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewInMemoryZoneCache(5 * time.Millisecond)
	defer c.Close()
	ctx := context.Background()
	whID := uuid.New()

	require.NoError(t, c.Set(ctx, whID, testZones(t, whID, "A"), 10*time.Millisecond))

	assert.Eventually(t, func() bool {
		_, ok, _ := c.Get(ctx, whID)
		return !ok
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestInMemoryZoneCache_Invalidate(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewInMemoryZoneCache(time.Minute)
	defer c.Close()
	ctx := context.Background()
	whID := uuid.New()

	require.NoError(t, c.Set(ctx, whID, testZones(t, whID, "A"), time.Hour))
	require.NoError(t, c.Invalidate(ctx, whID))

	_, ok, err := c.Get(ctx, whID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryZoneCache_CloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewInMemoryZoneCache(time.Millisecond)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}
