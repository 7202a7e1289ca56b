package shipping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	hanoi := Coordinate{Latitude: 21.0285, Longitude: 105.8542}

	t.Run("creates warehouse with valid input", func(t *testing.T) {
		wh, err := NewWarehouse(" Kho Hà Nội ", "131 Lê Thanh Nghị", hanoi)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, wh.ID)
		assert.Equal(t, "Kho Hà Nội", wh.Name)
		assert.Equal(t, hanoi, wh.Location())
		assert.True(t, wh.IsActive)
		assert.False(t, wh.IsDefault)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		wh, err := NewWarehouse("", "", hanoi)
		assert.Nil(t, wh)
		assert.ErrorContains(t, err, "cannot be empty")
	})

	t.Run("fails with invalid coordinate", func(t *testing.T) {
		_, err := NewWarehouse("Kho", "", Coordinate{Latitude: 91})
		assert.ErrorContains(t, err, "Latitude")
	})

	t.Run("fails with long address", func(t *testing.T) {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}
		_, err := NewWarehouse("Kho", string(long), hanoi)
		assert.ErrorContains(t, err, "500 characters")
	})
}

func TestWarehouse_Lifecycle(t *testing.T) {
	wh, err := NewWarehouse("Kho", "", Coordinate{21, 105})
	require.NoError(t, err)

	wh.SetDefault(true)
	assert.True(t, wh.IsDefault)

	wh.Deactivate()
	assert.False(t, wh.IsActive)
	assert.False(t, wh.IsDefault)

	wh.Activate()
	assert.True(t, wh.IsActive)

	require.NoError(t, wh.Relocate(Coordinate{10.8, 106.6}))
	assert.Equal(t, Coordinate{10.8, 106.6}, wh.Location())
	assert.Error(t, wh.Relocate(Coordinate{0, 200}))

	require.NoError(t, wh.Update("Kho HCM", "Quận 1"))
	assert.Equal(t, "Kho HCM", wh.Name)
	assert.Equal(t, "Quận 1", wh.Address)
}
