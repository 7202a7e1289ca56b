package shipping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    IDList
		wantErr bool
	}{
		{"empty column", "", IDList{}, false},
		{"json null", "null", IDList{}, false},
		{"empty array", "[]", IDList{}, false},
		{"numbers", "[1, 79]", IDList{1, 79}, false},
		{"numeric strings", `["1", " 79 "]`, IDList{1, 79}, false},
		{"mixed", `[1, "48"]`, IDList{1, 48}, false},
		{"not an array", `{"a":1}`, nil, true},
		{"fractional", "[1.5]", nil, true},
		{"non numeric string", `["hanoi"]`, nil, true},
		{"nested", "[[1]]", nil, true},
		{"truncated", "[1, 2", nil, true},
		{"integral float", "[79.0]", IDList{79}, false},
		{"exponent", "[1e2, 7.9e1]", IDList{100, 79}, false},
		{"out of range", "[1e20]", nil, true},
		{"trailing garbage", "[79] garbage", nil, true},
		{"second array", "[79][1]", nil, true},
		{"trailing object", `[79] {}`, nil, true},
		{"trailing whitespace", "[79]\n\t", IDList{79}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDList(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDList_String(t *testing.T) {
	assert.Equal(t, "[]", IDList{}.String())
	assert.Equal(t, "[1,79]", IDList{1, 79}.String())
}

func TestZoneCoverage_Matches(t *testing.T) {
	district := 5
	other := 6

	t.Run("empty lists match everything", func(t *testing.T) {
		c := ZoneCoverage{}
		assert.True(t, c.Matches(1, nil))
		assert.True(t, c.Matches(96, &district))
	})

	t.Run("province allow-list", func(t *testing.T) {
		c := ZoneCoverage{Provinces: IDList{1, 79}}
		assert.True(t, c.Matches(79, nil))
		assert.False(t, c.Matches(48, nil))
	})

	t.Run("district list ignored when no district given", func(t *testing.T) {
		c := ZoneCoverage{Provinces: IDList{1}, Districts: IDList{district}}
		assert.True(t, c.Matches(1, nil))
	})

	t.Run("district allow-list", func(t *testing.T) {
		c := ZoneCoverage{Provinces: IDList{1}, Districts: IDList{district}}
		assert.True(t, c.Matches(1, &district))
		assert.False(t, c.Matches(1, &other))
	})

	t.Run("district list alone", func(t *testing.T) {
		c := ZoneCoverage{Districts: IDList{district}}
		assert.True(t, c.Matches(48, &district))
		assert.False(t, c.Matches(48, &other))
	})
}

func TestNewShippingZone(t *testing.T) {
	warehouseID := uuid.New()

	t.Run("normalises id lists", func(t *testing.T) {
		zone, err := NewShippingZone(warehouseID, " Inner city ", []int{79, 1, 79}, nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, zone.ID)
		assert.Equal(t, warehouseID, zone.WarehouseID)
		assert.Equal(t, "Inner city", zone.Name)
		assert.Equal(t, "[1,79]", zone.ProvinceIDs)
		assert.Equal(t, "[]", zone.DistrictIDs)
		assert.True(t, zone.IsActive)
	})

	t.Run("fails without warehouse", func(t *testing.T) {
		_, err := NewShippingZone(uuid.Nil, "Zone", nil, nil)
		assert.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewShippingZone(warehouseID, "  ", nil, nil)
		assert.ErrorContains(t, err, "cannot be empty")
	})

	t.Run("fails with non-positive id", func(t *testing.T) {
		_, err := NewShippingZone(warehouseID, "Zone", []int{1}, []int{0})
		assert.ErrorContains(t, err, "must be positive")
	})
}

func TestShippingZone_Update(t *testing.T) {
	zone, err := NewShippingZone(uuid.New(), "Zone", []int{1}, nil)
	require.NoError(t, err)
	before := zone.UpdatedAt

	require.NoError(t, zone.Update("North", []int{2, 1}, []int{10}))
	assert.Equal(t, "North", zone.Name)
	assert.Equal(t, "[1,2]", zone.ProvinceIDs)
	assert.Equal(t, "[10]", zone.DistrictIDs)
	assert.False(t, zone.UpdatedAt.Before(before))

	assert.Error(t, zone.Update("", nil, nil))
	assert.Equal(t, "North", zone.Name)
}

func TestShippingZone_Coverage(t *testing.T) {
	t.Run("decodes stored lists", func(t *testing.T) {
		zone := ShippingZone{ProvinceIDs: "[1,79]", DistrictIDs: ""}
		c, err := zone.Coverage()
		require.NoError(t, err)
		assert.Equal(t, IDList{1, 79}, c.Provinces)
		assert.Empty(t, c.Districts)
	})

	t.Run("malformed column", func(t *testing.T) {
		zone := ShippingZone{ProvinceIDs: "[1,", DistrictIDs: "[]"}
		_, err := zone.Coverage()
		assert.ErrorContains(t, err, "province_ids")
	})
}

func TestMatchZone(t *testing.T) {
	broken := ShippingZone{BaseEntity: shared.NewBaseEntity(), Name: "broken", ProvinceIDs: "not json"}
	north := ShippingZone{BaseEntity: shared.NewBaseEntity(), Name: "north", ProvinceIDs: "[1,31]"}
	all := ShippingZone{BaseEntity: shared.NewBaseEntity(), Name: "all", ProvinceIDs: "[]", DistrictIDs: "[]"}

	t.Run("first match in order wins", func(t *testing.T) {
		zone, skipped := MatchZone([]ShippingZone{broken, north, all}, Destination{ProvinceID: 1})
		require.NotNil(t, zone)
		assert.Equal(t, "north", zone.Name)
		require.Len(t, skipped, 1)
		assert.Equal(t, broken.ID, skipped[0].ZoneID)
	})

	t.Run("wildcard catches the rest", func(t *testing.T) {
		zone, _ := MatchZone([]ShippingZone{north, all}, Destination{ProvinceID: 79})
		require.NotNil(t, zone)
		assert.Equal(t, "all", zone.Name)
	})

	t.Run("malformed zone never matches", func(t *testing.T) {
		zone, skipped := MatchZone([]ShippingZone{broken}, Destination{ProvinceID: 1})
		assert.Nil(t, zone)
		assert.Len(t, skipped, 1)
	})

	t.Run("no zones", func(t *testing.T) {
		zone, skipped := MatchZone(nil, Destination{ProvinceID: 1})
		assert.Nil(t, zone)
		assert.Empty(t, skipped)
	})
}
