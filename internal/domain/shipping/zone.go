package shipping

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// IDList is a set of administrative ids stored as a JSON array
type IDList []int

// ParseIDList decodes a JSON array column. Empty input and JSON null decode
// to an empty list. Elements may be integral numbers (79, 79.0, 7.9e1) or
// numeric strings. Trailing data after the array is an error.
func ParseIDList(raw string) (IDList, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return IDList{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("decode id list: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode id list: trailing data after array")
	}

	ids := make(IDList, 0, len(elems))
	for _, e := range elems {
		var (
			id  int
			err error
		)
		switch v := e.(type) {
		case json.Number:
			id, err = integralID(v.String())
		case string:
			id, err = strconv.Atoi(strings.TrimSpace(v))
		default:
			return nil, fmt.Errorf("decode id list: unsupported element %v", e)
		}
		if err != nil {
			return nil, fmt.Errorf("decode id list: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// integralID accepts any JSON number whose value is a whole int32.
func integralID(text string) (int, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("id %s is not an integer", text)
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, fmt.Errorf("id %s out of range", text)
	}
	return int(d.IntPart()), nil
}

// String encodes the list as a canonical JSON array
func (l IDList) String() string {
	if len(l) == 0 {
		return "[]"
	}
	parts := make([]string, len(l))
	for i, id := range l {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Contains reports whether id is in the list
func (l IDList) Contains(id int) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// normalizeIDs sorts and de-duplicates ids
func normalizeIDs(ids []int) IDList {
	seen := make(map[int]struct{}, len(ids))
	out := make(IDList, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// ZoneCoverage is the decoded allow-list of a zone. Empty lists are wildcards.
type ZoneCoverage struct {
	Provinces IDList
	Districts IDList
}

// Matches reports whether a destination falls inside the coverage
func (c ZoneCoverage) Matches(provinceID int, districtID *int) bool {
	if len(c.Provinces) > 0 && !c.Provinces.Contains(provinceID) {
		return false
	}
	if len(c.Districts) > 0 && districtID != nil && !c.Districts.Contains(*districtID) {
		return false
	}
	return true
}

// ShippingZone groups provinces and districts served by one warehouse
type ShippingZone struct {
	shared.BaseEntity
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	ProvinceIDs string    `gorm:"column:province_ids;type:text"`
	DistrictIDs string    `gorm:"column:district_ids;type:text"`
	IsActive    bool      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ShippingZone) TableName() string {
	return "shipping_zones"
}

// NewShippingZone creates an active zone owned by a warehouse
func NewShippingZone(warehouseID uuid.UUID, name string, provinceIDs, districtIDs []int) (*ShippingZone, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID is required")
	}
	if err := validateZoneName(name); err != nil {
		return nil, err
	}
	if err := validateIDs(provinceIDs, districtIDs); err != nil {
		return nil, err
	}

	return &ShippingZone{
		BaseEntity:  shared.NewBaseEntity(),
		WarehouseID: warehouseID,
		Name:        strings.TrimSpace(name),
		ProvinceIDs: normalizeIDs(provinceIDs).String(),
		DistrictIDs: normalizeIDs(districtIDs).String(),
		IsActive:    true,
	}, nil
}

// Update replaces the zone's name and coverage
func (z *ShippingZone) Update(name string, provinceIDs, districtIDs []int) error {
	if err := validateZoneName(name); err != nil {
		return err
	}
	if err := validateIDs(provinceIDs, districtIDs); err != nil {
		return err
	}
	z.Name = strings.TrimSpace(name)
	z.ProvinceIDs = normalizeIDs(provinceIDs).String()
	z.DistrictIDs = normalizeIDs(districtIDs).String()
	z.Touch()
	return nil
}

// SetActive toggles whether the zone takes part in matching
func (z *ShippingZone) SetActive(active bool) {
	z.IsActive = active
	z.Touch()
}

// Coverage decodes the stored province and district lists
func (z *ShippingZone) Coverage() (ZoneCoverage, error) {
	provinces, err := ParseIDList(z.ProvinceIDs)
	if err != nil {
		return ZoneCoverage{}, fmt.Errorf("zone %s province_ids: %w", z.ID, err)
	}
	districts, err := ParseIDList(z.DistrictIDs)
	if err != nil {
		return ZoneCoverage{}, fmt.Errorf("zone %s district_ids: %w", z.ID, err)
	}
	return ZoneCoverage{Provinces: provinces, Districts: districts}, nil
}

func validateZoneName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Zone name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Zone name cannot exceed 200 characters")
	}
	return nil
}

func validateIDs(lists ...[]int) error {
	for _, ids := range lists {
		for _, id := range ids {
			if id <= 0 {
				return shared.NewDomainError("INVALID_IDS", "Province and district IDs must be positive")
			}
		}
	}
	return nil
}
