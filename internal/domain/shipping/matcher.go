package shipping

import "github.com/google/uuid"

// Destination is the delivery target of a quote
type Destination struct {
	ProvinceID int
	DistrictID *int
}

// SkippedZone records a zone left out of matching because its lists could not be decoded
type SkippedZone struct {
	ZoneID uuid.UUID
	Err    error
}

// MatchZone returns the first zone in order whose coverage contains the
// destination, or nil. Zones with malformed id lists never match and are
// reported in skipped.
func MatchZone(zones []ShippingZone, dest Destination) (matched *ShippingZone, skipped []SkippedZone) {
	for i := range zones {
		coverage, err := zones[i].Coverage()
		if err != nil {
			skipped = append(skipped, SkippedZone{ZoneID: zones[i].ID, Err: err})
			continue
		}
		if coverage.Matches(dest.ProvinceID, dest.DistrictID) {
			return &zones[i], skipped
		}
	}
	return nil, skipped
}
