package shipping

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CapitalProvinceID is the province used when a destination has no known coordinate (Hà Nội)
const CapitalProvinceID = 1

// Province is a first-level administrative unit with the coordinate of its capital
type Province struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
}

// Provinces are keyed by GSO administrative code. Coordinates are the
// provincial capitals, which is the resolution the fee tables are priced at.
var provinceTable = map[int]Province{
	1:  {1, "Hà Nội", Coordinate{21.0285, 105.8542}},
	2:  {2, "Hà Giang", Coordinate{22.8233, 104.9836}},
	4:  {4, "Cao Bằng", Coordinate{22.6657, 106.2570}},
	6:  {6, "Bắc Kạn", Coordinate{22.1470, 105.8348}},
	8:  {8, "Tuyên Quang", Coordinate{21.8236, 105.2140}},
	10: {10, "Lào Cai", Coordinate{22.4856, 103.9707}},
	11: {11, "Điện Biên", Coordinate{21.3860, 103.0230}},
	12: {12, "Lai Châu", Coordinate{22.3964, 103.4582}},
	14: {14, "Sơn La", Coordinate{21.3256, 103.9188}},
	15: {15, "Yên Bái", Coordinate{21.7229, 104.9113}},
	17: {17, "Hòa Bình", Coordinate{20.8133, 105.3383}},
	19: {19, "Thái Nguyên", Coordinate{21.5942, 105.8482}},
	20: {20, "Lạng Sơn", Coordinate{21.8537, 106.7615}},
	22: {22, "Quảng Ninh", Coordinate{20.9599, 107.0425}},
	24: {24, "Bắc Giang", Coordinate{21.2731, 106.1946}},
	25: {25, "Phú Thọ", Coordinate{21.3227, 105.4020}},
	26: {26, "Vĩnh Phúc", Coordinate{21.3089, 105.6049}},
	27: {27, "Bắc Ninh", Coordinate{21.1861, 106.0763}},
	30: {30, "Hải Dương", Coordinate{20.9373, 106.3146}},
	31: {31, "Hải Phòng", Coordinate{20.8449, 106.6881}},
	33: {33, "Hưng Yên", Coordinate{20.6464, 106.0511}},
	34: {34, "Thái Bình", Coordinate{20.4463, 106.3366}},
	35: {35, "Hà Nam", Coordinate{20.5835, 105.9230}},
	36: {36, "Nam Định", Coordinate{20.4388, 106.1621}},
	37: {37, "Ninh Bình", Coordinate{20.2506, 105.9745}},
	38: {38, "Thanh Hóa", Coordinate{19.8067, 105.7852}},
	40: {40, "Nghệ An", Coordinate{18.6796, 105.6813}},
	42: {42, "Hà Tĩnh", Coordinate{18.3428, 105.9057}},
	44: {44, "Quảng Bình", Coordinate{17.4689, 106.6222}},
	45: {45, "Quảng Trị", Coordinate{16.8163, 107.1003}},
	46: {46, "Thừa Thiên Huế", Coordinate{16.4637, 107.5909}},
	48: {48, "Đà Nẵng", Coordinate{16.0544, 108.2022}},
	49: {49, "Quảng Nam", Coordinate{15.5736, 108.4740}},
	51: {51, "Quảng Ngãi", Coordinate{15.1214, 108.8044}},
	52: {52, "Bình Định", Coordinate{13.7820, 109.2196}},
	54: {54, "Phú Yên", Coordinate{13.0882, 109.0929}},
	56: {56, "Khánh Hòa", Coordinate{12.2388, 109.1967}},
	58: {58, "Ninh Thuận", Coordinate{11.5646, 108.9886}},
	60: {60, "Bình Thuận", Coordinate{10.9289, 108.1021}},
	62: {62, "Kon Tum", Coordinate{14.3498, 108.0005}},
	64: {64, "Gia Lai", Coordinate{13.9833, 108.0000}},
	66: {66, "Đắk Lắk", Coordinate{12.6667, 108.0500}},
	67: {67, "Đắk Nông", Coordinate{12.0045, 107.6871}},
	68: {68, "Lâm Đồng", Coordinate{11.9404, 108.4583}},
	70: {70, "Bình Phước", Coordinate{11.5349, 106.8823}},
	72: {72, "Tây Ninh", Coordinate{11.3100, 106.0983}},
	74: {74, "Bình Dương", Coordinate{10.9804, 106.6519}},
	75: {75, "Đồng Nai", Coordinate{10.9574, 106.8426}},
	77: {77, "Bà Rịa - Vũng Tàu", Coordinate{10.4963, 107.1684}},
	79: {79, "Hồ Chí Minh", Coordinate{10.8231, 106.6297}},
	80: {80, "Long An", Coordinate{10.5360, 106.4137}},
	82: {82, "Tiền Giang", Coordinate{10.3600, 106.3600}},
	83: {83, "Bến Tre", Coordinate{10.2434, 106.3756}},
	84: {84, "Trà Vinh", Coordinate{9.9347, 106.3453}},
	86: {86, "Vĩnh Long", Coordinate{10.2537, 105.9722}},
	87: {87, "Đồng Tháp", Coordinate{10.4938, 105.6882}},
	89: {89, "An Giang", Coordinate{10.3864, 105.4352}},
	91: {91, "Kiên Giang", Coordinate{10.0125, 105.0809}},
	92: {92, "Cần Thơ", Coordinate{10.0452, 105.7469}},
	93: {93, "Hậu Giang", Coordinate{9.7845, 105.4701}},
	94: {94, "Sóc Trăng", Coordinate{9.6025, 105.9739}},
	95: {95, "Bạc Liêu", Coordinate{9.2941, 105.7278}},
	96: {96, "Cà Mau", Coordinate{9.1769, 105.1524}},
}

// ProvinceDirectory resolves province ids to coordinates
type ProvinceDirectory struct {
	provinces map[int]Province
	fallback  Province
}

// NewProvinceDirectory creates a directory over the built-in province table.
// Unknown ids resolve to fallbackID, or to the capital when fallbackID is not in the table.
func NewProvinceDirectory(fallbackID int) *ProvinceDirectory {
	fallback, ok := provinceTable[fallbackID]
	if !ok {
		fallback = provinceTable[CapitalProvinceID]
	}
	return &ProvinceDirectory{
		provinces: provinceTable,
		fallback:  fallback,
	}
}

// Lookup returns the province with the given id
func (d *ProvinceDirectory) Lookup(id int) (Province, bool) {
	p, ok := d.provinces[id]
	return p, ok
}

// Coordinate returns the coordinate for a province id, falling back to the
// directory's fallback province when the id is unknown
func (d *ProvinceDirectory) Coordinate(id int) Coordinate {
	if p, ok := d.provinces[id]; ok {
		return p.Coordinate
	}
	return d.fallback.Coordinate
}

// Fallback returns the province used for unknown ids
func (d *ProvinceDirectory) Fallback() Province {
	return d.fallback
}

// All returns every province ordered by id
func (d *ProvinceDirectory) All() []Province {
	result := make([]Province, 0, len(d.provinces))
	for _, p := range d.provinces {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Search returns provinces whose name contains query, ignoring case and
// Vietnamese diacritics. An empty query returns every province.
func (d *ProvinceDirectory) Search(query string) []Province {
	needle := FoldName(query)
	all := d.All()
	if needle == "" {
		return all
	}
	result := make([]Province, 0)
	for _, p := range all {
		if strings.Contains(FoldName(p.Name), needle) {
			result = append(result, p)
		}
	}
	return result
}

// FoldName lower-cases s and strips diacritics, so "Hà Nội" and "ha noi" compare equal
func FoldName(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			switch r {
			case 'đ':
				return 'd'
			case 'Đ':
				return 'D'
			}
			return r
		}),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
