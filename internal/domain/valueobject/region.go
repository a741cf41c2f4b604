package valueobject

import "strings"

// Region identifies a beneficiary's home region. The scorer carries a
// calibrated weight table for a fixed set of regions; values outside the set
// are preserved verbatim and scored with the default regional weight.
type Region string

// Supported regions.
const (
	RegionLagos        Region = "Lagos"
	RegionEnugu        Region = "Enugu"
	RegionKaduna       Region = "Kaduna"
	RegionKano         Region = "Kano"
	RegionAbuja        Region = "Abuja"
	RegionJos          Region = "Jos"
	RegionIbadan       Region = "Ibadan"
	RegionPortHarcourt Region = "Port Harcourt"
)

// AllRegions returns the supported regions in intake-form display order.
func AllRegions() []Region {
	return []Region{
		RegionLagos,
		RegionEnugu,
		RegionKaduna,
		RegionKano,
		RegionAbuja,
		RegionJos,
		RegionIbadan,
		RegionPortHarcourt,
	}
}

// NewRegion normalizes free-form input to its canonical region when it names
// a supported one, and otherwise preserves the trimmed input.
func NewRegion(s string) Region {
	trimmed := strings.TrimSpace(s)
	for _, r := range AllRegions() {
		if strings.EqualFold(trimmed, string(r)) {
			return r
		}
	}
	return Region(trimmed)
}

// IsKnown reports whether the region is one of the supported set.
func (r Region) IsKnown() bool {
	for _, known := range AllRegions() {
		if r == known {
			return true
		}
	}
	return false
}

// String returns the region name.
func (r Region) String() string {
	return string(r)
}
