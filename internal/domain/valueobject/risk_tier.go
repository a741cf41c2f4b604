package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskTier is an immutable value object classifying dropout risk severity.
type RiskTier struct {
	value string
}

var (
	RiskTierLow    = RiskTier{value: "LOW"}
	RiskTierMedium = RiskTier{value: "MEDIUM"}
	RiskTierHigh   = RiskTier{value: "HIGH"}
)

var (
	tierHighBound   = decimal.NewFromInt(70)
	tierMediumBound = decimal.NewFromInt(50)
)

// RiskTierFromString reconstructs a RiskTier from its string representation.
func RiskTierFromString(s string) (RiskTier, error) {
	switch s {
	case "LOW":
		return RiskTierLow, nil
	case "MEDIUM":
		return RiskTierMedium, nil
	case "HIGH":
		return RiskTierHigh, nil
	default:
		return RiskTier{}, fmt.Errorf("invalid risk tier: %s", s)
	}
}

// RiskTierFromPercentage derives the tier from a dropout percentage (0-100):
// HIGH at 70 and above, MEDIUM from 50 up to 70, LOW below 50.
func RiskTierFromPercentage(pct decimal.Decimal) RiskTier {
	switch {
	case pct.GreaterThanOrEqual(tierHighBound):
		return RiskTierHigh
	case pct.GreaterThanOrEqual(tierMediumBound):
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// String returns the string representation.
func (r RiskTier) String() string {
	return r.value
}

// Display returns the tier label shown to users, for example "HIGH RISK".
func (r RiskTier) Display() string {
	return r.value + " RISK"
}

// IsZero returns true if the RiskTier has not been set.
func (r RiskTier) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskTier.
func (r RiskTier) Equal(other RiskTier) bool {
	return r.value == other.value
}
