package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Outcome is an immutable value object for the binary dropout prediction.
type Outcome struct {
	value string
}

var (
	OutcomeWillDropout    = Outcome{value: "WILL_DROPOUT"}
	OutcomeWillNotDropout = Outcome{value: "WILL_NOT_DROPOUT"}
)

var dropoutBound = decimal.NewFromInt(50)

// OutcomeFromString reconstructs an Outcome from its string representation.
func OutcomeFromString(s string) (Outcome, error) {
	switch s {
	case "WILL_DROPOUT":
		return OutcomeWillDropout, nil
	case "WILL_NOT_DROPOUT":
		return OutcomeWillNotDropout, nil
	default:
		return Outcome{}, fmt.Errorf("invalid outcome: %s", s)
	}
}

// OutcomeFromPercentage derives the outcome from a dropout percentage (0-100):
// WILL_DROPOUT at 50 and above.
func OutcomeFromPercentage(pct decimal.Decimal) Outcome {
	if pct.GreaterThanOrEqual(dropoutBound) {
		return OutcomeWillDropout
	}
	return OutcomeWillNotDropout
}

// String returns the string representation.
func (o Outcome) String() string {
	return o.value
}

// Display returns the outcome label shown to users, for example "WILL DROPOUT".
func (o Outcome) Display() string {
	return strings.ReplaceAll(o.value, "_", " ")
}

// IsDropout returns true for the WILL_DROPOUT outcome.
func (o Outcome) IsDropout() bool {
	return o.value == "WILL_DROPOUT"
}

// IsZero returns true if the Outcome has not been set.
func (o Outcome) IsZero() bool {
	return o.value == ""
}

// Equal checks equality with another Outcome.
func (o Outcome) Equal(other Outcome) bool {
	return o.value == other.value
}
