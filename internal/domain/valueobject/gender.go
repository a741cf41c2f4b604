package valueobject

import (
	"fmt"
	"strings"
)

// Gender is captured on the intake form for reporting purposes only. It feeds
// no scoring, explanation, or recommendation rule.
type Gender string

// Accepted values.
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// AllGenders returns the accepted values in intake-form display order.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// GenderFromString reconstructs a Gender from its string representation.
func GenderFromString(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("invalid gender: %s", s)
	}
}

// String returns the gender label.
func (g Gender) String() string {
	return string(g)
}
