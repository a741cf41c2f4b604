package model

import "github.com/shopspring/decimal"

// Contribution records one triggered scoring rule and the raw weight it added
// to the dropout probability before capping.
type Contribution struct {
	Rule   string
	Weight decimal.Decimal
}
