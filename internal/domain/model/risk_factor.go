package model

// RiskFactor is one human-readable driver of a dropout prediction, surfaced
// to field agents alongside the score. Factors are emitted in a fixed order;
// at most one carries the TopFactor flag.
type RiskFactor struct {
	Code        string
	Description string
	TopFactor   bool
}
