package service

import (
	"github.com/shopspring/decimal"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
)

// Rule codes identify the scoring rules in contribution breakdowns.
const (
	RuleMonthsSinceLastClaim = "months_since_last_claim"
	RuleNoClaimsHistory      = "no_claims_history"
	RuleClaimFrequency       = "claim_frequency"
	RuleAgeBand              = "age_band"
	RuleRegion               = "region"
	RuleClaimDenialRate      = "claim_denial_rate"
	RuleClinicEngagement     = "clinic_engagement"
	RuleClinicDistance       = "clinic_distance"
	RuleLowBalance           = "low_balance"
	RulePremiumBurden        = "premium_burden"
)

// maxProbability caps the summed rule weights. The cap applies to the
// probability only; the contribution breakdown keeps the raw weights.
var maxProbability = decimal.RequireFromString("0.95")

// regionWeights holds the per-region contribution. Regions outside the table
// fall back to defaultRegionWeight.
var regionWeights = map[valueobject.Region]string{
	valueobject.RegionLagos:        "0.18",
	valueobject.RegionEnugu:        "0.16",
	valueobject.RegionKaduna:       "0.14",
	valueobject.RegionKano:         "0.12",
	valueobject.RegionAbuja:        "0.10",
	valueobject.RegionJos:          "0.08",
	valueobject.RegionIbadan:       "0.06",
	valueobject.RegionPortHarcourt: "0.04",
}

const defaultRegionWeight = "0.10"

// RiskScorer is a domain service that calculates dropout probabilities using
// rule-based logic.
type RiskScorer struct{}

// NewRiskScorer creates a new RiskScorer instance.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score evaluates the dropout risk of a beneficiary profile. Each rule is an
// independent predicate adding a fixed weight; weights are summed and the
// total is capped at 0.95.
func (s *RiskScorer) Score(profile model.BeneficiaryProfile) ScoreResult {
	total := decimal.Zero
	contributions := make([]model.Contribution, 0)

	add := func(rule, weight string) {
		w := decimal.RequireFromString(weight)
		total = total.Add(w)
		contributions = append(contributions, model.Contribution{Rule: rule, Weight: w})
	}

	// Rule: months since the last claim, the dominant predictor.
	switch months := profile.MonthsSinceLastClaim(); {
	case months >= 12:
		add(RuleMonthsSinceLastClaim, "0.45")
	case months >= 6:
		add(RuleMonthsSinceLastClaim, "0.30")
	case months >= 3:
		add(RuleMonthsSinceLastClaim, "0.15")
	}

	// Rule: claims history. No claims at all signals disengagement; a high
	// claim count signals churn on the other end.
	switch claims := profile.TotalClaimsFiled(); {
	case claims == 0:
		add(RuleNoClaimsHistory, "0.15")
	case claims > 10:
		add(RuleClaimFrequency, "0.20")
	case claims > 5:
		add(RuleClaimFrequency, "0.10")
	}

	// Rule: age band.
	switch age := profile.Age(); {
	case age < 25:
		add(RuleAgeBand, "0.12")
	case age > 65:
		add(RuleAgeBand, "0.15")
	case age > 55:
		add(RuleAgeBand, "0.08")
	}

	// Rule: regional baseline.
	weight, ok := regionWeights[profile.Region()]
	if !ok {
		weight = defaultRegionWeight
	}
	add(RuleRegion, weight)

	// Rule: claim denial rate.
	switch denial := profile.ClaimDenialRatePct(); {
	case denial > 25:
		add(RuleClaimDenialRate, "0.12")
	case denial > 15:
		add(RuleClaimDenialRate, "0.08")
	}

	// Rule: clinic engagement. Too few visits means the beneficiary is not
	// using the cover; too many means heavy utilization.
	switch visits := profile.ClinicVisits12Mo(); {
	case visits < 2:
		add(RuleClinicEngagement, "0.10")
	case visits > 15:
		add(RuleClinicEngagement, "0.05")
	}

	// Rule: distance to the nearest clinic.
	if profile.DistanceToClinicKm() > 50 {
		add(RuleClinicDistance, "0.08")
	}

	// Rule: low average balance. The tighter bound takes precedence, so a
	// balance of 500 contributes 0.15, not 0.10.
	balance := profile.AvgMonthlyBalance().Amount()
	switch {
	case balance.LessThan(decimal.NewFromInt(1000)):
		add(RuleLowBalance, "0.15")
	case balance.LessThan(decimal.NewFromInt(2000)):
		add(RuleLowBalance, "0.10")
	}

	// Rule: premium burden relative to balance.
	burdenBound := balance.Mul(decimal.RequireFromString("0.3"))
	if profile.MonthlyPremium().Amount().GreaterThan(burdenBound) {
		add(RulePremiumBurden, "0.08")
	}

	probability := total
	if probability.GreaterThan(maxProbability) {
		probability = maxProbability
	}

	return ScoreResult{
		Probability:   probability,
		Contributions: contributions,
	}
}
