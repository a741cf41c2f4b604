package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
)

// Factor codes identify the explanation factors independently of their
// display text.
const (
	FactorMonthsWithoutClaims = "months_without_claims"
	FactorNoClaimsHistory     = "no_claims_history"
	FactorHighClaimFrequency  = "high_claim_frequency"
	FactorAgeRisk             = "age_risk"
	FactorHighRiskRegion      = "high_risk_region"
	FactorHighDenialRate      = "high_denial_rate"
	FactorLowBalance          = "low_balance"
)

// highRiskRegions are the regions called out in explanations.
var highRiskRegions = map[valueobject.Region]bool{
	valueobject.RegionLagos:  true,
	valueobject.RegionEnugu:  true,
	valueobject.RegionKaduna: true,
}

var lowBalanceBound = decimal.NewFromInt(2000)

// Explainer derives the human-readable risk factors for a profile. Factor
// thresholds are looser than the scoring thresholds, so a factor can appear
// for a profile whose matching rule contributed nothing and a rule can
// contribute weight without surfacing a factor.
type Explainer struct{}

// NewExplainer creates a new Explainer instance.
func NewExplainer() *Explainer {
	return &Explainer{}
}

// Explain returns the triggered risk factors in a fixed order. An empty slice
// means no major factor was identified.
func (e *Explainer) Explain(profile model.BeneficiaryProfile) []model.RiskFactor {
	factors := make([]model.RiskFactor, 0)

	if months := profile.MonthsSinceLastClaim(); months >= 6 {
		factors = append(factors, model.RiskFactor{
			Code:        FactorMonthsWithoutClaims,
			Description: fmt.Sprintf("%d months without claims", months),
			TopFactor:   true,
		})
	}

	if claims := profile.TotalClaimsFiled(); claims == 0 {
		factors = append(factors, model.RiskFactor{
			Code:        FactorNoClaimsHistory,
			Description: "No claims history",
		})
	} else if claims > 5 {
		factors = append(factors, model.RiskFactor{
			Code:        FactorHighClaimFrequency,
			Description: fmt.Sprintf("High claim frequency (%d claims)", claims),
		})
	}

	if age := profile.Age(); age < 25 || age > 55 {
		factors = append(factors, model.RiskFactor{
			Code:        FactorAgeRisk,
			Description: fmt.Sprintf("Age risk factor (%d years)", age),
		})
	}

	if region := profile.Region(); highRiskRegions[region] {
		factors = append(factors, model.RiskFactor{
			Code:        FactorHighRiskRegion,
			Description: fmt.Sprintf("High-risk region (%s)", region),
		})
	}

	if denial := profile.ClaimDenialRatePct(); denial > 15 {
		factors = append(factors, model.RiskFactor{
			Code:        FactorHighDenialRate,
			Description: fmt.Sprintf("High denial rate (%d%%)", denial),
		})
	}

	if balance := profile.AvgMonthlyBalance(); balance.Amount().LessThan(lowBalanceBound) {
		factors = append(factors, model.RiskFactor{
			Code:        FactorLowBalance,
			Description: fmt.Sprintf("Low balance (%s)", balance.Format()),
		})
	}

	return factors
}
