package web

import (
	"html/template"

	"github.com/chynaenye/microinsurance-predictor/internal/application/dto"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
)

// assessForm carries the intake fields between the form, the binding layer
// and the template. The field bounds mirror the profile domains.
type assessForm struct {
	BeneficiaryID        string `form:"beneficiary_id" json:"beneficiary_id"`
	Age                  int    `form:"age" json:"age"`
	Gender               string `form:"gender" json:"gender"`
	Region               string `form:"region" json:"region"`
	MonthsSinceLastClaim int    `form:"months_since_last_claim" json:"months_since_last_claim"`
	TotalClaimsFiled     int    `form:"total_claims_filed" json:"total_claims_filed"`
	ClaimDenialRatePct   int    `form:"claim_denial_rate_pct" json:"claim_denial_rate_pct"`
	ClinicVisits12Mo     int    `form:"clinic_visits_12mo" json:"clinic_visits_12mo"`
	DistanceToClinicKm   int    `form:"distance_to_clinic_km" json:"distance_to_clinic_km"`
	AvgMonthlyBalance    int64  `form:"avg_monthly_balance" json:"avg_monthly_balance"`
	MonthlyPremium       int64  `form:"monthly_premium" json:"monthly_premium"`
}

// defaultAssessForm returns the intake form pre-filled with the standard
// starting values.
func defaultAssessForm() assessForm {
	return assessForm{
		Age:                  35,
		Gender:               valueobject.GenderMale.String(),
		Region:               valueobject.RegionLagos.String(),
		MonthsSinceLastClaim: 6,
		TotalClaimsFiled:     2,
		ClaimDenialRatePct:   10,
		ClinicVisits12Mo:     3,
		DistanceToClinicKm:   15,
		AvgMonthlyBalance:    5000,
		MonthlyPremium:       1500,
	}
}

func (f assessForm) toRequest() dto.EvaluateBeneficiaryRequest {
	return dto.EvaluateBeneficiaryRequest{
		BeneficiaryID:        f.BeneficiaryID,
		Age:                  f.Age,
		Gender:               f.Gender,
		Region:               f.Region,
		MonthsSinceLastClaim: f.MonthsSinceLastClaim,
		TotalClaimsFiled:     f.TotalClaimsFiled,
		ClaimDenialRatePct:   f.ClaimDenialRatePct,
		ClinicVisits12Mo:     f.ClinicVisits12Mo,
		DistanceToClinicKm:   f.DistanceToClinicKm,
		AvgMonthlyBalance:    f.AvgMonthlyBalance,
		MonthlyPremium:       f.MonthlyPremium,
	}
}

// indexView is the template payload for the assessment page.
type indexView struct {
	Form    assessForm
	Genders []valueobject.Gender
	Regions []valueobject.Region
	Result  *resultView
	Guard   bool
	Error   string
}

// resultView is the rendered prediction panel.
type resultView struct {
	BeneficiaryID  string
	OutcomeDisplay string
	TierDisplay    string
	Percentage     string
	BoxClass       string
	Factors        []string
	RecTitle       string
	RecActions     []string
	RecClass       string
	Gauge          template.HTML
}

func newIndexView(form assessForm) indexView {
	return indexView{
		Form:    form,
		Genders: valueobject.AllGenders(),
		Regions: valueobject.AllRegions(),
	}
}

// newResultView maps an assessment response to the rendered panel. Dropout
// predictions use the red styling, the rest the green one.
func newResultView(resp dto.AssessmentResponse) *resultView {
	dropout := resp.Outcome == "WILL_DROPOUT"

	boxClass, color := "low-risk", gaugeGreen
	if dropout {
		boxClass, color = "high-risk", gaugeRed
	}

	factors := make([]string, 0, len(resp.RiskFactors))
	for _, f := range resp.RiskFactors {
		line := "⚠️ " + f.Description
		if f.TopFactor {
			line += " (TOP FACTOR)"
		}
		factors = append(factors, line)
	}

	recClass := "banner-success"
	switch resp.Recommendation.Level {
	case "urgent":
		recClass = "banner-error"
	case "proactive":
		recClass = "banner-warning"
	}

	return &resultView{
		BeneficiaryID:  resp.BeneficiaryID,
		OutcomeDisplay: resp.OutcomeDisplay,
		TierDisplay:    resp.RiskTierDisplay,
		Percentage:     resp.DropoutPercentage,
		BoxClass:       boxClass,
		Factors:        factors,
		RecTitle:       resp.Recommendation.Title,
		RecActions:     resp.Recommendation.Actions,
		RecClass:       recClass,
		Gauge:          renderGauge(resp.DropoutPercentage, color),
	}
}
