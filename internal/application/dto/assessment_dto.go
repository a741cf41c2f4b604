package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
)

// EvaluateBeneficiaryRequest is the input DTO for the EvaluateBeneficiary use
// case. Money amounts are whole naira.
type EvaluateBeneficiaryRequest struct {
	BeneficiaryID        string `json:"beneficiary_id"`
	Gender               string `json:"gender"`
	Region               string `json:"region"`
	Age                  int    `json:"age"`
	MonthsSinceLastClaim int    `json:"months_since_last_claim"`
	TotalClaimsFiled     int    `json:"total_claims_filed"`
	ClaimDenialRatePct   int    `json:"claim_denial_rate_pct"`
	ClinicVisits12Mo     int    `json:"clinic_visits_12mo"`
	DistanceToClinicKm   int    `json:"distance_to_clinic_km"`
	AvgMonthlyBalance    int64  `json:"avg_monthly_balance"`
	MonthlyPremium       int64  `json:"monthly_premium"`
}

// ContributionDTO is one triggered scoring rule in the breakdown.
type ContributionDTO struct {
	Rule   string `json:"rule"`
	Weight string `json:"weight"`
}

// RiskFactorDTO is one identified risk factor.
type RiskFactorDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	TopFactor   bool   `json:"top_factor"`
}

// RecommendationDTO is the selected retention recommendation.
type RecommendationDTO struct {
	Level   string   `json:"level"`
	Title   string   `json:"title"`
	Actions []string `json:"actions"`
}

// AssessmentResponse is the output DTO returned after an evaluation.
type AssessmentResponse struct {
	AssessedAt         time.Time         `json:"assessed_at"`
	Contributions      []ContributionDTO `json:"contributions"`
	RiskFactors        []RiskFactorDTO   `json:"risk_factors"`
	Recommendation     RecommendationDTO `json:"recommendation"`
	ID                 uuid.UUID         `json:"id"`
	BeneficiaryID      string            `json:"beneficiary_id"`
	Region             string            `json:"region"`
	DropoutProbability string            `json:"dropout_probability"`
	DropoutPercentage  string            `json:"dropout_percentage"`
	Outcome            string            `json:"outcome"`
	OutcomeDisplay     string            `json:"outcome_display"`
	RiskTier           string            `json:"risk_tier"`
	RiskTierDisplay    string            `json:"risk_tier_display"`
}

// FromModel maps the assessment aggregate and its selected recommendation to
// the response DTO. Percentages carry one decimal place.
func FromModel(a *model.RiskAssessment, rec model.Recommendation) AssessmentResponse {
	contributions := make([]ContributionDTO, 0, len(a.Contributions()))
	for _, c := range a.Contributions() {
		contributions = append(contributions, ContributionDTO{
			Rule:   c.Rule,
			Weight: c.Weight.StringFixed(2),
		})
	}

	factors := make([]RiskFactorDTO, 0, len(a.RiskFactors()))
	for _, f := range a.RiskFactors() {
		factors = append(factors, RiskFactorDTO{
			Code:        f.Code,
			Description: f.Description,
			TopFactor:   f.TopFactor,
		})
	}

	return AssessmentResponse{
		ID:                 a.ID(),
		BeneficiaryID:      a.BeneficiaryID(),
		Region:             a.Profile().Region().String(),
		DropoutProbability: a.Probability().StringFixed(2),
		DropoutPercentage:  a.Percentage().StringFixed(1),
		Outcome:            a.Outcome().String(),
		OutcomeDisplay:     a.Outcome().Display(),
		RiskTier:           a.RiskTier().String(),
		RiskTierDisplay:    a.RiskTier().Display(),
		Contributions:      contributions,
		RiskFactors:        factors,
		Recommendation: RecommendationDTO{
			Level:   rec.Level,
			Title:   rec.Title,
			Actions: rec.Actions,
		},
		AssessedAt: a.AssessedAt(),
	}
}
