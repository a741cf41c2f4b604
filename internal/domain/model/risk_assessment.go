package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/event"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
	"github.com/chynaenye/microinsurance-predictor/pkg/events"
)

// maxAssessableProbability mirrors the scorer's cap.
var maxAssessableProbability = decimal.RequireFromString("0.95")

var oneHundred = decimal.NewFromInt(100)

// RiskAssessment is the aggregate root for one dropout evaluation.
type RiskAssessment struct {
	events.EventCollector

	id            uuid.UUID
	profile       BeneficiaryProfile
	probability   decimal.Decimal
	percentage    decimal.Decimal
	outcome       valueobject.Outcome
	riskTier      valueobject.RiskTier
	contributions []Contribution
	riskFactors   []RiskFactor
	assessedAt    time.Time
	createdAt     time.Time
}

// NewRiskAssessment creates an unscored assessment for a validated profile.
// Call Assess() to apply a scoring result.
func NewRiskAssessment(profile BeneficiaryProfile) *RiskAssessment {
	return &RiskAssessment{
		id:        uuid.New(),
		profile:   profile,
		createdAt: time.Now().UTC(),
	}
}

// Assess applies a scoring result, deriving the percentage, outcome and risk
// tier, and records the completed event (plus the high-risk event for HIGH
// tiers). This is the core domain operation.
func (a *RiskAssessment) Assess(probability decimal.Decimal, contributions []Contribution, factors []RiskFactor) error {
	if probability.IsNegative() || probability.GreaterThan(maxAssessableProbability) {
		return fmt.Errorf("probability must be between 0 and %s, got %s", maxAssessableProbability, probability)
	}

	a.probability = probability
	a.percentage = probability.Mul(oneHundred)
	a.outcome = valueobject.OutcomeFromPercentage(a.percentage)
	a.riskTier = valueobject.RiskTierFromPercentage(a.percentage)
	a.contributions = contributions
	a.riskFactors = factors
	a.assessedAt = time.Now().UTC()

	a.Record(event.NewAssessmentCompleted(
		a.id, a.profile.BeneficiaryID(),
		a.probability, a.percentage,
		a.outcome.String(), a.riskTier.String(),
		len(a.riskFactors), a.assessedAt,
	))

	if a.riskTier.Equal(valueobject.RiskTierHigh) {
		a.Record(event.NewHighRiskDetected(
			a.id, a.profile.BeneficiaryID(),
			a.percentage, factorCodes(a.riskFactors), a.assessedAt,
		))
	}

	return nil
}

// factorCodes projects a factor list to its codes for event payloads.
func factorCodes(factors []RiskFactor) []string {
	codes := make([]string, 0, len(factors))
	for _, f := range factors {
		codes = append(codes, f.Code)
	}
	return codes
}

// --- Accessors ---

func (a *RiskAssessment) ID() uuid.UUID                    { return a.id }
func (a *RiskAssessment) BeneficiaryID() string            { return a.profile.BeneficiaryID() }
func (a *RiskAssessment) Profile() BeneficiaryProfile      { return a.profile }
func (a *RiskAssessment) Probability() decimal.Decimal     { return a.probability }
func (a *RiskAssessment) Percentage() decimal.Decimal      { return a.percentage }
func (a *RiskAssessment) Outcome() valueobject.Outcome     { return a.outcome }
func (a *RiskAssessment) RiskTier() valueobject.RiskTier   { return a.riskTier }
func (a *RiskAssessment) Contributions() []Contribution    { return a.contributions }
func (a *RiskAssessment) RiskFactors() []RiskFactor        { return a.riskFactors }
func (a *RiskAssessment) AssessedAt() time.Time            { return a.assessedAt }
func (a *RiskAssessment) CreatedAt() time.Time             { return a.createdAt }
