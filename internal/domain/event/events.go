package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chynaenye/microinsurance-predictor/pkg/events"
)

const (
	// TypeAssessmentCompleted is emitted when a dropout evaluation finishes.
	TypeAssessmentCompleted = "retention.assessment.completed"

	// TypeHighRiskDetected is emitted when an evaluation lands in the HIGH tier.
	TypeHighRiskDetected = "retention.high_risk.detected"
)

const aggregateType = "RiskAssessment"

// AssessmentCompletedPayload is the JSON body of TypeAssessmentCompleted.
type AssessmentCompletedPayload struct {
	AssessmentID  uuid.UUID `json:"assessment_id"`
	BeneficiaryID string    `json:"beneficiary_id"`
	Probability   string    `json:"probability"`
	Percentage    string    `json:"percentage"`
	Outcome       string    `json:"outcome"`
	RiskTier      string    `json:"risk_tier"`
	FactorCount   int       `json:"factor_count"`
	AssessedAt    time.Time `json:"assessed_at"`
}

// NewAssessmentCompleted builds the completion event for an assessment.
func NewAssessmentCompleted(
	assessmentID uuid.UUID,
	beneficiaryID string,
	probability, percentage decimal.Decimal,
	outcome, riskTier string,
	factorCount int,
	assessedAt time.Time,
) events.DomainEvent {
	return events.NewBaseEvent(TypeAssessmentCompleted, assessmentID, aggregateType, AssessmentCompletedPayload{
		AssessmentID:  assessmentID,
		BeneficiaryID: beneficiaryID,
		Probability:   probability.String(),
		Percentage:    percentage.StringFixed(1),
		Outcome:       outcome,
		RiskTier:      riskTier,
		FactorCount:   factorCount,
		AssessedAt:    assessedAt,
	})
}

// HighRiskDetectedPayload is the JSON body of TypeHighRiskDetected.
type HighRiskDetectedPayload struct {
	AssessmentID  uuid.UUID `json:"assessment_id"`
	BeneficiaryID string    `json:"beneficiary_id"`
	Percentage    string    `json:"percentage"`
	FactorCodes   []string  `json:"factor_codes"`
	DetectedAt    time.Time `json:"detected_at"`
}

// NewHighRiskDetected builds the high-risk alert event, emitted alongside the
// completion event when the tier is HIGH.
func NewHighRiskDetected(
	assessmentID uuid.UUID,
	beneficiaryID string,
	percentage decimal.Decimal,
	factorCodes []string,
	detectedAt time.Time,
) events.DomainEvent {
	return events.NewBaseEvent(TypeHighRiskDetected, assessmentID, aggregateType, HighRiskDetectedPayload{
		AssessmentID:  assessmentID,
		BeneficiaryID: beneficiaryID,
		Percentage:    percentage.StringFixed(1),
		FactorCodes:   factorCodes,
		DetectedAt:    detectedAt,
	})
}
