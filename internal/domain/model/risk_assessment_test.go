package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/event"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
)

func newUnscoredAssessment(t *testing.T) *model.RiskAssessment {
	t.Helper()
	profile, err := model.NewBeneficiaryProfile(
		"BEN001234", 35, valueobject.GenderMale, valueobject.RegionLagos,
		12, 0, 10, 3, 15,
		5000, 1500,
	)
	require.NoError(t, err)
	return model.NewRiskAssessment(profile)
}

func TestNewRiskAssessment(t *testing.T) {
	a := newUnscoredAssessment(t)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, "BEN001234", a.BeneficiaryID())
	assert.False(t, a.CreatedAt().IsZero())
	assert.True(t, a.AssessedAt().IsZero())
	assert.True(t, a.Outcome().IsZero())
	assert.True(t, a.RiskTier().IsZero())
	assert.Empty(t, a.Events())
}

func TestAssess_LowRisk(t *testing.T) {
	a := newUnscoredAssessment(t)

	err := a.Assess(decimal.RequireFromString("0.04"), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "4.0", a.Percentage().StringFixed(1))
	assert.True(t, valueobject.OutcomeWillNotDropout.Equal(a.Outcome()))
	assert.True(t, valueobject.RiskTierLow.Equal(a.RiskTier()))
	assert.False(t, a.AssessedAt().IsZero())

	evts := a.Events()
	require.Len(t, evts, 1)
	assert.Equal(t, event.TypeAssessmentCompleted, evts[0].EventType())
}

func TestAssess_MediumRisk(t *testing.T) {
	a := newUnscoredAssessment(t)

	err := a.Assess(decimal.RequireFromString("0.55"), nil, nil)
	require.NoError(t, err)

	assert.True(t, valueobject.OutcomeWillDropout.Equal(a.Outcome()))
	assert.True(t, valueobject.RiskTierMedium.Equal(a.RiskTier()))

	// Medium risk completes without the high-risk alert.
	require.Len(t, a.Events(), 1)
}

func TestAssess_HighRisk_EmitsHighRiskEvent(t *testing.T) {
	a := newUnscoredAssessment(t)

	contributions := []model.Contribution{
		{Rule: "months_since_last_claim", Weight: decimal.RequireFromString("0.45")},
		{Rule: "no_claims_history", Weight: decimal.RequireFromString("0.15")},
		{Rule: "region", Weight: decimal.RequireFromString("0.18")},
	}
	factors := []model.RiskFactor{
		{Code: "months_without_claims", Description: "12 months without claims", TopFactor: true},
		{Code: "no_claims_history", Description: "No claims history"},
		{Code: "high_risk_region", Description: "High-risk region (Lagos)"},
	}

	err := a.Assess(decimal.RequireFromString("0.78"), contributions, factors)
	require.NoError(t, err)

	assert.Equal(t, "78.0", a.Percentage().StringFixed(1))
	assert.True(t, valueobject.OutcomeWillDropout.Equal(a.Outcome()))
	assert.True(t, valueobject.RiskTierHigh.Equal(a.RiskTier()))
	assert.Equal(t, contributions, a.Contributions())
	assert.Equal(t, factors, a.RiskFactors())

	evts := a.Events()
	require.Len(t, evts, 2)
	assert.Equal(t, event.TypeAssessmentCompleted, evts[0].EventType())
	assert.Equal(t, event.TypeHighRiskDetected, evts[1].EventType())
	assert.Equal(t, a.ID(), evts[1].AggregateID())
	assert.Equal(t, "RiskAssessment", evts[1].AggregateType())

	var payload event.HighRiskDetectedPayload
	require.NoError(t, json.Unmarshal(evts[1].Payload(), &payload))
	assert.Equal(t, "BEN001234", payload.BeneficiaryID)
	assert.Equal(t, "78.0", payload.Percentage)
	assert.Equal(t, []string{"months_without_claims", "no_claims_history", "high_risk_region"}, payload.FactorCodes)
}

func TestAssess_CompletedEventPayload(t *testing.T) {
	a := newUnscoredAssessment(t)

	err := a.Assess(decimal.RequireFromString("0.34"), nil, nil)
	require.NoError(t, err)

	evts := a.Events()
	require.Len(t, evts, 1)

	var payload event.AssessmentCompletedPayload
	require.NoError(t, json.Unmarshal(evts[0].Payload(), &payload))
	assert.Equal(t, a.ID(), payload.AssessmentID)
	assert.Equal(t, "BEN001234", payload.BeneficiaryID)
	assert.Equal(t, "0.34", payload.Probability)
	assert.Equal(t, "34.0", payload.Percentage)
	assert.Equal(t, "WILL_NOT_DROPOUT", payload.Outcome)
	assert.Equal(t, "LOW", payload.RiskTier)
	assert.Equal(t, 0, payload.FactorCount)
}

func TestAssess_BoundaryPercentages(t *testing.T) {
	tests := []struct {
		name        string
		probability string
		wantTier    valueobject.RiskTier
		wantDropout bool
	}{
		{name: "49 percent stays low", probability: "0.49", wantTier: valueobject.RiskTierLow, wantDropout: false},
		{name: "50 percent goes medium", probability: "0.50", wantTier: valueobject.RiskTierMedium, wantDropout: true},
		{name: "69 percent stays medium", probability: "0.69", wantTier: valueobject.RiskTierMedium, wantDropout: true},
		{name: "70 percent goes high", probability: "0.70", wantTier: valueobject.RiskTierHigh, wantDropout: true},
		{name: "cap lands high", probability: "0.95", wantTier: valueobject.RiskTierHigh, wantDropout: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newUnscoredAssessment(t)
			err := a.Assess(decimal.RequireFromString(tt.probability), nil, nil)
			require.NoError(t, err)

			assert.True(t, tt.wantTier.Equal(a.RiskTier()),
				"expected %s for probability %s, got %s", tt.wantTier.String(), tt.probability, a.RiskTier().String())
			assert.Equal(t, tt.wantDropout, a.Outcome().IsDropout())
		})
	}
}

func TestAssess_InvalidProbability(t *testing.T) {
	for _, probability := range []string{"-0.01", "0.96", "1.5"} {
		a := newUnscoredAssessment(t)
		err := a.Assess(decimal.RequireFromString(probability), nil, nil)
		require.Error(t, err, "probability=%s", probability)
		assert.Contains(t, err.Error(), "probability must be between 0 and 0.95")
	}
}

func TestClearEvents(t *testing.T) {
	a := newUnscoredAssessment(t)

	require.NoError(t, a.Assess(decimal.RequireFromString("0.78"), nil, nil))
	require.Len(t, a.Events(), 2)

	collected := a.ClearEvents()
	assert.Len(t, collected, 2)
	assert.Empty(t, a.Events())
}
