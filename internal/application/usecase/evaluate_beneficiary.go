package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chynaenye/microinsurance-predictor/internal/application/dto"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/port"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/service"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
)

// EvaluateBeneficiary is the use case for scoring a beneficiary profile and
// producing the dropout prediction.
type EvaluateBeneficiary struct {
	scorer      service.Scorer
	explainer   *service.Explainer
	recommender *service.RecommendationSelector
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewEvaluateBeneficiary creates a new EvaluateBeneficiary use case.
func NewEvaluateBeneficiary(
	scorer service.Scorer,
	explainer *service.Explainer,
	recommender *service.RecommendationSelector,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *EvaluateBeneficiary {
	return &EvaluateBeneficiary{
		scorer:      scorer,
		explainer:   explainer,
		recommender: recommender,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute validates the profile, runs scoring, derives the explanation and
// recommendation, and publishes domain events. Validation errors wrap
// model.ErrMissingBeneficiaryID when the identifier is absent, so surfaces
// can re-prompt instead of reporting a failure.
func (uc *EvaluateBeneficiary) Execute(ctx context.Context, req dto.EvaluateBeneficiaryRequest) (dto.AssessmentResponse, error) {
	// 1. Build the validated profile.
	gender, err := valueobject.GenderFromString(req.Gender)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("invalid profile: %w", err)
	}

	profile, err := model.NewBeneficiaryProfile(
		req.BeneficiaryID,
		req.Age,
		gender,
		valueobject.NewRegion(req.Region),
		req.MonthsSinceLastClaim,
		req.TotalClaimsFiled,
		req.ClaimDenialRatePct,
		req.ClinicVisits12Mo,
		req.DistanceToClinicKm,
		req.AvgMonthlyBalance,
		req.MonthlyPremium,
	)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("invalid profile: %w", err)
	}

	// 2. Run rule-based scoring via the domain service.
	result := uc.scorer.Score(profile)

	// 3. Derive the human-readable factors.
	factors := uc.explainer.Explain(profile)

	// 4. Apply the result to the aggregate (this determines outcome and tier).
	assessment := model.NewRiskAssessment(profile)
	if err := assessment.Assess(result.Probability, result.Contributions, factors); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to assess profile: %w", err)
	}

	// 5. Select the retention recommendation for the derived percentage.
	recommendation := uc.recommender.Select(assessment.Percentage())

	// 6. Publish domain events. The prediction stands even when delivery
	// fails, so a publish error is logged rather than returned.
	if evts := assessment.ClearEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.logger.Warn("failed to publish assessment events",
				slog.String("assessment_id", assessment.ID().String()),
				slog.String("beneficiary_id", assessment.BeneficiaryID()),
				slog.String("error", err.Error()),
			)
		}
	}

	uc.logger.Info("beneficiary evaluated",
		slog.String("assessment_id", assessment.ID().String()),
		slog.String("beneficiary_id", assessment.BeneficiaryID()),
		slog.String("outcome", assessment.Outcome().String()),
		slog.String("risk_tier", assessment.RiskTier().String()),
		slog.String("dropout_percentage", assessment.Percentage().StringFixed(1)),
	)

	return dto.FromModel(assessment, recommendation), nil
}
