package service

import (
	"github.com/shopspring/decimal"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
)

// Scorer defines the interface for dropout scoring strategies.
// RiskScorer (rule-based) is the only implementation today; a trained-model
// scorer can be swapped in behind the same interface.
type Scorer interface {
	Score(profile model.BeneficiaryProfile) ScoreResult
}

// ScoreResult contains the outcome of scoring a beneficiary profile.
// Probability is the capped dropout probability in [0, 0.95]; Contributions
// lists the triggered rules with their uncapped weights in evaluation order.
type ScoreResult struct {
	Probability   decimal.Decimal
	Contributions []model.Contribution
}
