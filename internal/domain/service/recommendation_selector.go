package service

import (
	"github.com/shopspring/decimal"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
)

var (
	urgentBound    = decimal.NewFromInt(70)
	proactiveBound = decimal.NewFromInt(50)
)

// RecommendationSelector maps a dropout percentage to a retention
// recommendation. The content is static; only the selection depends on the
// percentage.
type RecommendationSelector struct{}

// NewRecommendationSelector creates a new RecommendationSelector instance.
func NewRecommendationSelector() *RecommendationSelector {
	return &RecommendationSelector{}
}

// Select returns the recommendation block for the given dropout percentage.
func (s *RecommendationSelector) Select(percentage decimal.Decimal) model.Recommendation {
	switch {
	case percentage.GreaterThanOrEqual(urgentBound):
		return model.Recommendation{
			Level: model.RecommendationUrgent,
			Title: "URGENT ACTION REQUIRED",
			Actions: []string{
				"Contact within 24 hours",
				"Schedule immediate consultation",
				"Assign dedicated case manager",
				"Consider premium reduction",
			},
		}
	case percentage.GreaterThanOrEqual(proactiveBound):
		return model.Recommendation{
			Level: model.RecommendationProactive,
			Title: "PROACTIVE INTERVENTION",
			Actions: []string{
				"Weekly check-in calls",
				"Send health reminder SMS",
				"Monitor claim patterns",
				"Offer wellness programs",
			},
		}
	default:
		return model.Recommendation{
			Level: model.RecommendationStandard,
			Title: "STANDARD MONITORING",
			Actions: []string{
				"Quarterly satisfaction survey",
				"Continue regular communications",
				"Maintain current service level",
			},
		}
	}
}
