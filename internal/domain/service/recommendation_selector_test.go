package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/service"
)

func TestRecommendationSelector_Bounds(t *testing.T) {
	selector := service.NewRecommendationSelector()

	cases := []struct {
		percentage string
		wantLevel  string
	}{
		{"0", model.RecommendationStandard},
		{"49.9", model.RecommendationStandard},
		{"50", model.RecommendationProactive},
		{"69.9", model.RecommendationProactive},
		{"70", model.RecommendationUrgent},
		{"95", model.RecommendationUrgent},
	}
	for _, tc := range cases {
		rec := selector.Select(decimal.RequireFromString(tc.percentage))
		assert.Equal(t, tc.wantLevel, rec.Level, "percentage=%s", tc.percentage)
	}
}

func TestRecommendationSelector_Urgent(t *testing.T) {
	selector := service.NewRecommendationSelector()

	rec := selector.Select(decimal.NewFromInt(78))

	assert.Equal(t, "URGENT ACTION REQUIRED", rec.Title)
	assert.Equal(t, []string{
		"Contact within 24 hours",
		"Schedule immediate consultation",
		"Assign dedicated case manager",
		"Consider premium reduction",
	}, rec.Actions)
}

func TestRecommendationSelector_Proactive(t *testing.T) {
	selector := service.NewRecommendationSelector()

	rec := selector.Select(decimal.NewFromInt(55))

	assert.Equal(t, "PROACTIVE INTERVENTION", rec.Title)
	assert.Equal(t, []string{
		"Weekly check-in calls",
		"Send health reminder SMS",
		"Monitor claim patterns",
		"Offer wellness programs",
	}, rec.Actions)
}

func TestRecommendationSelector_Standard(t *testing.T) {
	selector := service.NewRecommendationSelector()

	rec := selector.Select(decimal.NewFromInt(4))

	assert.Equal(t, "STANDARD MONITORING", rec.Title)
	assert.Equal(t, []string{
		"Quarterly satisfaction survey",
		"Continue regular communications",
		"Maintain current service level",
	}, rec.Actions)
}
