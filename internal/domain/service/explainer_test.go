package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/service"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
)

func TestExplainer_NoFactors(t *testing.T) {
	explainer := service.NewExplainer()

	factors := explainer.Explain(mustProfile(t, neutralParams()))
	assert.Empty(t, factors)
}

func TestExplainer_AllFactors(t *testing.T) {
	explainer := service.NewExplainer()

	profile := mustProfile(t, profileParams{
		id:       "BEN001234",
		age:      22,
		gender:   valueobject.GenderFemale,
		region:   valueobject.RegionLagos,
		months:   7,
		claims:   0,
		denial:   20,
		visits:   3,
		distance: 10,
		balance:  1500,
		premium:  400,
	})

	factors := explainer.Explain(profile)
	require.Len(t, factors, 6)

	assert.Equal(t, model.RiskFactor{
		Code:        service.FactorMonthsWithoutClaims,
		Description: "7 months without claims",
		TopFactor:   true,
	}, factors[0])
	assert.Equal(t, model.RiskFactor{
		Code:        service.FactorNoClaimsHistory,
		Description: "No claims history",
	}, factors[1])
	assert.Equal(t, model.RiskFactor{
		Code:        service.FactorAgeRisk,
		Description: "Age risk factor (22 years)",
	}, factors[2])
	assert.Equal(t, model.RiskFactor{
		Code:        service.FactorHighRiskRegion,
		Description: "High-risk region (Lagos)",
	}, factors[3])
	assert.Equal(t, model.RiskFactor{
		Code:        service.FactorHighDenialRate,
		Description: "High denial rate (20%)",
	}, factors[4])
	assert.Equal(t, model.RiskFactor{
		Code:        service.FactorLowBalance,
		Description: "Low balance (₦1,500)",
	}, factors[5])
}

func TestExplainer_HighClaimFrequency(t *testing.T) {
	explainer := service.NewExplainer()

	p := neutralParams()
	p.claims = 6

	factors := explainer.Explain(mustProfile(t, p))
	require.Len(t, factors, 1)
	assert.Equal(t, service.FactorHighClaimFrequency, factors[0].Code)
	assert.Equal(t, "High claim frequency (6 claims)", factors[0].Description)
	assert.False(t, factors[0].TopFactor)
}

func TestExplainer_MonthsBoundary(t *testing.T) {
	explainer := service.NewExplainer()

	// Scoring already adds weight from three months on, but the explanation
	// only calls months out from six.
	p := neutralParams()
	p.months = 4
	assert.Empty(t, explainer.Explain(mustProfile(t, p)))

	p.months = 6
	factors := explainer.Explain(mustProfile(t, p))
	require.Len(t, factors, 1)
	assert.Equal(t, "6 months without claims", factors[0].Description)
	assert.True(t, factors[0].TopFactor)
}

func TestExplainer_RegionOutsideHighRiskSet(t *testing.T) {
	explainer := service.NewExplainer()

	// Kano carries scoring weight but is not in the high-risk set.
	p := neutralParams()
	p.region = valueobject.RegionKano
	assert.Empty(t, explainer.Explain(mustProfile(t, p)))

	p.region = valueobject.RegionKaduna
	factors := explainer.Explain(mustProfile(t, p))
	require.Len(t, factors, 1)
	assert.Equal(t, "High-risk region (Kaduna)", factors[0].Description)
}

func TestExplainer_AgeBounds(t *testing.T) {
	explainer := service.NewExplainer()

	cases := []struct {
		age  int
		want bool
	}{
		{24, true},
		{25, false},
		{55, false},
		{56, true},
	}
	for _, tc := range cases {
		p := neutralParams()
		p.age = tc.age

		factors := explainer.Explain(mustProfile(t, p))
		if tc.want {
			require.Len(t, factors, 1, "age=%d", tc.age)
			assert.Equal(t, service.FactorAgeRisk, factors[0].Code)
		} else {
			assert.Empty(t, factors, "age=%d", tc.age)
		}
	}
}

func TestExplainer_LowBalanceUsesNairaFormat(t *testing.T) {
	explainer := service.NewExplainer()

	p := neutralParams()
	p.balance = 500
	p.premium = 100

	factors := explainer.Explain(mustProfile(t, p))
	require.Len(t, factors, 1)
	assert.Equal(t, "Low balance (₦500)", factors[0].Description)
}
