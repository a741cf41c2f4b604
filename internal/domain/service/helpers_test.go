package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
)

// profileParams mirrors the constructor arguments so tests can tweak a single
// field against a neutral baseline.
type profileParams struct {
	id       string
	age      int
	gender   valueobject.Gender
	region   valueobject.Region
	months   int
	claims   int
	denial   int
	visits   int
	distance int
	balance  int64
	premium  int64
}

// neutralParams returns a profile that triggers no rule except the regional
// baseline: Port Harcourt carries the smallest weight, 0.04.
func neutralParams() profileParams {
	return profileParams{
		id:       "BEN001234",
		age:      35,
		gender:   valueobject.GenderMale,
		region:   valueobject.RegionPortHarcourt,
		months:   1,
		claims:   2,
		denial:   5,
		visits:   3,
		distance: 10,
		balance:  5000,
		premium:  1500,
	}
}

func mustProfile(t *testing.T, p profileParams) model.BeneficiaryProfile {
	t.Helper()

	profile, err := model.NewBeneficiaryProfile(
		p.id, p.age, p.gender, p.region,
		p.months, p.claims, p.denial, p.visits, p.distance,
		p.balance, p.premium,
	)
	require.NoError(t, err)
	return profile
}
