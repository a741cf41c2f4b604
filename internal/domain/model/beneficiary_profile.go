package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chynaenye/microinsurance-predictor/internal/domain/valueobject"
	"github.com/chynaenye/microinsurance-predictor/pkg/money"
)

// ErrMissingBeneficiaryID is returned when a profile is built without a
// beneficiary identifier. Surfaces treat it as a re-prompt, not a failure.
var ErrMissingBeneficiaryID = errors.New("beneficiary ID is required")

// Input domains enforced by NewBeneficiaryProfile. The intake surfaces apply
// the same bounds on their widgets, so scoring never sees an out-of-range
// value.
const (
	MinAge = 18
	MaxAge = 80

	MaxMonthsSinceLastClaim = 120
	MaxTotalClaimsFiled     = 50
	MaxClaimDenialRatePct   = 100
	MaxClinicVisits12Mo     = 50
	MaxDistanceToClinicKm   = 200

	MaxAvgMonthlyBalance = 100000
	MinMonthlyPremium    = 100
	MaxMonthlyPremium    = 10000
)

// BeneficiaryProfile is the validated input record for one dropout
// evaluation. Money amounts are whole naira.
type BeneficiaryProfile struct {
	beneficiaryID        string
	age                  int
	gender               valueobject.Gender
	region               valueobject.Region
	monthsSinceLastClaim int
	totalClaimsFiled     int
	claimDenialRatePct   int
	clinicVisits12Mo     int
	distanceToClinicKm   int
	avgMonthlyBalance    money.Money
	monthlyPremium       money.Money
}

// NewBeneficiaryProfile validates every field against its domain and builds
// the profile.
func NewBeneficiaryProfile(
	beneficiaryID string,
	age int,
	gender valueobject.Gender,
	region valueobject.Region,
	monthsSinceLastClaim int,
	totalClaimsFiled int,
	claimDenialRatePct int,
	clinicVisits12Mo int,
	distanceToClinicKm int,
	avgMonthlyBalance int64,
	monthlyPremium int64,
) (BeneficiaryProfile, error) {
	if strings.TrimSpace(beneficiaryID) == "" {
		return BeneficiaryProfile{}, ErrMissingBeneficiaryID
	}
	if age < MinAge || age > MaxAge {
		return BeneficiaryProfile{}, fmt.Errorf("age must be between %d and %d, got %d", MinAge, MaxAge, age)
	}
	if monthsSinceLastClaim < 0 || monthsSinceLastClaim > MaxMonthsSinceLastClaim {
		return BeneficiaryProfile{}, fmt.Errorf("months since last claim must be between 0 and %d, got %d", MaxMonthsSinceLastClaim, monthsSinceLastClaim)
	}
	if totalClaimsFiled < 0 || totalClaimsFiled > MaxTotalClaimsFiled {
		return BeneficiaryProfile{}, fmt.Errorf("total claims filed must be between 0 and %d, got %d", MaxTotalClaimsFiled, totalClaimsFiled)
	}
	if claimDenialRatePct < 0 || claimDenialRatePct > MaxClaimDenialRatePct {
		return BeneficiaryProfile{}, fmt.Errorf("claim denial rate must be between 0 and %d, got %d", MaxClaimDenialRatePct, claimDenialRatePct)
	}
	if clinicVisits12Mo < 0 || clinicVisits12Mo > MaxClinicVisits12Mo {
		return BeneficiaryProfile{}, fmt.Errorf("clinic visits must be between 0 and %d, got %d", MaxClinicVisits12Mo, clinicVisits12Mo)
	}
	if distanceToClinicKm < 0 || distanceToClinicKm > MaxDistanceToClinicKm {
		return BeneficiaryProfile{}, fmt.Errorf("distance to clinic must be between 0 and %d km, got %d", MaxDistanceToClinicKm, distanceToClinicKm)
	}
	if avgMonthlyBalance < 0 || avgMonthlyBalance > MaxAvgMonthlyBalance {
		return BeneficiaryProfile{}, fmt.Errorf("average monthly balance must be between 0 and %d, got %d", MaxAvgMonthlyBalance, avgMonthlyBalance)
	}
	if monthlyPremium < MinMonthlyPremium || monthlyPremium > MaxMonthlyPremium {
		return BeneficiaryProfile{}, fmt.Errorf("monthly premium must be between %d and %d, got %d", MinMonthlyPremium, MaxMonthlyPremium, monthlyPremium)
	}

	return BeneficiaryProfile{
		beneficiaryID:        strings.TrimSpace(beneficiaryID),
		age:                  age,
		gender:               gender,
		region:               region,
		monthsSinceLastClaim: monthsSinceLastClaim,
		totalClaimsFiled:     totalClaimsFiled,
		claimDenialRatePct:   claimDenialRatePct,
		clinicVisits12Mo:     clinicVisits12Mo,
		distanceToClinicKm:   distanceToClinicKm,
		avgMonthlyBalance:    money.NewFromInt(avgMonthlyBalance, money.NGN),
		monthlyPremium:       money.NewFromInt(monthlyPremium, money.NGN),
	}, nil
}

// --- Accessors ---

func (p BeneficiaryProfile) BeneficiaryID() string          { return p.beneficiaryID }
func (p BeneficiaryProfile) Age() int                       { return p.age }
func (p BeneficiaryProfile) Gender() valueobject.Gender     { return p.gender }
func (p BeneficiaryProfile) Region() valueobject.Region     { return p.region }
func (p BeneficiaryProfile) MonthsSinceLastClaim() int      { return p.monthsSinceLastClaim }
func (p BeneficiaryProfile) TotalClaimsFiled() int          { return p.totalClaimsFiled }
func (p BeneficiaryProfile) ClaimDenialRatePct() int        { return p.claimDenialRatePct }
func (p BeneficiaryProfile) ClinicVisits12Mo() int          { return p.clinicVisits12Mo }
func (p BeneficiaryProfile) DistanceToClinicKm() int        { return p.distanceToClinicKm }
func (p BeneficiaryProfile) AvgMonthlyBalance() money.Money { return p.avgMonthlyBalance }
func (p BeneficiaryProfile) MonthlyPremium() money.Money    { return p.monthlyPremium }
