// Package benefits computes the four membership savings projections for a
// trip: preferential exchange rate, pre-trip investment yield, category
// cashback, and free international transfers. All calculations are pure
// functions of the country record and the trip parameters.
package benefits

import (
	"math"

	"github.com/anyulbade/travel-budget-estimator/internal/model"
	"github.com/anyulbade/travel-budget-estimator/internal/trip"
)

const (
	exchangeImprovementRate = 0.04
	annualInterestRate      = 0.05
	cashbackRate            = 0.03
	transfersPerMonth       = 2.0
	transferCostMXN         = 35.0
)

// Type identifies one of the four benefit projections.
type Type string

const (
	TypeExchangeRate Type = "A"
	TypeInvestment   Type = "B"
	TypeCashback     Type = "C"
	TypeTransfers    Type = "D"
)

// Valid reports whether t is one of the four known benefit types.
func (t Type) Valid() bool {
	switch t {
	case TypeExchangeRate, TypeInvestment, TypeCashback, TypeTransfers:
		return true
	}
	return false
}

// Calculation is a single benefit projection over the trip.
type Calculation struct {
	DailyAmount float64 `json:"dailyAmount"`
	TotalAmount float64 `json:"totalAmount"`
	Description string  `json:"description"`
	Type        Type    `json:"type"`
}

// Result aggregates the four projections. EquivalentDays expresses the total
// savings as the number of extra trip days they could fund.
type Result struct {
	BenefitA       Calculation `json:"benefitA"`
	BenefitB       Calculation `json:"benefitB"`
	BenefitC       Calculation `json:"benefitC"`
	BenefitD       Calculation `json:"benefitD"`
	TotalBenefits  float64     `json:"totalBenefits"`
	EquivalentDays float64     `json:"equivalentDays"`
}

// Calculate runs the four projections for a trip of durationDays starting
// daysUntilStart days from now. The projections are independent of each
// other; only EquivalentDays depends on the country's daily cost.
func Calculate(record *model.CountryRecord, durationDays, daysUntilStart int) Result {
	dailyMXN := trip.DailyCost(record.MonthlyTotalMXN)

	a := exchangeRateBenefit(record.MonthlyTotalMXN, durationDays)
	b := investmentBenefit(dailyMXN, durationDays, daysUntilStart)
	c := cashbackBenefit(record.MonthlyCosts, durationDays)
	d := transferBenefit(durationDays)

	total := a.TotalAmount + b.TotalAmount + c.TotalAmount + d.TotalAmount

	equivalentDays := 0.0
	if dailyMXN > 0 {
		equivalentDays = total / dailyMXN
	}

	return Result{
		BenefitA:       a,
		BenefitB:       b,
		BenefitC:       c,
		BenefitD:       d,
		TotalBenefits:  total,
		EquivalentDays: equivalentDays,
	}
}

// exchangeRateBenefit models a 4% improvement over the retail exchange
// spread, proportional to the monthly MXN spend.
func exchangeRateBenefit(monthlyMXN float64, durationDays int) Calculation {
	daily := monthlyMXN * exchangeImprovementRate / trip.DaysPerMonth
	return Calculation{
		DailyAmount: daily,
		TotalAmount: daily * float64(durationDays),
		Description: "Ahorro por mejor tipo de cambio (4%)",
		Type:        TypeExchangeRate,
	}
}

// investmentBenefit models saving toward the trip with a constant daily
// contribution earning 5% annual interest compounded daily, from today until
// the trip starts. The contribution C is solved from the compound-annuity
// identity C * ((1+r)^n - 1)/r == tripTotalCost; the interest earned is the
// benefit, prorated across trip days.
func investmentBenefit(dailyMXN float64, durationDays, daysUntilStart int) Calculation {
	calc := Calculation{
		Description: "Rendimientos por ahorro previo (5% anual)",
		Type:        TypeInvestment,
	}
	if daysUntilStart <= 0 || durationDays <= 0 {
		return calc
	}

	r := annualInterestRate / 365
	if r == 0 {
		return calc
	}

	tripTotalCost := dailyMXN * float64(durationDays)
	annuityFactor := (math.Pow(1+r, float64(daysUntilStart)) - 1) / r
	dailyContribution := tripTotalCost / annuityFactor

	totalInterest := tripTotalCost - dailyContribution*float64(daysUntilStart)

	calc.DailyAmount = totalInterest / float64(durationDays)
	calc.TotalAmount = totalInterest
	return calc
}

// cashbackBenefit applies 3% cashback to the daily equivalent of the
// transport and entertainment categories. Lodging, food and insurance are not
// eligible.
func cashbackBenefit(costs model.MonthlyCosts, durationDays int) Calculation {
	eligibleDaily := (costs.Transporte + costs.Entretenimiento) / trip.DaysPerMonth
	daily := eligibleDaily * cashbackRate
	return Calculation{
		DailyAmount: daily,
		TotalAmount: daily * float64(durationDays),
		Description: "3% cashback en transporte y entretenimiento",
		Type:        TypeCashback,
	}
}

// transferBenefit assumes two avoided international transfers per month at a
// flat fee of 35 MXN each.
func transferBenefit(durationDays int) Calculation {
	daily := transfersPerMonth / trip.DaysPerMonth * transferCostMXN
	return Calculation{
		DailyAmount: daily,
		TotalAmount: daily * float64(durationDays),
		Description: "Ahorro en transferencias internacionales",
		Type:        TypeTransfers,
	}
}
