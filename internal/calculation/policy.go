package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalSix    = decimal.NewFromInt(6)
	decimalTwelve = decimal.NewFromInt(12)
)

// Minimum debt payment as a fraction of current monthly income, shared by
// every variant with a debt branch.
var minPaymentRate = decimal.NewFromFloat(0.03)

// simulationState is the per-run accumulator. It is owned exclusively by one
// stepping loop and discarded after producing the timeline; the emergency
// fund is a cash sub-bucket and counts toward reported savings.
type simulationState struct {
	income        decimal.Decimal
	cash          decimal.Decimal
	portfolio     decimal.Decimal
	emergencyFund decimal.Decimal
	debt          decimal.Decimal
	totalSpent    decimal.Decimal
	totalSaved    decimal.Decimal
}

// payDebt applies one month's debt payment: the income-based minimum plus a
// variant-specific share of positive monthly savings, capped at the current
// balance so the debt never goes negative. Returns the amount paid.
func (st *simulationState) payDebt(monthlySavings, extraFraction decimal.Decimal) decimal.Decimal {
	if !st.debt.IsPositive() {
		return decimal.Zero
	}
	payment := st.income.Mul(minPaymentRate)
	if monthlySavings.IsPositive() {
		payment = payment.Add(monthlySavings.Mul(extraFraction))
	}
	if payment.GreaterThan(st.debt) {
		payment = st.debt
	}
	st.debt = st.debt.Sub(payment)
	return payment
}

// accrueDebtInterest compounds the outstanding balance at an annual rate.
func (st *simulationState) accrueDebtInterest(annualRate decimal.Decimal) {
	if st.debt.IsPositive() {
		st.debt = st.debt.Mul(decimalOne.Add(annualRate.Div(decimalTwelve)))
	}
}

// growCash compounds a positive cash balance at an annual rate.
func (st *simulationState) growCash(annualRate decimal.Decimal) {
	if st.cash.IsPositive() {
		st.cash = st.cash.Mul(decimalOne.Add(annualRate.Div(decimalTwelve)))
	}
}

// growPortfolio compounds the investment portfolio at a monthly return.
func (st *simulationState) growPortfolio(monthlyReturn decimal.Decimal) {
	if st.portfolio.IsPositive() {
		st.portfolio = st.portfolio.Mul(decimalOne.Add(monthlyReturn))
	}
}

// savings reports the point-in-time savings total: cash, emergency fund, and
// investment portfolio.
func (st *simulationState) savings() decimal.Decimal {
	return st.cash.Add(st.emergencyFund).Add(st.portfolio)
}

// allocationInput carries the month's derived figures into a variant policy.
type allocationInput struct {
	month          int
	expenses       decimal.Decimal // this month's adjusted expenses
	monthlySavings decimal.Decimal // adjusted income minus adjusted expenses
	seasonalFactor decimal.Decimal // 1 outside the seasonal variant
}

// allocationFunc is the point of differentiation between variants: it decides
// how one month's savings flow into debt paydown, emergency fund, investment,
// and cash. Every dollar of monthlySavings not absorbed elsewhere must land in
// cash.
type allocationFunc func(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand)

// variantPolicy bundles the per-variant assumptions around the shared
// stepping skeleton.
type variantPolicy struct {
	annualInflation decimal.Decimal
	seasonal        bool
	retirementTaper bool // gradual income decline past the 30-year mark
	allocate        allocationFunc
}

func policyFor(variant domain.ModelVariant) variantPolicy {
	switch variant {
	case domain.ModelLinear:
		return variantPolicy{annualInflation: decimal.NewFromFloat(0.025), allocate: allocateLinear}
	case domain.ModelExponential:
		return variantPolicy{annualInflation: decimal.NewFromFloat(0.025), allocate: allocateExponential}
	case domain.ModelSeasonal:
		return variantPolicy{annualInflation: decimal.NewFromFloat(0.025), seasonal: true, allocate: allocateSeasonal}
	case domain.ModelConservative:
		return variantPolicy{annualInflation: decimal.NewFromFloat(0.02), allocate: allocateConservative}
	case domain.ModelSavings:
		return variantPolicy{annualInflation: decimal.NewFromFloat(0.02), allocate: allocateSavings}
	case domain.ModelOptimistic:
		return variantPolicy{annualInflation: decimal.NewFromFloat(0.02), allocate: allocateOptimistic}
	default: // realistic is the canonical default
		return variantPolicy{annualInflation: decimal.NewFromFloat(0.03), retirementTaper: true, allocate: allocateRealistic}
	}
}
