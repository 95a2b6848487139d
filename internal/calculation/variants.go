package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Horizon marks where long-run variants step their assumptions down.
const (
	twentyYearMonth = 240
	thirtyYearMonth = 360
)

// Seasonal model tables. Income pauses for the June-August gap (a teaching
// income profile); expenses follow a repeating 12-month multiplier, January
// first.
var seasonalIncomeGapMonths = map[int]bool{6: true, 7: true, 8: true}

var seasonalExpenseFactors = []decimal.Decimal{
	decimal.NewFromFloat(1.10), // January: post-holiday bills
	decimal.NewFromFloat(0.95),
	decimal.NewFromFloat(1.00),
	decimal.NewFromFloat(1.00),
	decimal.NewFromFloat(0.98),
	decimal.NewFromFloat(1.05),
	decimal.NewFromFloat(1.08), // summer travel
	decimal.NewFromFloat(1.06),
	decimal.NewFromFloat(1.02),
	decimal.NewFromFloat(1.00),
	decimal.NewFromFloat(1.05),
	decimal.NewFromFloat(1.25), // December
}

// allocateLinear keeps everything in cash with a simple debt paydown at 20%
// of positive savings.
func allocateLinear(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand) {
	payment := st.payDebt(in.monthlySavings, decimal.NewFromFloat(0.20))
	st.cash = st.cash.Add(in.monthlySavings).Sub(payment)
}

// allocateExponential invests aggressively at a fixed high return, stepping
// allocation and return down past the 20- and 30-year marks, with debt paid
// at half of positive savings.
func allocateExponential(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand) {
	annualReturn := decimal.NewFromFloat(0.12)
	investShare := decimal.NewFromFloat(0.80)
	switch {
	case in.month > thirtyYearMonth:
		annualReturn = decimal.NewFromFloat(0.08)
		investShare = decimal.NewFromFloat(0.60)
	case in.month > twentyYearMonth:
		annualReturn = decimal.NewFromFloat(0.10)
		investShare = decimal.NewFromFloat(0.70)
	}
	st.growPortfolio(annualReturn.Div(decimalTwelve))

	payment := st.payDebt(in.monthlySavings, decimal.NewFromFloat(0.50))
	remainder := in.monthlySavings.Sub(payment)
	if remainder.IsPositive() {
		invest := remainder.Mul(investShare)
		st.portfolio = st.portfolio.Add(invest)
		st.cash = st.cash.Add(remainder.Sub(invest))
		return
	}
	st.cash = st.cash.Add(remainder)
}

// allocateSeasonal has no investment bucket. Cash compounds at a modest rate
// scaled by the month's seasonal multiplier; debt is paid at a quarter of
// positive savings.
func allocateSeasonal(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand) {
	seasonalRate := decimal.NewFromFloat(0.03).Mul(in.seasonalFactor)
	st.growCash(seasonalRate)

	payment := st.payDebt(in.monthlySavings, decimal.NewFromFloat(0.25))
	st.cash = st.cash.Add(in.monthlySavings).Sub(payment)
}

// allocateRealistic is the canonical model: debt accrues interest before a
// capped paydown, an emergency fund fills first, the rest mostly flows into a
// portfolio compounding at the blended market sample, and rare life events
// fire late in long horizons.
func allocateRealistic(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand) {
	st.accrueDebtInterest(decimal.NewFromFloat(0.05))

	sample := e.Market.Combined(in.month, rng)
	monthlyReturn := sample.Return
	if sample.Recession {
		monthlyReturn = monthlyReturn.Sub(decimal.NewFromFloat(0.01).Div(decimalTwelve))
	} else if monthlyReturn.IsPositive() {
		monthlyReturn = monthlyReturn.Add(decimal.NewFromFloat(0.02).Div(decimalTwelve))
	}
	switch {
	case in.month > thirtyYearMonth:
		monthlyReturn = monthlyReturn.Mul(decimal.NewFromFloat(0.60))
	case in.month > twentyYearMonth:
		monthlyReturn = monthlyReturn.Mul(decimal.NewFromFloat(0.75))
	}
	st.growPortfolio(monthlyReturn)

	payment := st.payDebt(in.monthlySavings, decimal.NewFromFloat(0.30))
	remainder := in.monthlySavings.Sub(payment)
	if remainder.IsPositive() {
		target := in.expenses.Mul(decimalSix)
		if st.emergencyFund.LessThan(target) {
			contribution := remainder.Mul(decimal.NewFromFloat(0.50))
			if shortfall := target.Sub(st.emergencyFund); contribution.GreaterThan(shortfall) {
				contribution = shortfall
			}
			st.emergencyFund = st.emergencyFund.Add(contribution)
			remainder = remainder.Sub(contribution)
		}
		invest := remainder.Mul(decimal.NewFromFloat(0.90))
		st.portfolio = st.portfolio.Add(invest)
		st.cash = st.cash.Add(remainder.Sub(invest))
	} else {
		st.cash = st.cash.Add(remainder)
	}

	// Rare major life events only once past the 20-year mark.
	if in.month > twentyYearMonth && rng.Float64() < 0.001 {
		switch rng.Intn(3) {
		case 0: // windfall
			st.cash = st.cash.Add(st.income.Mul(decimalSix))
			e.Logger.Debugf("month %d: windfall life event", in.month)
		case 1: // major expense
			cost := st.income.Mul(decimal.NewFromInt(3))
			st.cash = st.cash.Sub(cost)
			st.totalSpent = st.totalSpent.Add(cost)
			e.Logger.Debugf("month %d: major expense life event", in.month)
		default: // career change
			st.income = st.income.Mul(decimal.NewFromFloat(0.90))
			e.Logger.Debugf("month %d: career change life event", in.month)
		}
	}
}

// allocateConservative fills a 6x-expenses emergency fund with up to 80% of
// positive savings before anything else; debt paydown starts only once the
// fund is full, and cash earns a low fixed rate.
func allocateConservative(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand) {
	st.growCash(decimal.NewFromFloat(0.025))

	target := in.expenses.Mul(decimalSix)
	fundMet := st.emergencyFund.GreaterThanOrEqual(target)

	payment := decimal.Zero
	if fundMet {
		payment = st.payDebt(in.monthlySavings, decimal.NewFromFloat(0.40))
	}
	remainder := in.monthlySavings.Sub(payment)
	if remainder.IsPositive() && !fundMet {
		contribution := remainder.Mul(decimal.NewFromFloat(0.80))
		if shortfall := target.Sub(st.emergencyFund); contribution.GreaterThan(shortfall) {
			contribution = shortfall
		}
		st.emergencyFund = st.emergencyFund.Add(contribution)
		remainder = remainder.Sub(contribution)
	}
	st.cash = st.cash.Add(remainder)
}

// allocateSavings holds everything as cash at a fixed modest rate while debt
// accrues interest and is paid at 30% of positive savings.
func allocateSavings(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand) {
	st.accrueDebtInterest(decimal.NewFromFloat(0.05))
	st.growCash(decimal.NewFromFloat(0.02))

	payment := st.payDebt(in.monthlySavings, decimal.NewFromFloat(0.30))
	st.cash = st.cash.Add(in.monthlySavings).Sub(payment)
}

// allocateOptimistic invests 80% of positive savings at a high fixed return
// with aggressive debt paydown.
func allocateOptimistic(e *ProjectionEngine, st *simulationState, in allocationInput, rng *rand.Rand) {
	st.growPortfolio(decimal.NewFromFloat(0.15).Div(decimalTwelve))

	payment := st.payDebt(in.monthlySavings, decimal.NewFromFloat(0.60))
	remainder := in.monthlySavings.Sub(payment)
	if remainder.IsPositive() {
		invest := remainder.Mul(decimal.NewFromFloat(0.80))
		st.portfolio = st.portfolio.Add(invest)
		st.cash = st.cash.Add(remainder.Sub(invest))
		return
	}
	st.cash = st.cash.Add(remainder)
}
