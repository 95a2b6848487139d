// Package calculation steps a financial profile month-by-month into a
// timeline under one of seven economic model variants. The engine is a pure
// computation library: no I/O, no shared mutable state, and all randomness
// flows from a per-call seed so identical inputs produce identical timelines.
package calculation

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/mfriedenberg/wealthsim/internal/domain"
	"github.com/mfriedenberg/wealthsim/internal/marketdata"
)

// Income taper applied each month past the 30-year mark in the realistic
// model, simulating a glide into retirement.
var retirementTaperFactor = decimal.NewFromFloat(0.996)

// ProjectionEngine runs model-variant simulations against the market data
// provider. One engine is safe for concurrent Project calls: the provider is
// read-only and every call owns its own random source and state.
type ProjectionEngine struct {
	Market *marketdata.Provider
	Logger Logger
}

// NewProjectionEngine creates an engine over the embedded market dataset.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Market: marketdata.NewProvider(),
		Logger: NopLogger{},
	}
}

// Project runs the selected variant over the horizon and returns one timeline
// point per month. It rejects invalid input before stepping begins and
// otherwise cannot fail; callers clamp months to their own policy range (the
// CLI uses [1, 120]) but the engine accepts any positive horizon.
func (e *ProjectionEngine) Project(profile domain.FinancialProfile, months int, variant domain.ModelVariant, seed int64) ([]domain.TimelinePoint, error) {
	if months < 1 {
		return nil, fmt.Errorf("months must be >= 1, got %d", months)
	}
	if !variant.Valid() {
		return nil, fmt.Errorf("unknown model variant %q", variant)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	schedule := ScheduleEvents(months, variant, rng)
	e.Logger.Debugf("projecting %d months, variant=%s, %d promotion events", months, variant, len(schedule))
	return e.run(profile, months, variant, schedule, rng), nil
}

// ProjectStatusQuo is the default-variant entry point used when no explicit
// model is selected. It runs the realistic model through the same stepping
// skeleton, so status-quo and what-if runs stay comparable.
func (e *ProjectionEngine) ProjectStatusQuo(profile domain.FinancialProfile, months int, seed int64) ([]domain.TimelinePoint, error) {
	return e.Project(profile, months, domain.ModelRealistic, seed)
}

// run is the shared monthly loop. The schedule is consumed read-only; all
// per-run mutation lives in the local simulationState.
func (e *ProjectionEngine) run(profile domain.FinancialProfile, months int, variant domain.ModelVariant, schedule []domain.PromotionEvent, rng *rand.Rand) []domain.TimelinePoint {
	pol := policyFor(variant)

	eventsByMonth := make(map[int][]domain.PromotionEvent, len(schedule))
	for _, ev := range schedule {
		eventsByMonth[ev.Month] = append(eventsByMonth[ev.Month], ev)
	}

	st := &simulationState{
		income: profile.MonthlyIncome,
		cash:   profile.CurrentSavings,
		debt:   profile.CurrentDebt,
	}
	baseExpenses := profile.MonthlyExpenses.Total()
	monthlyInflation := pol.annualInflation.Div(decimalTwelve)
	inflationFactor := decimalOne

	points := make([]domain.TimelinePoint, 0, months)
	for month := 1; month <= months; month++ {
		// Inflation compounds as (1+i)^(month-1): month 1 is uninflated.
		if month > 1 {
			inflationFactor = inflationFactor.Mul(decimalOne.Add(monthlyInflation))
		}

		for _, ev := range eventsByMonth[month] {
			if ev.SalaryIncrease.IsPositive() {
				st.income = st.income.Mul(decimalOne.Add(ev.SalaryIncrease))
			}
			if ev.BonusFraction.IsPositive() {
				st.cash = st.cash.Add(st.income.Mul(ev.BonusFraction))
			}
		}

		if pol.retirementTaper && month > thirtyYearMonth {
			st.income = st.income.Mul(retirementTaperFactor)
		}

		adjustedIncome := st.income
		expenses := baseExpenses.Mul(inflationFactor)
		seasonalFactor := decimalOne
		if pol.seasonal {
			calendarMonth := (month-1)%12 + 1
			if seasonalIncomeGapMonths[calendarMonth] {
				adjustedIncome = decimal.Zero
			}
			seasonalFactor = seasonalExpenseFactors[(month-1)%12]
			expenses = expenses.Mul(seasonalFactor)
		}

		monthlySavings := adjustedIncome.Sub(expenses)
		st.totalSpent = st.totalSpent.Add(expenses)
		st.totalSaved = st.totalSaved.Add(monthlySavings)

		pol.allocate(e, st, allocationInput{
			month:          month,
			expenses:       expenses,
			monthlySavings: monthlySavings,
			seasonalFactor: seasonalFactor,
		}, rng)

		savings := st.savings()
		points = append(points, domain.TimelinePoint{
			Month:      month,
			Savings:    savings,
			Debt:       st.debt,
			NetWorth:   savings.Sub(st.debt),
			TotalSpent: st.totalSpent,
			TotalSaved: st.totalSaved,
		})
	}
	return points
}

// Summarize condenses a timeline into its headline metrics.
func Summarize(profile domain.FinancialProfile, variant domain.ModelVariant, points []domain.TimelinePoint) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{Variant: variant, Months: len(points)}
	if len(points) == 0 {
		return summary
	}

	final := points[len(points)-1]
	summary.FinalNetWorth = final.NetWorth
	summary.FinalSavings = final.Savings
	summary.FinalDebt = final.Debt
	summary.TotalSpent = final.TotalSpent
	summary.TotalSaved = final.TotalSaved
	summary.FinalClassification = domain.ClassifyWealth(final.NetWorth, final.Debt)

	if profile.CurrentDebt.IsPositive() {
		for _, p := range points {
			if p.Debt.IsZero() {
				summary.DebtFreeMonth = p.Month
				break
			}
		}
	}

	if profile.SavingsGoal != nil && profile.SavingsGoal.IsPositive() {
		for _, p := range points {
			if p.Savings.GreaterThanOrEqual(*profile.SavingsGoal) {
				summary.SavingsGoalMonth = p.Month
				break
			}
		}
	}

	initialNetWorth := profile.CurrentSavings.Sub(profile.CurrentDebt)
	summary.AvgMonthlyGrowth = final.NetWorth.Sub(initialNetWorth).Div(decimal.NewFromInt(int64(len(points))))
	return summary
}
