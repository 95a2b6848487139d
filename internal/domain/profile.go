package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Expense category names used by MonthlyExpenses and ScenarioDelta.
const (
	CategoryHousing        = "housing"
	CategoryFood           = "food"
	CategoryTransportation = "transportation"
	CategoryEntertainment  = "entertainment"
	CategoryUtilities      = "utilities"
	CategoryOther          = "other"

	// Synthetic delta targets that resolve to profile fields rather than
	// expense categories.
	CategoryIncome  = "income"
	CategorySavings = "savings"
)

// ExpenseCategories lists the expense categories in display order.
var ExpenseCategories = []string{
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryOther,
}

// MonthlyExpenses is the fixed set of monthly expense categories.
type MonthlyExpenses struct {
	Housing        decimal.Decimal `json:"housing" yaml:"housing"`
	Food           decimal.Decimal `json:"food" yaml:"food"`
	Transportation decimal.Decimal `json:"transportation" yaml:"transportation"`
	Entertainment  decimal.Decimal `json:"entertainment" yaml:"entertainment"`
	Utilities      decimal.Decimal `json:"utilities" yaml:"utilities"`
	Other          decimal.Decimal `json:"other" yaml:"other"`
}

// Total returns the sum of all expense categories.
func (me MonthlyExpenses) Total() decimal.Decimal {
	return me.Housing.
		Add(me.Food).
		Add(me.Transportation).
		Add(me.Entertainment).
		Add(me.Utilities).
		Add(me.Other)
}

// Category returns the value of a named expense category.
func (me MonthlyExpenses) Category(name string) (decimal.Decimal, bool) {
	switch name {
	case CategoryHousing:
		return me.Housing, true
	case CategoryFood:
		return me.Food, true
	case CategoryTransportation:
		return me.Transportation, true
	case CategoryEntertainment:
		return me.Entertainment, true
	case CategoryUtilities:
		return me.Utilities, true
	case CategoryOther:
		return me.Other, true
	}
	return decimal.Zero, false
}

// WithCategory returns a copy with the named expense category replaced.
func (me MonthlyExpenses) WithCategory(name string, value decimal.Decimal) (MonthlyExpenses, error) {
	out := me
	switch name {
	case CategoryHousing:
		out.Housing = value
	case CategoryFood:
		out.Food = value
	case CategoryTransportation:
		out.Transportation = value
	case CategoryEntertainment:
		out.Entertainment = value
	case CategoryUtilities:
		out.Utilities = value
	case CategoryOther:
		out.Other = value
	default:
		return me, fmt.Errorf("unknown expense category %q", name)
	}
	return out, nil
}

// Validate checks that every category is non-negative.
func (me MonthlyExpenses) Validate() error {
	for _, name := range ExpenseCategories {
		value, _ := me.Category(name)
		if value.IsNegative() {
			return fmt.Errorf("expense category %q must be >= 0, got %s", name, value)
		}
	}
	return nil
}

// FinancialProfile is the immutable input to a projection run. Profiles are
// never modified in place; scenario application produces an independent copy.
type FinancialProfile struct {
	MonthlyIncome   decimal.Decimal  `json:"monthlyIncome" yaml:"monthly_income"`
	MonthlyExpenses MonthlyExpenses  `json:"monthlyExpenses" yaml:"monthly_expenses"`
	CurrentSavings  decimal.Decimal  `json:"currentSavings" yaml:"current_savings"`
	CurrentDebt     decimal.Decimal  `json:"currentDebt" yaml:"current_debt"`
	SavingsGoal     *decimal.Decimal `json:"savingsGoal,omitempty" yaml:"savings_goal,omitempty"`
}

// DeepCopy returns an independent copy of the profile, including the optional
// savings goal.
func (fp FinancialProfile) DeepCopy() FinancialProfile {
	out := fp
	if fp.SavingsGoal != nil {
		goal := *fp.SavingsGoal
		out.SavingsGoal = &goal
	}
	return out
}

// Validate checks the profile invariants: positive income, non-negative
// expenses, savings and debt.
func (fp FinancialProfile) Validate() error {
	if !fp.MonthlyIncome.IsPositive() {
		return fmt.Errorf("monthly income must be > 0, got %s", fp.MonthlyIncome)
	}
	if err := fp.MonthlyExpenses.Validate(); err != nil {
		return err
	}
	if fp.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings must be >= 0, got %s", fp.CurrentSavings)
	}
	if fp.CurrentDebt.IsNegative() {
		return fmt.Errorf("current debt must be >= 0, got %s", fp.CurrentDebt)
	}
	if fp.SavingsGoal != nil && fp.SavingsGoal.IsNegative() {
		return fmt.Errorf("savings goal must be >= 0, got %s", fp.SavingsGoal)
	}
	return nil
}
