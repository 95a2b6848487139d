// Package transform applies what-if scenario deltas to a baseline financial
// profile. Deltas are composable operations applied in list order, so repeated
// deltas on the same category compound; the baseline profile is never
// mutated.
package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ApplyDeltas produces a new profile from a baseline plus a list of category
// deltas. Each delta resolves its target field and either scales it by
// (1 + percent/100) or shifts it by a flat amount. An empty delta list returns
// a deep copy equal to the input. Resulting negative values are allowed to
// surface; they are caught by downstream validation.
func ApplyDeltas(base domain.FinancialProfile, deltas []domain.ScenarioDelta) (domain.FinancialProfile, error) {
	out := base.DeepCopy()

	for i, delta := range deltas {
		if err := delta.Validate(); err != nil {
			return base, &DeltaError{Index: i, Category: delta.Category, Err: err}
		}

		switch delta.Category {
		case domain.CategoryIncome:
			out.MonthlyIncome = adjust(out.MonthlyIncome, delta)
		case domain.CategorySavings:
			out.CurrentSavings = adjust(out.CurrentSavings, delta)
		default:
			current, ok := out.MonthlyExpenses.Category(delta.Category)
			if !ok {
				return base, &DeltaError{Index: i, Category: delta.Category, Err: fmt.Errorf("unknown expense category")}
			}
			expenses, err := out.MonthlyExpenses.WithCategory(delta.Category, adjust(current, delta))
			if err != nil {
				return base, &DeltaError{Index: i, Category: delta.Category, Err: err}
			}
			out.MonthlyExpenses = expenses
		}
	}

	return out, nil
}

func adjust(value decimal.Decimal, delta domain.ScenarioDelta) decimal.Decimal {
	if delta.ChangePercent != nil {
		return value.Mul(one.Add(delta.ChangePercent.Div(hundred)))
	}
	return value.Add(*delta.ChangeAmount)
}

// DeltaError reports which delta in a scenario list failed to apply.
type DeltaError struct {
	Index    int
	Category string
	Err      error
}

func (e *DeltaError) Error() string {
	return fmt.Sprintf("scenario delta %d (%s): %v", e.Index, e.Category, e.Err)
}

func (e *DeltaError) Unwrap() error {
	return e.Err
}
