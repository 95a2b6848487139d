package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ScenarioDelta is a single what-if adjustment to a baseline profile. Exactly
// one of ChangePercent or ChangeAmount must be set. Deltas in a list apply
// sequentially, so two percentage deltas on the same category compound.
type ScenarioDelta struct {
	Category      string           `json:"category" yaml:"category"`
	ChangePercent *decimal.Decimal `json:"changePercent,omitempty" yaml:"change_percent,omitempty"`
	ChangeAmount  *decimal.Decimal `json:"changeAmount,omitempty" yaml:"change_amount,omitempty"`
}

// Validate checks the delta targets a known category and carries exactly one
// change kind.
func (sd ScenarioDelta) Validate() error {
	if !validDeltaCategory(sd.Category) {
		return fmt.Errorf("unknown scenario category %q", sd.Category)
	}
	if sd.ChangePercent == nil && sd.ChangeAmount == nil {
		return fmt.Errorf("scenario delta for %q has neither change_percent nor change_amount", sd.Category)
	}
	if sd.ChangePercent != nil && sd.ChangeAmount != nil {
		return fmt.Errorf("scenario delta for %q has both change_percent and change_amount", sd.Category)
	}
	return nil
}

func validDeltaCategory(name string) bool {
	if name == CategoryIncome || name == CategorySavings {
		return true
	}
	for _, c := range ExpenseCategories {
		if c == name {
			return true
		}
	}
	return false
}
