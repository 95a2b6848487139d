package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validExpenses() MonthlyExpenses {
	return MonthlyExpenses{
		Housing:        decimal.NewFromInt(1200),
		Food:           decimal.NewFromInt(600),
		Transportation: decimal.NewFromInt(350),
		Entertainment:  decimal.NewFromInt(400),
		Utilities:      decimal.NewFromInt(200),
		Other:          decimal.NewFromInt(250),
	}
}

func TestMonthlyExpensesTotal(t *testing.T) {
	total := validExpenses().Total()
	if !total.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("Expected total 3000, got %s", total)
	}
}

func TestMonthlyExpensesCategory(t *testing.T) {
	me := validExpenses()
	for _, name := range ExpenseCategories {
		if _, ok := me.Category(name); !ok {
			t.Errorf("Expected category %q to resolve", name)
		}
	}
	if _, ok := me.Category("yachts"); ok {
		t.Error("Expected unknown category to not resolve")
	}
}

func TestMonthlyExpensesWithCategory(t *testing.T) {
	me := validExpenses()
	updated, err := me.WithCategory(CategoryFood, decimal.NewFromInt(540))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !updated.Food.Equal(decimal.NewFromInt(540)) {
		t.Errorf("Expected food 540, got %s", updated.Food)
	}
	if !me.Food.Equal(decimal.NewFromInt(600)) {
		t.Error("Expected original expenses to be unchanged")
	}
}

func TestFinancialProfileValidate(t *testing.T) {
	profile := FinancialProfile{
		MonthlyIncome:   decimal.NewFromInt(4500),
		MonthlyExpenses: validExpenses(),
		CurrentSavings:  decimal.NewFromInt(5000),
		CurrentDebt:     decimal.NewFromInt(8000),
	}
	if err := profile.Validate(); err != nil {
		t.Errorf("Expected valid profile, got %v", err)
	}

	zeroIncome := profile
	zeroIncome.MonthlyIncome = decimal.Zero
	if err := zeroIncome.Validate(); err == nil {
		t.Error("Expected error for zero income")
	}

	negativeExpense := profile
	negativeExpense.MonthlyExpenses.Food = decimal.NewFromInt(-1)
	if err := negativeExpense.Validate(); err == nil {
		t.Error("Expected error for negative expense")
	}

	negativeSavings := profile
	negativeSavings.CurrentSavings = decimal.NewFromInt(-1)
	if err := negativeSavings.Validate(); err == nil {
		t.Error("Expected error for negative savings")
	}

	negativeDebt := profile
	negativeDebt.CurrentDebt = decimal.NewFromInt(-1)
	if err := negativeDebt.Validate(); err == nil {
		t.Error("Expected error for negative debt")
	}
}

func TestFinancialProfileDeepCopy(t *testing.T) {
	goal := decimal.NewFromInt(20000)
	profile := FinancialProfile{
		MonthlyIncome:   decimal.NewFromInt(4500),
		MonthlyExpenses: validExpenses(),
		SavingsGoal:     &goal,
	}

	copied := profile.DeepCopy()
	if copied.SavingsGoal == profile.SavingsGoal {
		t.Error("Expected savings goal pointer to be copied")
	}
	if !copied.SavingsGoal.Equal(goal) {
		t.Errorf("Expected savings goal %s, got %s", goal, copied.SavingsGoal)
	}
}

func TestParseModelVariant(t *testing.T) {
	for _, v := range AllModelVariants {
		parsed, err := ParseModelVariant(string(v))
		if err != nil {
			t.Errorf("Expected %q to parse, got %v", v, err)
		}
		if parsed != v {
			t.Errorf("Expected %q, got %q", v, parsed)
		}
	}

	if _, err := ParseModelVariant("pessimistic"); err == nil {
		t.Error("Expected error for unknown variant")
	}
}

func TestScenarioDeltaValidate(t *testing.T) {
	pct := decimal.NewFromInt(-10)
	amt := decimal.NewFromInt(100)

	valid := ScenarioDelta{Category: CategoryFood, ChangePercent: &pct}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid delta, got %v", err)
	}

	neither := ScenarioDelta{Category: CategoryFood}
	if err := neither.Validate(); err == nil {
		t.Error("Expected error when neither change is set")
	}

	both := ScenarioDelta{Category: CategoryFood, ChangePercent: &pct, ChangeAmount: &amt}
	if err := both.Validate(); err == nil {
		t.Error("Expected error when both changes are set")
	}

	unknown := ScenarioDelta{Category: "yachts", ChangeAmount: &amt}
	if err := unknown.Validate(); err == nil {
		t.Error("Expected error for unknown category")
	}

	income := ScenarioDelta{Category: CategoryIncome, ChangeAmount: &amt}
	if err := income.Validate(); err != nil {
		t.Errorf("Expected income delta to validate, got %v", err)
	}
}

func TestClassifyWealth(t *testing.T) {
	cases := []struct {
		name     string
		netWorth int64
		debt     int64
		want     AvatarState
	}{
		{"wealthy", 60000, 0, StateWealthy},
		{"wealthy threshold needs zero debt", 60000, 1, StateThriving},
		{"thriving", 20000, 3999, StateThriving},
		{"thriving ratio boundary falls to stable", 20000, 4000, StateStable},
		{"stable", 5000, 4999, StateStable},
		{"debt equal to net worth struggles", 5000, 5000, StateStruggling},
		{"negative net worth struggles", -1000, 0, StateStruggling},
		{"zero net worth struggles", 0, 0, StateStruggling},
		{"exactly 50000 with no debt is thriving", 50000, 0, StateThriving},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyWealth(decimal.NewFromInt(tc.netWorth), decimal.NewFromInt(tc.debt))
			if got != tc.want {
				t.Errorf("ClassifyWealth(%d, %d) = %s, want %s", tc.netWorth, tc.debt, got, tc.want)
			}
		})
	}
}
