package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

const validInput = `
profile:
  monthly_income: 4500
  monthly_expenses:
    housing: 1200
    food: 600
    transportation: 350
    entertainment: 400
    utilities: 200
    other: 250
  current_savings: 5000
  current_debt: 8000
  savings_goal: 25000
scenarios:
  - name: trim-food
    deltas:
      - category: food
        change_percent: -10
  - name: raise
    deltas:
      - category: income
        change_amount: 500
projection:
  months: 60
  model: realistic
  seed: 42
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	input, err := parser.LoadFromFile(writeInput(t, validInput))
	require.NoError(t, err)

	assert.True(t, input.Profile.MonthlyIncome.Equal(decimal.NewFromInt(4500)))
	assert.True(t, input.Profile.MonthlyExpenses.Total().Equal(decimal.NewFromInt(3000)))
	require.NotNil(t, input.Profile.SavingsGoal)
	assert.True(t, input.Profile.SavingsGoal.Equal(decimal.NewFromInt(25000)))

	assert.Equal(t, 60, input.Projection.Months)
	assert.Equal(t, int64(42), input.Projection.Seed)
	assert.Equal(t, domain.ModelRealistic, input.Variant())

	scenario, err := input.Scenario("trim-food")
	require.NoError(t, err)
	require.Len(t, scenario.Deltas, 1)
	assert.Equal(t, domain.CategoryFood, scenario.Deltas[0].Category)

	_, err = input.Scenario("missing")
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveIncome(t *testing.T) {
	content := `
profile:
  monthly_income: 0
  current_savings: 100
`
	_, err := NewInputParser().LoadFromFile(writeInput(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthly income")
}

func TestValidateRejectsUnknownModel(t *testing.T) {
	content := `
profile:
  monthly_income: 4500
projection:
  model: pessimistic
`
	_, err := NewInputParser().LoadFromFile(writeInput(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model variant")
}

func TestValidateRejectsBadDelta(t *testing.T) {
	content := `
profile:
  monthly_income: 4500
scenarios:
  - name: broken
    deltas:
      - category: food
`
	_, err := NewInputParser().LoadFromFile(writeInput(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestValidateRejectsDuplicateScenarioNames(t *testing.T) {
	content := `
profile:
  monthly_income: 4500
scenarios:
  - name: twice
  - name: twice
`
	_, err := NewInputParser().LoadFromFile(writeInput(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestVariantDefaultsToRealistic(t *testing.T) {
	input := &Input{}
	assert.Equal(t, domain.ModelRealistic, input.Variant())
}

func TestClampMonths(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, DefaultMonths},
		{-5, MinMonths},
		{1, 1},
		{60, 60},
		{120, 120},
		{500, MaxMonths},
	}
	for _, tc := range cases {
		if got := ClampMonths(tc.in); got != tc.want {
			t.Errorf("ClampMonths(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
