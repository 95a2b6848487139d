package domain

import "github.com/shopspring/decimal"

var (
	wealthyNetWorth   = decimal.NewFromInt(50000)
	thrivingNetWorth  = decimal.NewFromInt(10000)
	thrivingDebtRatio = decimal.NewFromFloat(0.2)
)

// ClassifyWealth derives the qualitative wealth tier for a single point.
// Total over all finite inputs, including negative net worth.
func ClassifyWealth(netWorth, debt decimal.Decimal) AvatarState {
	switch {
	case netWorth.GreaterThan(wealthyNetWorth) && debt.IsZero():
		return StateWealthy
	case netWorth.GreaterThan(thrivingNetWorth) && debt.LessThan(netWorth.Mul(thrivingDebtRatio)):
		return StateThriving
	case netWorth.IsPositive() && debt.LessThan(netWorth):
		return StateStable
	default:
		return StateStruggling
	}
}
