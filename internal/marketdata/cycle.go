package marketdata

import "github.com/shopspring/decimal"

// Beyond the historical window, samples come from a repeating 7-year market
// cycle: a recovery, a boom, a bust flagged as recession, and a long plateau.
const cycleMonths = 84

type cyclePhase struct {
	name       string
	endOffset  int // exclusive upper bound of the phase within the cycle
	baseReturn decimal.Decimal
	volatility decimal.Decimal
	recession  bool
}

var marketCycle = []cyclePhase{
	{name: "recovery", endOffset: 12, baseReturn: decimal.NewFromFloat(0.010), volatility: decimal.NewFromFloat(0.020)},
	{name: "boom", endOffset: 36, baseReturn: decimal.NewFromFloat(0.012), volatility: decimal.NewFromFloat(0.015)},
	{name: "bust", endOffset: 48, baseReturn: decimal.NewFromFloat(-0.015), volatility: decimal.NewFromFloat(0.035), recession: true},
	{name: "plateau", endOffset: 84, baseReturn: decimal.NewFromFloat(0.004), volatility: decimal.NewFromFloat(0.010)},
}

// phaseFor returns the cycle phase containing the given offset within one
// 84-month cycle.
func phaseFor(offset int) cyclePhase {
	for _, phase := range marketCycle {
		if offset < phase.endOffset {
			return phase
		}
	}
	return marketCycle[len(marketCycle)-1]
}
