// Package marketdata supplies monthly market samples for a blended equity
// index. Months inside the embedded historical window are deterministic
// lookups; months beyond it follow a repeating 7-year cycle with bounded
// uniform jitter drawn from the caller's random source.
package marketdata

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

// Blend weights for the combined sample.
var (
	primaryWeight   = decimal.NewFromFloat(0.6)
	secondaryWeight = decimal.NewFromFloat(0.4)
)

// Historical months whose return is at or below this threshold are flagged as
// recession months.
var recessionThreshold = decimal.NewFromFloat(-0.05)

type index struct {
	name       string
	returns    []decimal.Decimal
	volatility decimal.Decimal
}

func newIndex(name string, closes []float64, volatility float64) index {
	returns := make([]decimal.Decimal, 0, len(closes)-1)
	prev := decimal.NewFromFloat(closes[0])
	for _, c := range closes[1:] {
		cur := decimal.NewFromFloat(c)
		returns = append(returns, cur.Div(prev).Sub(decimal.NewFromInt(1)).Round(6))
		prev = cur
	}
	return index{
		name:       name,
		returns:    returns,
		volatility: decimal.NewFromFloat(volatility),
	}
}

// sample produces the index's market sample for a 1-based month. Historical
// months never consume the random source.
func (ix index) sample(month int, rng *rand.Rand) domain.MarketSample {
	if month <= len(ix.returns) {
		r := ix.returns[month-1]
		return domain.MarketSample{
			Month:      month,
			Return:     r,
			Volatility: ix.volatility,
			Recession:  r.LessThanOrEqual(recessionThreshold),
		}
	}

	offset := (month - 1 - len(ix.returns)) % cycleMonths
	phase := phaseFor(offset)
	// Uniform jitter in [-volatility, +volatility].
	jitter := decimal.NewFromFloat(rng.Float64()*2 - 1).Mul(phase.volatility)
	return domain.MarketSample{
		Month:      month,
		Return:     phase.baseReturn.Add(jitter),
		Volatility: phase.volatility,
		Recession:  phase.recession,
	}
}

// Provider serves market samples from a primary and secondary index. The
// embedded dataset is read-only, so one Provider is safe for concurrent use;
// randomness comes from the per-call random source.
type Provider struct {
	primary   index
	secondary index
}

// NewProvider builds a provider over the embedded S&P 500 and NASDAQ series.
func NewProvider() *Provider {
	return &Provider{
		primary:   newIndex("sp500", sp500Closes, sp500Volatility),
		secondary: newIndex("nasdaq", nasdaqCloses, nasdaqVolatility),
	}
}

// HistoricalMonths reports how many months of the primary series are backed by
// real samples before extrapolation begins.
func (p *Provider) HistoricalMonths() int {
	return len(p.primary.returns)
}

// Primary returns the primary index sample for a 1-based month.
func (p *Provider) Primary(month int, rng *rand.Rand) domain.MarketSample {
	return p.primary.sample(month, rng)
}

// Secondary returns the secondary index sample for a 1-based month.
func (p *Provider) Secondary(month int, rng *rand.Rand) domain.MarketSample {
	return p.secondary.sample(month, rng)
}

// Combined blends the primary and secondary samples at fixed 60/40 weights
// and ORs their recession flags. The function is total for every month >= 1;
// non-positive months are a caller contract violation rejected at the
// engine boundary.
func (p *Provider) Combined(month int, rng *rand.Rand) domain.MarketSample {
	a := p.primary.sample(month, rng)
	b := p.secondary.sample(month, rng)
	return domain.MarketSample{
		Month:      month,
		Return:     a.Return.Mul(primaryWeight).Add(b.Return.Mul(secondaryWeight)),
		Volatility: a.Volatility.Mul(primaryWeight).Add(b.Volatility.Mul(secondaryWeight)),
		Recession:  a.Recession || b.Recession,
	}
}
