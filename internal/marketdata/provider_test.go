package marketdata

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestHistoricalMonths(t *testing.T) {
	p := NewProvider()
	if got := p.HistoricalMonths(); got != len(sp500Closes)-1 {
		t.Errorf("Expected %d historical months, got %d", len(sp500Closes)-1, got)
	}
}

func TestHistoricalSampleIsDeterministicLookup(t *testing.T) {
	p := NewProvider()

	a := p.Primary(2, newRng())
	b := p.Primary(2, rand.New(rand.NewSource(999)))
	if !a.Return.Equal(b.Return) {
		t.Errorf("Expected historical sample to ignore the random source: %s vs %s", a.Return, b.Return)
	}

	want := decimal.NewFromFloat(sp500Closes[2]).
		Div(decimal.NewFromFloat(sp500Closes[1])).
		Sub(decimal.NewFromInt(1)).
		Round(6)
	if !a.Return.Equal(want) {
		t.Errorf("Expected month 2 return %s, got %s", want, a.Return)
	}
}

func TestHistoricalRecessionFlag(t *testing.T) {
	p := NewProvider()

	// March 2020: the S&P dropped over 12% month-over-month.
	sample := p.Primary(2, newRng())
	if !sample.Recession {
		t.Error("Expected March 2020 crash month to be flagged as recession")
	}

	combined := p.Combined(2, newRng())
	if !combined.Recession {
		t.Error("Expected combined sample to OR recession flags")
	}
}

func TestFirstMonthPastDatasetUsesCycle(t *testing.T) {
	p := NewProvider()
	month := p.HistoricalMonths() + 1

	sample := p.Primary(month, newRng())
	recovery := marketCycle[0]
	if !sample.Volatility.Equal(recovery.volatility) {
		t.Errorf("Expected recovery-phase volatility %s, got %s", recovery.volatility, sample.Volatility)
	}
	if sample.Recession {
		t.Error("Expected recovery phase to not be a recession")
	}

	diff := sample.Return.Sub(recovery.baseReturn).Abs()
	if diff.GreaterThan(recovery.volatility) {
		t.Errorf("Expected jitter within +/-%s of base, got diff %s", recovery.volatility, diff)
	}
}

func TestMultiCycleExtrapolation(t *testing.T) {
	p := NewProvider()

	// A bust-phase offset two full cycles out.
	bustOffset := 40
	month := p.HistoricalMonths() + 1 + bustOffset + 2*cycleMonths

	sample := p.Primary(month, newRng())
	if !sample.Recession {
		t.Errorf("Expected month %d (cycle offset %d) to be a recession", month, bustOffset)
	}
	bust := marketCycle[2]
	if !sample.Volatility.Equal(bust.volatility) {
		t.Errorf("Expected bust volatility %s, got %s", bust.volatility, sample.Volatility)
	}
}

func TestCombinedBlendWeights(t *testing.T) {
	p := NewProvider()

	a := p.Primary(5, newRng())
	b := p.Secondary(5, newRng())
	combined := p.Combined(5, newRng())

	want := a.Return.Mul(decimal.NewFromFloat(0.6)).Add(b.Return.Mul(decimal.NewFromFloat(0.4)))
	if !combined.Return.Equal(want) {
		t.Errorf("Expected blended return %s, got %s", want, combined.Return)
	}
}

func TestExtrapolationDeterministicPerSeed(t *testing.T) {
	p := NewProvider()
	month := p.HistoricalMonths() + 10

	a := p.Combined(month, rand.New(rand.NewSource(42)))
	b := p.Combined(month, rand.New(rand.NewSource(42)))
	if !a.Return.Equal(b.Return) {
		t.Errorf("Expected identical seeds to produce identical samples: %s vs %s", a.Return, b.Return)
	}
}

func TestCycleCoversAllOffsets(t *testing.T) {
	for offset := 0; offset < cycleMonths; offset++ {
		phase := phaseFor(offset)
		if phase.name == "" {
			t.Fatalf("No phase for offset %d", offset)
		}
	}
	if phaseFor(0).name != "recovery" {
		t.Error("Expected cycle to open with recovery")
	}
	if !phaseFor(36).recession {
		t.Error("Expected offset 36 to open the bust phase")
	}
	if phaseFor(48).recession {
		t.Error("Expected offset 48 to open the plateau phase")
	}
}
