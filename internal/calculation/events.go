package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

// Promotion scheduling constants: events land roughly every two years with
// bounded jitter, never closer together than a year.
const (
	promotionInterval = 24
	promotionJitter   = 6
	minPromotionGap   = 12
)

// eventProfile fixes the per-variant raise, bonus, and kind probabilities.
type eventProfile struct {
	raise           decimal.Decimal // permanent fractional raise on promotion
	bonus           decimal.Decimal // one-time bonus as a fraction of monthly income
	bonusChance     float64         // chance an event is a pure bonus instead of a promotion
	jobChangeChance float64         // chance an event is a job change
	jobChangeRaise  decimal.Decimal // raise applied on a job change
}

var eventProfiles = map[domain.ModelVariant]eventProfile{
	domain.ModelLinear:       {raise: decimal.NewFromFloat(0.03), bonus: decimal.NewFromFloat(0.05), bonusChance: 0.30},
	domain.ModelExponential:  {raise: decimal.NewFromFloat(0.05), bonus: decimal.NewFromFloat(0.10), bonusChance: 0.35},
	domain.ModelSeasonal:     {raise: decimal.NewFromFloat(0.02), bonus: decimal.NewFromFloat(0.03), bonusChance: 0.20},
	domain.ModelRealistic:    {raise: decimal.NewFromFloat(0.04), bonus: decimal.NewFromFloat(0.08), bonusChance: 0.30},
	domain.ModelConservative: {raise: decimal.NewFromFloat(0.025), bonus: decimal.NewFromFloat(0.04), bonusChance: 0.20},
	domain.ModelSavings:      {raise: decimal.NewFromFloat(0.01)},
	domain.ModelOptimistic: {
		raise:           decimal.NewFromFloat(0.06),
		bonus:           decimal.NewFromFloat(0.12),
		bonusChance:     0.40,
		jobChangeChance: 0.25,
		jobChangeRaise:  decimal.NewFromFloat(0.15),
	},
}

// ScheduleEvents generates the full promotion schedule for a horizon before
// stepping begins. All randomness comes from the supplied source, so a
// status-quo and what-if run sharing a seed share a schedule.
func ScheduleEvents(months int, variant domain.ModelVariant, rng *rand.Rand) []domain.PromotionEvent {
	profile, ok := eventProfiles[variant]
	if !ok {
		profile = eventProfiles[domain.ModelRealistic]
	}

	var events []domain.PromotionEvent
	month := 0
	for {
		gap := promotionInterval + rng.Intn(2*promotionJitter+1) - promotionJitter
		if gap < minPromotionGap {
			gap = minPromotionGap
		}
		month += gap
		if month > months {
			return events
		}
		events = append(events, nextEvent(month, profile, rng))
	}
}

func nextEvent(month int, profile eventProfile, rng *rand.Rand) domain.PromotionEvent {
	// Draw both kind rolls unconditionally so the consumption pattern does
	// not depend on earlier outcomes.
	jobRoll := rng.Float64()
	bonusRoll := rng.Float64()

	if profile.jobChangeChance > 0 && jobRoll < profile.jobChangeChance {
		return domain.PromotionEvent{
			Month:          month,
			SalaryIncrease: profile.jobChangeRaise,
			BonusFraction:  decimal.Zero,
			Kind:           domain.EventJobChange,
		}
	}
	if profile.bonusChance > 0 && bonusRoll < profile.bonusChance {
		return domain.PromotionEvent{
			Month:          month,
			SalaryIncrease: decimal.Zero,
			BonusFraction:  profile.bonus,
			Kind:           domain.EventBonus,
		}
	}
	return domain.PromotionEvent{
		Month:          month,
		SalaryIncrease: profile.raise,
		BonusFraction:  decimal.Zero,
		Kind:           domain.EventPromotion,
	}
}
