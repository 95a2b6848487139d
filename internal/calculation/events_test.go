package calculation

import (
	"math/rand"
	"testing"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

func TestScheduleEventsIntervalBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		events := ScheduleEvents(240, domain.ModelRealistic, rng)

		prev := 0
		for _, ev := range events {
			gap := ev.Month - prev
			if gap < minPromotionGap || gap > promotionInterval+promotionJitter {
				t.Errorf("seed %d: gap %d outside [%d, %d]", seed, gap, minPromotionGap, promotionInterval+promotionJitter)
			}
			if ev.Month > 240 {
				t.Errorf("seed %d: event at month %d beyond horizon", seed, ev.Month)
			}
			prev = ev.Month
		}
	}
}

func TestScheduleEventsShortHorizonIsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	events := ScheduleEvents(12, domain.ModelLinear, rng)
	if len(events) != 0 {
		t.Errorf("Expected no events inside the first year, got %d", len(events))
	}
}

func TestScheduleEventsDeterministicPerSeed(t *testing.T) {
	a := ScheduleEvents(120, domain.ModelOptimistic, rand.New(rand.NewSource(99)))
	b := ScheduleEvents(120, domain.ModelOptimistic, rand.New(rand.NewSource(99)))

	if len(a) != len(b) {
		t.Fatalf("Expected identical schedules, got %d vs %d events", len(a), len(b))
	}
	for i := range a {
		if a[i].Month != b[i].Month || a[i].Kind != b[i].Kind || !a[i].SalaryIncrease.Equal(b[i].SalaryIncrease) {
			t.Errorf("Event %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSavingsVariantHasNoBonuses(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, ev := range ScheduleEvents(360, domain.ModelSavings, rng) {
			if ev.Kind != domain.EventPromotion {
				t.Errorf("seed %d: savings variant produced %s event", seed, ev.Kind)
			}
			if ev.BonusFraction.IsPositive() {
				t.Errorf("seed %d: savings variant produced a bonus", seed)
			}
		}
	}
}

func TestOptimisticVariantCanChangeJobs(t *testing.T) {
	jobChanges := 0
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, ev := range ScheduleEvents(360, domain.ModelOptimistic, rng) {
			if ev.Kind == domain.EventJobChange {
				jobChanges++
				if !ev.SalaryIncrease.Equal(eventProfiles[domain.ModelOptimistic].jobChangeRaise) {
					t.Errorf("seed %d: job change raise %s", seed, ev.SalaryIncrease)
				}
			}
		}
	}
	if jobChanges == 0 {
		t.Error("Expected at least one job change across 50 seeds")
	}
}
