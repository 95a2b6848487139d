package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

var growthAdvantage = decimal.NewFromFloat(1.5)

// Compare derives structured insights from the final points of a status-quo
// and what-if timeline. It never fails: empty or mismatched inputs yield no
// insights, and ratio-based findings are omitted when their denominator is
// zero or negative rather than propagating division artifacts.
func Compare(statusQuo, whatIf []domain.TimelinePoint) []domain.Insight {
	if len(statusQuo) == 0 || len(whatIf) == 0 {
		return nil
	}

	sqFinal := statusQuo[len(statusQuo)-1]
	wiFinal := whatIf[len(whatIf)-1]

	var insights []domain.Insight

	netWorthDelta := wiFinal.NetWorth.Sub(sqFinal.NetWorth)
	insights = append(insights, domain.Insight{
		Kind:    domain.InsightNetWorthDelta,
		Message: deltaMessage("net worth", netWorthDelta),
		Amount:  netWorthDelta,
	})

	savingsDelta := wiFinal.Savings.Sub(sqFinal.Savings)
	insights = append(insights, domain.Insight{
		Kind:    domain.InsightSavingsDelta,
		Message: deltaMessage("savings", savingsDelta),
		Amount:  savingsDelta,
	})

	if wiFinal.Debt.IsZero() && sqFinal.Debt.IsPositive() {
		insights = append(insights, domain.Insight{
			Kind:    domain.InsightDebtFree,
			Message: fmt.Sprintf("the scenario reaches zero debt while the status quo still owes $%s", sqFinal.Debt.StringFixed(2)),
			Amount:  sqFinal.Debt,
		})
	}

	sqGrowth := averageGrowth(statusQuo)
	wiGrowth := averageGrowth(whatIf)
	if sqGrowth.IsPositive() && wiGrowth.GreaterThan(sqGrowth.Mul(growthAdvantage)) {
		insights = append(insights, domain.Insight{
			Kind: domain.InsightAcceleratedGrowth,
			Message: fmt.Sprintf("the scenario grows net worth $%s/month versus $%s/month under the status quo",
				wiGrowth.StringFixed(2), sqGrowth.StringFixed(2)),
			Amount: wiGrowth.Sub(sqGrowth),
		})
	}

	return insights
}

// averageGrowth is the mean month-over-month net-worth change across a
// timeline.
func averageGrowth(points []domain.TimelinePoint) decimal.Decimal {
	if len(points) < 2 {
		return decimal.Zero
	}
	first := points[0]
	last := points[len(points)-1]
	return last.NetWorth.Sub(first.NetWorth).Div(decimal.NewFromInt(int64(len(points) - 1)))
}

func deltaMessage(metric string, delta decimal.Decimal) string {
	switch delta.Sign() {
	case 1:
		return fmt.Sprintf("the scenario ends with $%s more %s than the status quo", delta.StringFixed(2), metric)
	case -1:
		return fmt.Sprintf("the scenario ends with $%s less %s than the status quo", delta.Abs().StringFixed(2), metric)
	default:
		return fmt.Sprintf("the scenario ends with the same %s as the status quo", metric)
	}
}
