package output

import (
	"fmt"
	"strings"

	"github.com/mfriedenberg/wealthsim/internal/compare"
	"github.com/mfriedenberg/wealthsim/internal/domain"
)

// TimelineCSV renders a timeline as CSV with a header row.
func TimelineCSV(points []domain.TimelinePoint) string {
	var sb strings.Builder
	sb.WriteString("month,net_worth,savings,debt,total_spent,total_saved\n")
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("%d,%s,%s,%s,%s,%s\n",
			p.Month,
			p.NetWorth.StringFixed(2),
			p.Savings.StringFixed(2),
			p.Debt.StringFixed(2),
			p.TotalSpent.StringFixed(2),
			p.TotalSaved.StringFixed(2)))
	}
	return sb.String()
}

// ComparisonCSV renders a what-if run as CSV with paired status-quo and
// scenario columns per month. Both timelines share a horizon by construction.
func ComparisonCSV(result *compare.WhatIfResult) string {
	var sb strings.Builder
	sb.WriteString("month,status_quo_net_worth,what_if_net_worth,status_quo_savings,what_if_savings,status_quo_debt,what_if_debt\n")
	for i, sq := range result.StatusQuo {
		wi := result.WhatIf[i]
		sb.WriteString(fmt.Sprintf("%d,%s,%s,%s,%s,%s,%s\n",
			sq.Month,
			sq.NetWorth.StringFixed(2),
			wi.NetWorth.StringFixed(2),
			sq.Savings.StringFixed(2),
			wi.Savings.StringFixed(2),
			sq.Debt.StringFixed(2),
			wi.Debt.StringFixed(2)))
	}
	return sb.String()
}
