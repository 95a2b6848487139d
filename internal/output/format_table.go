// Package output renders projection timelines and what-if comparisons as
// console tables, CSV, and JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/mfriedenberg/wealthsim/internal/compare"
	"github.com/mfriedenberg/wealthsim/internal/domain"
)

const tableWidth = 88

// TimelineTable formats a projection timeline as a console table.
func TimelineTable(summary domain.ProjectionSummary, points []domain.TimelinePoint) string {
	var sb strings.Builder

	sb.WriteString("NET WORTH PROJECTION\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Model: %s    Horizon: %d months\n\n", summary.Variant, summary.Months))

	sb.WriteString(fmt.Sprintf("%-6s %15s %15s %15s %15s %15s\n",
		"Month", "Net Worth", "Savings", "Debt", "Total Spent", "Total Saved"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	for _, p := range points {
		sb.WriteString(fmt.Sprintf("%-6d %15s %15s %15s %15s %15s\n",
			p.Month,
			p.NetWorth.StringFixed(2),
			p.Savings.StringFixed(2),
			p.Debt.StringFixed(2),
			p.TotalSpent.StringFixed(2),
			p.TotalSaved.StringFixed(2)))
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(summaryLines(summary))
	return sb.String()
}

// ComparisonTable formats a what-if run: both summaries side by side followed
// by the derived insights.
func ComparisonTable(result *compare.WhatIfResult) string {
	var sb strings.Builder

	sb.WriteString("WHAT-IF SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Model: %s    Horizon: %d months\n\n",
		result.StatusQuoSummary.Variant, result.StatusQuoSummary.Months))

	sb.WriteString(fmt.Sprintf("%-24s %18s %18s\n", "", "Status Quo", "What-If"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	rows := []struct {
		label  string
		sq, wi string
	}{
		{"Final net worth", result.StatusQuoSummary.FinalNetWorth.StringFixed(2), result.WhatIfSummary.FinalNetWorth.StringFixed(2)},
		{"Final savings", result.StatusQuoSummary.FinalSavings.StringFixed(2), result.WhatIfSummary.FinalSavings.StringFixed(2)},
		{"Final debt", result.StatusQuoSummary.FinalDebt.StringFixed(2), result.WhatIfSummary.FinalDebt.StringFixed(2)},
		{"Total spent", result.StatusQuoSummary.TotalSpent.StringFixed(2), result.WhatIfSummary.TotalSpent.StringFixed(2)},
		{"Total saved", result.StatusQuoSummary.TotalSaved.StringFixed(2), result.WhatIfSummary.TotalSaved.StringFixed(2)},
		{"Debt-free month", monthOrDash(result.StatusQuoSummary.DebtFreeMonth), monthOrDash(result.WhatIfSummary.DebtFreeMonth)},
		{"Savings-goal month", monthOrDash(result.StatusQuoSummary.SavingsGoalMonth), monthOrDash(result.WhatIfSummary.SavingsGoalMonth)},
		{"Classification", string(result.StatusQuoSummary.FinalClassification), string(result.WhatIfSummary.FinalClassification)},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-24s %18s %18s\n", row.label, row.sq, row.wi))
	}

	if len(result.Insights) > 0 {
		sb.WriteString("\nINSIGHTS\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, insight := range result.Insights {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", insight.Kind, insight.Message))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	return sb.String()
}

func summaryLines(summary domain.ProjectionSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final net worth:  %s\n", summary.FinalNetWorth.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Final savings:    %s\n", summary.FinalSavings.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Final debt:       %s\n", summary.FinalDebt.StringFixed(2)))
	if summary.DebtFreeMonth > 0 {
		sb.WriteString(fmt.Sprintf("Debt free at:     month %d\n", summary.DebtFreeMonth))
	}
	if summary.SavingsGoalMonth > 0 {
		sb.WriteString(fmt.Sprintf("Goal reached at:  month %d\n", summary.SavingsGoalMonth))
	}
	sb.WriteString(fmt.Sprintf("Classification:   %s\n", summary.FinalClassification))
	return sb.String()
}

func monthOrDash(month int) string {
	if month <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", month)
}
