package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	positiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	negativeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SummaryCard renders a styled terminal card for a projection summary.
func SummaryCard(summary domain.ProjectionSummary) string {
	netWorthStyle := positiveStyle
	if summary.FinalNetWorth.IsNegative() {
		netWorthStyle = negativeStyle
	}

	body := fmt.Sprintf("%s\n\n%s %s\n%s %s\n%s %s\n%s %s",
		cardTitleStyle.Render(fmt.Sprintf("%s · %d months", summary.Variant, summary.Months)),
		labelStyle.Render("Net worth"),
		netWorthStyle.Render("$"+summary.FinalNetWorth.StringFixed(2)),
		labelStyle.Render("Savings  "),
		"$"+summary.FinalSavings.StringFixed(2),
		labelStyle.Render("Debt     "),
		"$"+summary.FinalDebt.StringFixed(2),
		labelStyle.Render("Status   "),
		string(summary.FinalClassification))

	return cardStyle.Render(body) + "\n"
}
