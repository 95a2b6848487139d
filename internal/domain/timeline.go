package domain

import "github.com/shopspring/decimal"

// TimelinePoint is one month's snapshot of a projection run. NetWorth is
// always exactly Savings minus Debt.
type TimelinePoint struct {
	Month      int             `json:"month"`
	NetWorth   decimal.Decimal `json:"netWorth"`
	Savings    decimal.Decimal `json:"savings"`
	Debt       decimal.Decimal `json:"debt"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	TotalSaved decimal.Decimal `json:"totalSaved"`
}

// PromotionEventKind is the kind of income-growth event.
type PromotionEventKind string

const (
	EventPromotion PromotionEventKind = "promotion"
	EventBonus     PromotionEventKind = "bonus"
	EventJobChange PromotionEventKind = "job_change"
)

// PromotionEvent is a scheduled income-growth event. The salary increase is a
// permanent fractional raise; the bonus is a one-time payout expressed as a
// fraction of the raised monthly income.
type PromotionEvent struct {
	Month          int                `json:"month"`
	SalaryIncrease decimal.Decimal    `json:"salaryIncrease"`
	BonusFraction  decimal.Decimal    `json:"bonusFraction"`
	Kind           PromotionEventKind `json:"kind"`
}

// MarketSample is a single month's observation of a market index: the monthly
// fractional return, the volatility band it was drawn from, and whether the
// month falls in a recession regime.
type MarketSample struct {
	Month      int             `json:"month"`
	Return     decimal.Decimal `json:"return"`
	Volatility decimal.Decimal `json:"volatility"`
	Recession  bool            `json:"recession"`
}

// ProjectionSummary condenses a timeline into the headline metrics used by
// comparison and output.
type ProjectionSummary struct {
	Variant             ModelVariant    `json:"variant"`
	Months              int             `json:"months"`
	FinalNetWorth       decimal.Decimal `json:"finalNetWorth"`
	FinalSavings        decimal.Decimal `json:"finalSavings"`
	FinalDebt           decimal.Decimal `json:"finalDebt"`
	TotalSpent          decimal.Decimal `json:"totalSpent"`
	TotalSaved          decimal.Decimal `json:"totalSaved"`
	DebtFreeMonth       int             `json:"debtFreeMonth"`    // 0 when debt never reaches zero
	SavingsGoalMonth    int             `json:"savingsGoalMonth"` // 0 when no goal or never reached
	AvgMonthlyGrowth    decimal.Decimal `json:"avgMonthlyGrowth"` // net-worth change per month
	FinalClassification AvatarState     `json:"finalClassification"`
}

// AvatarState is the qualitative wealth tier derived from a single point.
type AvatarState string

const (
	StateStruggling AvatarState = "struggling"
	StateStable     AvatarState = "stable"
	StateThriving   AvatarState = "thriving"
	StateWealthy    AvatarState = "wealthy"
)

// InsightKind identifies a structured comparison insight.
type InsightKind string

const (
	InsightNetWorthDelta     InsightKind = "net_worth_delta"
	InsightSavingsDelta      InsightKind = "savings_delta"
	InsightDebtFree          InsightKind = "debt_free"
	InsightAcceleratedGrowth InsightKind = "accelerated_growth"
)

// Insight is one structured finding from comparing a status-quo timeline with
// a what-if timeline.
type Insight struct {
	Kind    InsightKind     `json:"kind"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount"`
}
