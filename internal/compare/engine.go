// Package compare runs status-quo / what-if projection pairs and derives
// structured insights from the resulting timelines.
package compare

import (
	"fmt"

	"github.com/mfriedenberg/wealthsim/internal/calculation"
	"github.com/mfriedenberg/wealthsim/internal/domain"
	"github.com/mfriedenberg/wealthsim/internal/transform"
)

// WhatIfEngine orchestrates a baseline run and a scenario run over the same
// horizon, variant, and seed, so both consume identical promotion schedules
// and market draws.
type WhatIfEngine struct {
	Calc *calculation.ProjectionEngine
}

// NewWhatIfEngine creates a comparison engine over a projection engine.
func NewWhatIfEngine(calc *calculation.ProjectionEngine) *WhatIfEngine {
	return &WhatIfEngine{Calc: calc}
}

// WhatIfRequest describes one comparison run.
type WhatIfRequest struct {
	Profile domain.FinancialProfile
	Deltas  []domain.ScenarioDelta
	Months  int
	Variant domain.ModelVariant
	Seed    int64
}

// WhatIfResult holds both timelines, their summaries, and the derived
// insights.
type WhatIfResult struct {
	StatusQuo        []domain.TimelinePoint   `json:"statusQuo"`
	WhatIf           []domain.TimelinePoint   `json:"whatIf"`
	StatusQuoSummary domain.ProjectionSummary `json:"statusQuoSummary"`
	WhatIfSummary    domain.ProjectionSummary `json:"whatIfSummary"`
	ModifiedProfile  domain.FinancialProfile  `json:"modifiedProfile"`
	Insights         []domain.Insight         `json:"insights"`
}

// Run applies the scenario deltas, projects both profiles with a shared seed,
// and compares the timelines.
func (we *WhatIfEngine) Run(req WhatIfRequest) (*WhatIfResult, error) {
	modified, err := transform.ApplyDeltas(req.Profile, req.Deltas)
	if err != nil {
		return nil, fmt.Errorf("failed to apply scenario: %w", err)
	}

	statusQuo, err := we.Calc.Project(req.Profile, req.Months, req.Variant, req.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to project status quo: %w", err)
	}

	whatIf, err := we.Calc.Project(modified, req.Months, req.Variant, req.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to project what-if: %w", err)
	}

	return &WhatIfResult{
		StatusQuo:        statusQuo,
		WhatIf:           whatIf,
		StatusQuoSummary: calculation.Summarize(req.Profile, req.Variant, statusQuo),
		WhatIfSummary:    calculation.Summarize(modified, req.Variant, whatIf),
		ModifiedProfile:  modified,
		Insights:         Compare(statusQuo, whatIf),
	}, nil
}
