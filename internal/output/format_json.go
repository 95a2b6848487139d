package output

import (
	"encoding/json"
	"fmt"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

// timelineReport pairs a summary with its timeline for JSON export.
type timelineReport struct {
	Summary  domain.ProjectionSummary `json:"summary"`
	Timeline []domain.TimelinePoint   `json:"timeline"`
}

// TimelineJSON renders a timeline and its summary as indented JSON.
func TimelineJSON(summary domain.ProjectionSummary, points []domain.TimelinePoint) (string, error) {
	data, err := json.MarshalIndent(timelineReport{Summary: summary, Timeline: points}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal timeline: %w", err)
	}
	return string(data), nil
}

// JSON renders any result value as indented JSON.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data), nil
}
