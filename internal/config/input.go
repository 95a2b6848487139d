// Package config parses and validates projection input files. Validation here
// is the public boundary: unknown variants and invalid profiles are rejected
// with descriptive errors, and out-of-range horizons are clamped to the
// supported window rather than erroring.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mfriedenberg/wealthsim/internal/domain"
)

// Horizon clamp bounds applied at the boundary. Internal callers may run far
// longer horizons; the engine itself accepts any positive month count.
const (
	MinMonths = 1
	MaxMonths = 120

	DefaultMonths = 60
)

// Input is the top-level structure of a projection input file.
type Input struct {
	Profile    domain.FinancialProfile `yaml:"profile"`
	Scenarios  []ScenarioSpec          `yaml:"scenarios"`
	Projection ProjectionSpec          `yaml:"projection"`
}

// ScenarioSpec is a named list of what-if deltas.
type ScenarioSpec struct {
	Name   string                 `yaml:"name"`
	Deltas []domain.ScenarioDelta `yaml:"deltas"`
}

// ProjectionSpec carries the run parameters.
type ProjectionSpec struct {
	Months int    `yaml:"months"`
	Model  string `yaml:"model"`
	Seed   int64  `yaml:"seed"`
}

// InputParser handles parsing of projection input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates an input file.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// Validate checks the boundary contract: valid profile, known model, and
// well-formed scenario deltas. Months are defaulted and clamped, not
// rejected.
func (ip *InputParser) Validate(input *Input) error {
	if err := input.Profile.Validate(); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if input.Projection.Model != "" {
		if _, err := domain.ParseModelVariant(input.Projection.Model); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(input.Scenarios))
	for i, scenario := range input.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
		for j, delta := range scenario.Deltas {
			if err := delta.Validate(); err != nil {
				return fmt.Errorf("scenario %q delta %d: %w", scenario.Name, j, err)
			}
		}
	}

	return nil
}

// Scenario returns the named scenario spec.
func (in *Input) Scenario(name string) (*ScenarioSpec, error) {
	for i := range in.Scenarios {
		if in.Scenarios[i].Name == name {
			return &in.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in input", name)
}

// Variant resolves the configured model, falling back to the canonical
// default when none is set.
func (in *Input) Variant() domain.ModelVariant {
	if in.Projection.Model == "" {
		return domain.ModelRealistic
	}
	mv, err := domain.ParseModelVariant(in.Projection.Model)
	if err != nil {
		return domain.ModelRealistic
	}
	return mv
}

// ClampMonths applies the boundary policy: zero falls back to the default
// horizon, everything else is clamped into [MinMonths, MaxMonths].
func ClampMonths(months int) int {
	if months == 0 {
		return DefaultMonths
	}
	if months < MinMonths {
		return MinMonths
	}
	if months > MaxMonths {
		return MaxMonths
	}
	return months
}
