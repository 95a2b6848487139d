package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mfriedenberg/wealthsim/internal/calculation"
	"github.com/mfriedenberg/wealthsim/internal/compare"
	"github.com/mfriedenberg/wealthsim/internal/config"
	"github.com/mfriedenberg/wealthsim/internal/domain"
	"github.com/mfriedenberg/wealthsim/internal/output"
)

var version = "dev"

// logrusLogger adapts logrus to the engine's Logger interface.
type logrusLogger struct {
	log *logrus.Logger
}

func (l logrusLogger) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l logrusLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l logrusLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }

func newLogger(verbose bool) logrusLogger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return logrusLogger{log: log}
}

var rootCmd = &cobra.Command{
	Use:   "wealthsim",
	Short: "Household net worth projection simulator",
	Long:  "Forecasts a household's net worth, savings, and debt under configurable economic models, with what-if scenario comparison",
}

var (
	flagMonths  int
	flagModel   string
	flagSeed    int64
	flagFormat  string
	flagCard    bool
	flagVerbose bool
)

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Project a financial profile over the configured horizon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, months, variant, seed, err := loadRun(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewProjectionEngine()
		engine.Logger = newLogger(flagVerbose)

		points, err := engine.Project(input.Profile, months, variant, seed)
		if err != nil {
			return err
		}
		summary := calculation.Summarize(input.Profile, variant, points)

		switch flagFormat {
		case "csv":
			fmt.Print(output.TimelineCSV(points))
		case "json":
			rendered, err := output.TimelineJSON(summary, points)
			if err != nil {
				return err
			}
			fmt.Println(rendered)
		default:
			fmt.Print(output.TimelineTable(summary, points))
		}
		if flagCard {
			fmt.Print(output.SummaryCard(summary))
		}
		return nil
	},
}

var flagScenario string

var whatifCmd = &cobra.Command{
	Use:   "whatif [input-file]",
	Short: "Compare a named what-if scenario against the status quo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, months, variant, seed, err := loadRun(args[0])
		if err != nil {
			return err
		}

		scenario, err := input.Scenario(flagScenario)
		if err != nil {
			return err
		}

		engine := calculation.NewProjectionEngine()
		engine.Logger = newLogger(flagVerbose)

		result, err := compare.NewWhatIfEngine(engine).Run(compare.WhatIfRequest{
			Profile: input.Profile,
			Deltas:  scenario.Deltas,
			Months:  months,
			Variant: variant,
			Seed:    seed,
		})
		if err != nil {
			return err
		}

		switch flagFormat {
		case "csv":
			fmt.Print(output.ComparisonCSV(result))
		case "json":
			rendered, err := output.JSON(result)
			if err != nil {
				return err
			}
			fmt.Println(rendered)
		default:
			fmt.Print(output.ComparisonTable(result))
		}
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [net-worth] [debt]",
	Short: "Classify a net-worth/debt pair into a wealth tier",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		netWorth, err := decimalArg(args[0], "net-worth")
		if err != nil {
			return err
		}
		debt, err := decimalArg(args[1], "debt")
		if err != nil {
			return err
		}
		fmt.Println(domain.ClassifyWealth(netWorth, debt))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wealthsim %s\n", version)
	},
}

func decimalArg(s, name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return d, nil
}

// loadRun parses the input file and resolves the effective run parameters:
// CLI flags override the file, months are clamped to the boundary window, and
// an unset seed falls back to the wall clock.
func loadRun(filename string) (*config.Input, int, domain.ModelVariant, int64, error) {
	input, err := config.NewInputParser().LoadFromFile(filename)
	if err != nil {
		return nil, 0, "", 0, err
	}

	months := input.Projection.Months
	if flagMonths != 0 {
		months = flagMonths
	}
	months = config.ClampMonths(months)

	variant := input.Variant()
	if flagModel != "" {
		variant, err = domain.ParseModelVariant(flagModel)
		if err != nil {
			return nil, 0, "", 0, err
		}
	}

	seed := input.Projection.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return input, months, variant, seed, nil
}

func main() {
	for _, cmd := range []*cobra.Command{projectCmd, whatifCmd} {
		cmd.Flags().IntVar(&flagMonths, "months", 0, "projection horizon in months (1-120, overrides input file)")
		cmd.Flags().StringVar(&flagModel, "model", "", "model variant (linear|exponential|seasonal|realistic|conservative|savings|optimistic)")
		cmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed for reproducible runs (overrides input file)")
		cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table|csv|json)")
		cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	}
	projectCmd.Flags().BoolVar(&flagCard, "card", false, "print a styled summary card")
	whatifCmd.Flags().StringVar(&flagScenario, "scenario", "", "scenario name from the input file (required)")
	_ = whatifCmd.MarkFlagRequired("scenario")

	rootCmd.AddCommand(projectCmd, whatifCmd, classifyCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
