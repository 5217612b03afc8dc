package cli

import (
	"context"
	"errors"
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/profile"
	"github.com/rshade/footprint/internal/report"
	"github.com/rshade/footprint/internal/tui"
)

// TierExitCode is the process exit code when --fail-on-tier trips.
const TierExitCode = 2

// TierExitError signals that the estimated tier reached the --fail-on-tier
// threshold. The report has already been written when it is returned.
type TierExitError struct {
	ExitCode  int
	Tier      footprint.Tier
	Threshold footprint.Tier
}

// Error implements the error interface.
func (e *TierExitError) Error() string {
	return fmt.Sprintf("consumption tier %s is at or above %s", e.Tier, e.Threshold)
}

var errInteractiveNoTerminal = errors.New("--interactive requires a terminal on stdin and stdout")

type estimateParams struct {
	profilePath string
	set         []string
	noDefaults  bool
	scale       float64
	output      string
	details     bool
	interactive bool
	failOnTier  string
}

func newEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the footprint of a usage profile",
		Long: `Estimates daily, monthly and yearly data volume and CO2 for a usage profile,
classifies the yearly volume into a consumption tier, and prints advice for
activities above their recommended limits.

Without --profile the configured profile.default_path is used, else the
built-in default profile.`,
		Example: `  # Built-in default profile
  footprint estimate

  # Profile file with overrides
  footprint estimate --profile me.yaml --set netflix_quality=4k --set tiktok_minutes=90

  # Only the keys you set, everything else zero
  footprint estimate --no-defaults --set youtube_hours=2

  # A household of three, as JSON with the per-activity breakdown
  footprint estimate --profile me.yaml --scale 3 --output json --details`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVarP(&params.profilePath, "profile", "p", "", "usage profile file (.yaml, .yml, .json, or - for stdin)")
	cmd.Flags().StringArrayVar(&params.set, "set", nil, "override a usage field as key=value (repeatable)")
	cmd.Flags().BoolVar(&params.noDefaults, "no-defaults", false, "treat fields missing from the profile as zero")
	cmd.Flags().Float64Var(&params.scale, "scale", 1, "multiply every quantity by this factor")
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().BoolVar(&params.details, "details", false, "include the per-activity breakdown and tips")
	cmd.Flags().BoolVarP(&params.interactive, "interactive", "i", false, "adjust the profile in an interactive terminal UI")
	cmd.Flags().StringVar(&params.failOnTier, "fail-on-tier", "",
		"exit with code 2 when the tier is at or above this one (low, moderate, heavy, very-heavy)")

	return cmd
}

func runEstimate(cmd *cobra.Command, params estimateParams) error {
	ctx := cmd.Context()

	opts, err := renderOptions(params.output)
	if err != nil {
		return err
	}

	var threshold footprint.Tier
	if params.failOnTier != "" {
		if threshold, err = footprint.ParseTier(params.failOnTier); err != nil {
			return fmt.Errorf("invalid --fail-on-tier: %w", err)
		}
	}

	if math.IsNaN(params.scale) || math.IsInf(params.scale, 0) || params.scale < 0 {
		return fmt.Errorf("--scale must be a non-negative number, got %v", params.scale)
	}

	if params.interactive && !interactiveAvailable() {
		return errInteractiveNoTerminal
	}

	path := params.profilePath
	if path == "" {
		path = defaultProfilePath()
	}
	p, err := loadProfile(cmd, path, profileOptions(params.noDefaults))
	if err != nil {
		return err
	}

	overrides, err := profile.ParseOverrides(params.set)
	if err != nil {
		return err
	}
	if p.Usage, err = profile.Apply(ctx, p.Usage, overrides); err != nil {
		return err
	}
	if params.scale != 1 {
		p.Usage = p.Usage.Scale(params.scale)
		if !p.Usage.Finite() {
			return fmt.Errorf("--scale %v overflows the profile quantities", params.scale)
		}
	}

	est := footprint.NewDefaultEstimator()
	if params.interactive {
		if p.Usage, err = runInteractive(ctx, cmd, est, p); err != nil {
			return err
		}
	}

	r := report.Build(est, report.Input{Name: p.Name, Source: p.Source, Usage: p.Usage}, params.details)

	logger.Info().Ctx(ctx).
		Str("profile", r.Name).
		Float64("daily_mb", r.Result.DailyMB).
		Float64("yearly_co2_kg", r.Result.YearlyCO2Kg).
		Str("tier", r.Tier.String()).
		Int("overrides", len(overrides)).
		Msg("estimate computed")

	if err = report.Render(cmd.OutOrStdout(), r, opts); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if params.failOnTier != "" && r.Tier >= threshold {
		return &TierExitError{ExitCode: TierExitCode, Tier: r.Tier, Threshold: threshold}
	}
	return nil
}

// runInteractive hands the profile to the estimate TUI and returns the
// profile as the user left it.
func runInteractive(
	ctx context.Context,
	cmd *cobra.Command,
	est *footprint.Estimator,
	p profile.Profile,
) (footprint.UsageProfile, error) {
	model := tui.NewEstimateModel(ctx, est, p.Name, p.Usage)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return p.Usage, fmt.Errorf("running interactive estimate: %w", err)
	}
	m, ok := final.(*tui.EstimateModel)
	if !ok {
		return p.Usage, fmt.Errorf("unexpected model type %T", final)
	}

	logger.Debug().Ctx(ctx).
		Int("edited_fields", len(m.GetOverrides())).
		Msg("interactive session finished")
	return m.Usage(), nil
}
