package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/profile"
	"github.com/rshade/footprint/internal/report"
)

type compareParams struct {
	noDefaults bool
	output     string
	details    bool
}

func newCompareCmd() *cobra.Command {
	var params compareParams

	cmd := &cobra.Command{
		Use:   "compare FILE...",
		Short: "Estimate several profiles side by side",
		Long: `Loads every profile file, estimates each one, and prints them in argument
order. The table view shows one row per profile; JSON and NDJSON carry the
full report for each.`,
		Example: `  # Compare two people
  footprint compare alice.yaml bob.json

  # Machine-readable, one report per line
  footprint compare team/*.yaml --output ndjson`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, params)
		},
	}

	cmd.Flags().BoolVar(&params.noDefaults, "no-defaults", false, "treat fields missing from a profile as zero")
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().BoolVar(&params.details, "details", false, "include the per-activity breakdown in JSON output")

	return cmd
}

func runCompare(cmd *cobra.Command, paths []string, params compareParams) error {
	ctx := cmd.Context()

	opts, err := renderOptions(params.output)
	if err != nil {
		return err
	}
	popts := profileOptions(params.noDefaults)

	// Results are written by index so output follows argument order.
	profiles := make([]profile.Profile, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			p, loadErr := profile.LoadFile(gCtx, path, popts)
			if loadErr != nil {
				return loadErr
			}
			profiles[i] = p
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	est := footprint.NewDefaultEstimator()
	cmp := report.Comparison{Profiles: make([]report.Report, 0, len(profiles))}
	for _, p := range profiles {
		cmp.Profiles = append(cmp.Profiles,
			report.Build(est, report.Input{Name: p.Name, Source: p.Source, Usage: p.Usage}, params.details))
	}

	logger.Info().Ctx(ctx).Int("profiles", len(cmp.Profiles)).Msg("comparison computed")

	if err = report.RenderComparison(cmd.OutOrStdout(), cmp, opts); err != nil {
		return fmt.Errorf("rendering comparison: %w", err)
	}
	return nil
}
