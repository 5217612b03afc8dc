package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/report"
)

func newCoefficientsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "coefficients",
		Short: "Print the per-activity data and CO2 coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := renderOptions(output)
			if err != nil {
				return err
			}
			return report.RenderCoefficients(cmd.OutOrStdout(), footprint.DefaultCoefficients(), opts.Format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or ndjson (default from config)")

	return cmd
}
