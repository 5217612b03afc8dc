package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/report"
)

type classification struct {
	YearlyGB float64        `json:"yearly_gb"`
	Tier     footprint.Tier `json:"tier"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
}

func newClassifyCmd() *cobra.Command {
	var (
		yearlyGB float64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a yearly data volume into a consumption tier",
		Example: `  footprint classify --yearly-gb 320
  footprint classify --yearly-gb 45 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if math.IsNaN(yearlyGB) || math.IsInf(yearlyGB, 0) || yearlyGB < 0 {
				return fmt.Errorf("--yearly-gb must be a non-negative number, got %v", yearlyGB)
			}
			opts, err := renderOptions(output)
			if err != nil {
				return err
			}

			tier := footprint.ClassifyYearlyGB(yearlyGB)
			c := classification{YearlyGB: yearlyGB, Tier: tier, Title: tier.Title(), Message: tier.Message()}
			if opts.Format != report.FormatTable {
				return report.RenderValue(cmd.OutOrStdout(), c, opts.Format)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", c.Title, c.Message, c.Tier)
			return err
		},
	}

	cmd.Flags().Float64Var(&yearlyGB, "yearly-gb", 0, "yearly data volume in gigabytes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	_ = cmd.MarkFlagRequired("yearly-gb")

	return cmd
}
