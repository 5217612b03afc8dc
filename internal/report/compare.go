package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/footprint/internal/footprint"
)

// Comparison is several reports side by side, in input order.
type Comparison struct {
	Profiles []Report `json:"profiles"`
}

// RenderComparison writes c in opts.Format. NDJSON emits one report per line.
func RenderComparison(w io.Writer, c Comparison, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return renderJSON(w, c)
	case FormatNDJSON:
		for _, r := range c.Profiles {
			if err := renderNDJSON(w, r); err != nil {
				return err
			}
		}
		return nil
	case FormatTable, "":
		return renderComparisonTable(w, c, opts.precision())
	default:
		return fmt.Errorf("%w: output format %q", footprint.ErrInvalidEnumeration, opts.Format)
	}
}

func renderComparisonTable(w io.Writer, c Comparison, precision int) error {
	if len(c.Profiles) == 0 {
		_, err := fmt.Fprintln(w, "No profiles to compare")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "PROFILE\tDAILY\tMONTHLY(GB)\tYEARLY(GB)\tYEARLY(CO2 kg)\tCAR(km/yr)\tTIER\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----\t-----------\t----------\t--------------\t----------\t----\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, r := range c.Profiles {
		res := r.Result
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			footprint.FormatData(res.DailyMB),
			footprint.FormatFloat(res.MonthlyGB, precision),
			footprint.FormatFloat(res.YearlyGB, precision),
			footprint.FormatFloat(res.YearlyCO2Kg, precision),
			footprint.FormatNumber(res.Equivalences.CarKmYearly),
			r.Tier,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}
