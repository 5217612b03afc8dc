package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/rshade/footprint/internal/footprint"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// percentScale converts a fraction to a percentage.
const percentScale = 100

// Render writes r in opts.Format.
func Render(w io.Writer, r Report, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return renderJSON(w, r)
	case FormatNDJSON:
		return renderNDJSON(w, r)
	case FormatTable, "":
		return renderTable(w, r, opts.precision())
	default:
		return fmt.Errorf("%w: output format %q", footprint.ErrInvalidEnumeration, opts.Format)
	}
}

// RenderValue writes any JSON-encodable value as indented JSON or a single
// NDJSON line. Table output is the caller's job.
func RenderValue(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, v)
	case FormatNDJSON:
		return renderNDJSON(w, v)
	default:
		return fmt.Errorf("%w: output format %q has no generic encoding", footprint.ErrInvalidEnumeration, format)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func renderNDJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("writing NDJSON line: %w", err)
	}
	return nil
}

// errWriter remembers the first write error so table output can be
// written without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	ew.printf("%s\n", s)
}

func heading(title string) string {
	return title + "\n" + strings.Repeat("=", len(title))
}

func renderTable(w io.Writer, r Report, precision int) error {
	ew := &errWriter{w: w}
	res := r.Result
	gb := func(v float64) string { return footprint.FormatFloat(v, precision) + " GB" }
	kg := func(v float64) string { return footprint.FormatFloat(v, precision) + " kg" }

	title := "Digital Footprint"
	if r.Name != "" {
		title += ": " + r.Name
	}
	ew.println(heading(title))
	ew.println("")

	ew.println("Data volume")
	ew.printf("  Daily:    %s\n", footprint.FormatData(res.DailyMB))
	ew.printf("  Monthly:  %s\n", gb(res.MonthlyGB))
	ew.printf("  Yearly:   %s\n", gb(res.YearlyGB))
	ew.println("")

	ew.println("CO2 emissions")
	ew.printf("  Monthly:  %s\n", kg(res.MonthlyCO2Kg))
	ew.printf("  Yearly:   %s\n", kg(res.YearlyCO2Kg))
	ew.println("")

	eq := res.Equivalences
	ew.println("Equivalent to")
	ew.printf("  Car travel:      %s km/month, %s km/year\n",
		footprint.FormatNumber(eq.CarKmMonthly), footprint.FormatNumber(eq.CarKmYearly))
	ew.printf("  Trees needed:    %s/month, %s/year\n",
		footprint.FormatNumber(eq.TreesMonthly), footprint.FormatNumber(eq.TreesYearly))
	ew.printf("  LED bulb:        %s hours\n", footprint.FormatNumber(eq.LightBulbHours))
	ew.printf("  Phone charges:   %s\n", footprint.FormatNumber(eq.PhonesCharged))
	ew.println("")

	ew.printf("Profile: %s (%s)\n", r.TierTitle, r.Tier)
	ew.printf("  %s\n", r.TierMessage)

	if len(r.Advisories) > 0 {
		ew.println("")
		ew.println("Advice:")
		for _, a := range r.Advisories {
			ew.printf("  - %s: %s\n", a.Title, a.Message)
		}
	}

	if ew.err != nil {
		return fmt.Errorf("writing report: %w", ew.err)
	}

	if len(r.Breakdown) > 0 {
		ew.println("")
		if err := renderBreakdown(w, r.Breakdown, precision); err != nil {
			return err
		}
	}

	if len(r.Tips) > 0 {
		ew.println("")
		ew.println("Tips:")
		for _, tip := range r.Tips {
			ew.printf("  - %s\n", tip)
		}
	}

	if len(r.Facts) > 0 {
		ew.println("")
		ew.println("Did you know?")
		for _, f := range r.Facts {
			ew.printf("  %-4s %s\n", f.Figure, f.Text)
		}
	}

	if ew.err != nil {
		return fmt.Errorf("writing report: %w", ew.err)
	}
	return nil
}

// renderBreakdown writes the per-activity table with each activity's share
// of the daily total.
func renderBreakdown(w io.Writer, b footprint.Breakdown, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	total := b.TotalMB()

	if _, err := fmt.Fprintf(tw, "ACTIVITY\tDAILY\tSHARE\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----\t-----\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, item := range b {
		share := 0.0
		if total > 0 {
			share = item.DailyMB / total * percentScale
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s%%\n",
			item.Label, footprint.FormatData(item.DailyMB), footprint.FormatFloat(share, precision),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%s\t\n", footprint.FormatData(total)); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	return tw.Flush()
}
