package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rshade/footprint/internal/footprint"
)

type coefficientRow struct {
	name  string
	value float64
	unit  string
}

func coefficientRows(c footprint.CoefficientTable) []coefficientRow {
	return []coefficientRow{
		{"Google search", c.GoogleSearch, "MB/search"},
		{"Web page", c.WebsitePage, "MB/page"},
		{"Email", c.EmailUnit, "MB/email"},
		{"YouTube SD", c.YouTubeMinute.SD, "MB/min"},
		{"YouTube HD", c.YouTubeMinute.HD, "MB/min"},
		{"YouTube 4K", c.YouTubeMinute.UHD, "MB/min"},
		{"Netflix SD", c.NetflixMinute.SD, "MB/min"},
		{"Netflix HD", c.NetflixMinute.HD, "MB/min"},
		{"Netflix 4K", c.NetflixMinute.UHD, "MB/min"},
		{"Music streaming", c.MusicMinute, "MB/min"},
		{"Facebook", c.FacebookMinute, "MB/min"},
		{"Instagram", c.InstagramMinute, "MB/min"},
		{"TikTok", c.TikTokMinute, "MB/min"},
		{"Twitter/X", c.TwitterMinute, "MB/min"},
		{"LinkedIn", c.LinkedInMinute, "MB/min"},
		{"Mobile gaming", c.MobileGamingMinute, "MB/min"},
		{"Online gaming", c.OnlineGamingMinute, "MB/min"},
		{"Video calls", c.VideoCallMinute, "MB/min"},
		{"Cloud storage", c.CloudStorageGB, "MB/GB"},
		{"Game download", c.DownloadGameGB, "MB/game"},
		{"Software update", c.SoftwareUpdateGB, "MB/update"},
		{"Photo upload", c.PhotoMB, "MB/photo"},
		{"Video upload", c.VideoMB, "MB/video"},
		{"Emission factor", c.EmissionKgPerMB, "kg CO2/MB"},
		{"Car", c.CarKgPerKm, "kg CO2/km"},
		{"Tree absorption", c.TreeKgPerYear, "kg CO2/year"},
		{"LED bulb", c.LEDBulbKgPerHour, "kg CO2/hour"},
		{"Phone charge", c.PhoneChargeKg, "kg CO2/charge"},
	}
}

// RenderCoefficients writes the coefficient table. NDJSON is treated as
// compact JSON.
func RenderCoefficients(w io.Writer, c footprint.CoefficientTable, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, c)
	case FormatNDJSON:
		return renderNDJSON(w, c)
	case FormatTable, "":
	default:
		return fmt.Errorf("%w: output format %q", footprint.ErrInvalidEnumeration, format)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "ACTIVITY\tVALUE\tUNIT\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range coefficientRows(c) {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			row.name, strconv.FormatFloat(row.value, 'g', -1, 64), row.unit); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}
