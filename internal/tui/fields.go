package tui

import (
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/profile"
)

// FieldKind says how a row is edited.
type FieldKind int

const (
	// FieldQuantity is a free-form number. Invalid input becomes 0.
	FieldQuantity FieldKind = iota
	// FieldQuality is a streaming quality; left/right cycles through values.
	FieldQuality
	// FieldConnection is the connection type; left/right cycles through values.
	FieldConnection
	// FieldDevices is a comma-separated device list.
	FieldDevices
)

type fieldSpec struct {
	key   string
	label string
	kind  FieldKind
}

//nolint:gochecknoglobals // Static row layout.
var fieldSpecs = []fieldSpec{
	{"google_searches", "Google searches/day", FieldQuantity},
	{"website_pages", "Web pages/day", FieldQuantity},
	{"emails_sent", "Emails sent/day", FieldQuantity},
	{"emails_received", "Emails received/day", FieldQuantity},
	{"youtube_hours", "YouTube hours/day", FieldQuantity},
	{profile.KeyYouTubeQuality, "YouTube quality", FieldQuality},
	{"netflix_hours", "Netflix hours/day", FieldQuantity},
	{profile.KeyNetflixQuality, "Netflix quality", FieldQuality},
	{"music_streaming_hours", "Music hours/day", FieldQuantity},
	{"facebook_minutes", "Facebook min/day", FieldQuantity},
	{"instagram_minutes", "Instagram min/day", FieldQuantity},
	{"tiktok_minutes", "TikTok min/day", FieldQuantity},
	{"twitter_minutes", "Twitter min/day", FieldQuantity},
	{"linkedin_minutes", "LinkedIn min/day", FieldQuantity},
	{"mobile_gaming_minutes", "Mobile gaming min/day", FieldQuantity},
	{"online_gaming_minutes", "Online gaming min/day", FieldQuantity},
	{"video_call_minutes", "Video calls min/day", FieldQuantity},
	{"cloud_storage_gb", "Cloud storage GB/month", FieldQuantity},
	{"download_games", "Game downloads/month", FieldQuantity},
	{"software_updates", "Updates/month", FieldQuantity},
	{"photo_uploads", "Photo uploads/day", FieldQuantity},
	{"video_uploads", "Video uploads/day", FieldQuantity},
	{profile.KeyDevices, "Devices", FieldDevices},
	{profile.KeyConnection, "Connection", FieldConnection},
}

// FieldRow is one editable usage field.
type FieldRow struct {
	Key           string
	Label         string
	Kind          FieldKind
	OriginalValue string
	CurrentValue  string
}

// Changed reports whether the row differs from where the session started.
func (r FieldRow) Changed() bool {
	return r.CurrentValue != r.OriginalValue
}

func buildRows(initial footprint.UsageProfile) []FieldRow {
	rows := make([]FieldRow, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		v := fieldValue(initial, spec)
		rows[i] = FieldRow{
			Key:           spec.key,
			Label:         spec.label,
			Kind:          spec.kind,
			OriginalValue: v,
			CurrentValue:  v,
		}
	}
	return rows
}

// fieldValue renders the current value of spec's field as editable text.
func fieldValue(u footprint.UsageProfile, spec fieldSpec) string {
	switch spec.kind {
	case FieldQuality:
		if spec.key == profile.KeyYouTubeQuality {
			return string(u.YouTubeQuality)
		}
		return string(u.NetflixQuality)
	case FieldConnection:
		return string(u.Connection)
	case FieldDevices:
		names := make([]string, len(u.Devices))
		for i, d := range u.Devices {
			names[i] = string(d)
		}
		return strings.Join(names, ",")
	default:
		v, _ := profile.Quantity(u, spec.key)
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// cycle returns the value dir steps from current in values, wrapping.
// An unknown current value starts from the first entry.
func cycle(values []string, current string, dir int) string {
	n := len(values)
	if n == 0 {
		return current
	}
	idx := -1
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return values[0]
	}
	return values[((idx+dir)%n+n)%n]
}

func enumValues(kind FieldKind) []string {
	switch kind {
	case FieldQuality:
		qs := footprint.Qualities()
		out := make([]string, len(qs))
		for i, q := range qs {
			out[i] = string(q)
		}
		return out
	case FieldConnection:
		cs := footprint.ConnectionTypes()
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = string(c)
		}
		return out
	default:
		return nil
	}
}
