package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/footprint"
)

// Column width constants for table formatting.
const (
	fieldLabelWidth    = 24
	fieldValueWidth    = 20
	breakdownNameWidth = 18
	breakdownDataWidth = 10
	breakdownPctWidth  = 8
	summaryLabelWidth  = 9
	summaryColumnGap   = "   "
	factFigureWidth    = 5
	minBodyHeight      = 3
	minTruncateLen     = 3
	percentScale       = 100
	editCursor         = "▌"
)

// RenderDelta renders a signed CO2 change with a directional arrow.
// Increases use the warning colour and decreases the OK colour.
func RenderDelta(deltaKg float64) string {
	rounded := math.Round(deltaKg*percentScale) / percentScale

	var icon, sign string
	var color lipgloss.Color

	switch {
	case rounded > 0:
		icon = IconArrowUp
		sign = "+"
		color = ColorWarning
	case rounded < 0:
		icon = IconArrowDown
		sign = "-"
		color = ColorOK
	default:
		icon = IconArrowRight
		color = ColorMuted
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s%s %s", sign, footprint.FormatKg(math.Abs(rounded)), icon))
}

// RenderEstimateHeader renders the screen title and profile name.
func RenderEstimateHeader(name string) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Digital Footprint Simulator"))
	if name != "" {
		sb.WriteString("\n\n")
		sb.WriteString(LabelStyle.Render("Profile: "))
		sb.WriteString(ValueStyle.Render(name))
	}
	return sb.String()
}

// RenderResultSummary renders volume, emissions and equivalences side by
// side, with the yearly CO2 change relative to baseline.
func RenderResultSummary(result, baseline footprint.ResultProfile) string {
	data := summaryColumn("Data", [][2]string{
		{"Daily", footprint.FormatData(result.DailyMB)},
		{"Monthly", footprint.FormatFloat(result.MonthlyGB, 2) + " GB"},
		{"Yearly", footprint.FormatFloat(result.YearlyGB, 2) + " GB"},
	})
	co2 := summaryColumn("CO2", [][2]string{
		{"Monthly", footprint.FormatKg(result.MonthlyCO2Kg)},
		{"Yearly", footprint.FormatKg(result.YearlyCO2Kg)},
		{"Change", RenderDelta(result.YearlyCO2Kg - baseline.YearlyCO2Kg)},
	})
	eq := result.Equivalences
	equivalent := summaryColumn("Equivalent to", [][2]string{
		{"Car", footprint.FormatNumber(eq.CarKmYearly) + " km/year"},
		{"Trees", footprint.FormatNumber(eq.TreesYearly) + " per year"},
		{"LED bulb", footprint.FormatNumber(eq.LightBulbHours) + " hours"},
		{"Phones", footprint.FormatNumber(eq.PhonesCharged) + " charges"},
	})

	return BoxStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		data, summaryColumnGap, co2, summaryColumnGap, equivalent))
}

func summaryColumn(title string, lines [][2]string) string {
	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render(title))
	for _, l := range lines {
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", summaryLabelWidth, l[0])))
		sb.WriteString(ValueStyle.Render(l[1]))
	}
	return sb.String()
}

// RenderTierBanner renders the tier title and message.
func RenderTierBanner(tier footprint.Tier) string {
	style := TierStyle(tier)
	return style.Render(tier.Title()) + "  " + SubtleStyle.Render(tier.Message())
}

// RenderAdvisories renders one line per advisory, or nothing.
func RenderAdvisories(advisories []footprint.Advisory) string {
	if len(advisories) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, a := range advisories {
		sb.WriteString(WarningStyle.Render("! " + a.Title + ": "))
		sb.WriteString(a.Message)
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderFieldTable renders the editable rows. When editing, inputView
// replaces the focused row's current value.
func RenderFieldTable(rows []FieldRow, focusedRow int, editing bool, inputView string) string {
	var sb strings.Builder

	sb.WriteString("  ")
	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-*s%-*s%-*s",
		fieldLabelWidth, "Field", fieldValueWidth, "Start", fieldValueWidth, "Current")))
	sb.WriteString("\n")

	for i, row := range rows {
		focused := i == focusedRow
		if focused && editing {
			sb.WriteString(renderFieldRow(row, true, inputView+editCursor))
		} else {
			sb.WriteString(renderFieldRow(row, focused, ""))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func renderFieldRow(row FieldRow, focused bool, editValue string) string {
	var sb strings.Builder

	switch {
	case focused && editValue != "":
		sb.WriteString("> ")
	case focused:
		sb.WriteString("→ ")
	default:
		sb.WriteString("  ")
	}

	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, truncate(row.Label, fieldLabelWidth))))
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("%-*s", fieldValueWidth, truncate(row.OriginalValue, fieldValueWidth))))

	if editValue != "" {
		sb.WriteString(TableSelectedStyle.Render(editValue))
		return sb.String()
	}

	current := fmt.Sprintf("%-*s", fieldValueWidth, truncate(row.CurrentValue, fieldValueWidth))
	if row.Changed() {
		sb.WriteString(ModifiedStyle.Render(current))
	} else {
		sb.WriteString(ValueStyle.Render(current))
	}
	switch row.Kind {
	case FieldQuality, FieldConnection:
		sb.WriteString(SubtleStyle.Render(" ←/→"))
	case FieldDevices:
		sb.WriteString(SubtleStyle.Render(fmt.Sprintf(" 1-%d", len(footprint.DeviceKinds()))))
	case FieldQuantity:
	}
	return sb.String()
}

// truncate truncates a string to the specified length with ellipsis.
// Uses rune-aware counting to properly handle multi-byte UTF-8 characters.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}

// RenderBreakdownTable renders per-activity daily volume and share.
func RenderBreakdownTable(b footprint.Breakdown) string {
	total := b.TotalMB()
	rows := make([]table.Row, 0, len(b))
	for _, item := range b {
		share := 0.0
		if total > 0 {
			share = item.DailyMB / total * percentScale
		}
		rows = append(rows, table.Row{
			item.Label,
			footprint.FormatData(item.DailyMB),
			footprint.FormatFloat(share, 1) + "%",
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Activity", Width: breakdownNameWidth},
			{Title: "Daily", Width: breakdownDataWidth},
			{Title: "Share", Width: breakdownPctWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		// Header plus its border take two lines.
		table.WithHeight(len(rows)+2),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Foreground(ColorHeader).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return t.View()
}

// RenderFacts renders the "did you know" figures.
func RenderFacts(facts []footprint.Fact) string {
	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render("Did you know?"))
	for _, f := range facts {
		sb.WriteString("\n  ")
		sb.WriteString(ValueStyle.Render(fmt.Sprintf("%-*s", factFigureWidth, f.Figure)))
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// RenderEstimateHelp renders the keyboard shortcut help text. On the
// devices row it adds the digit for each device kind.
func RenderEstimateHelp(editing, onDevices bool) string {
	if editing {
		return SubtleStyle.Render("Enter: Apply | Esc: Cancel")
	}
	lines := []string{
		"↑/↓: Navigate | Enter: Edit | ←/→: Cycle choice | PgUp/PgDn: Scroll",
		"d: Details | r: Reset | q: Quit",
	}
	if onDevices {
		kinds := footprint.DeviceKinds()
		keys := make([]string, len(kinds))
		for i, d := range kinds {
			keys[i] = fmt.Sprintf("%d:%s", i+1, d)
		}
		lines = append(lines, "Toggle device "+strings.Join(keys, " "))
	}
	return SubtleStyle.Render(strings.Join(lines, "\n"))
}

// renderTop renders the pinned area above the field table.
func (m *EstimateModel) renderTop() string {
	parts := []string{
		RenderEstimateHeader(m.name),
		"",
		RenderResultSummary(m.result, m.baseline),
		"",
		RenderTierBanner(footprint.Classify(m.result)),
	}
	if adv := RenderAdvisories(footprint.Advise(m.usage)); adv != "" {
		parts = append(parts, adv)
	}
	return strings.Join(parts, "\n")
}

// renderFooter renders the pinned area below the field table. It starts
// with a blank separator line.
func (m *EstimateModel) renderFooter() string {
	parts := []string{""}
	if m.err != nil {
		parts = append(parts, CriticalStyle.Render("Error: "+m.err.Error()), "")
	}
	onDevices := m.focusedRow < len(m.rows) && m.rows[m.focusedRow].Kind == FieldDevices
	parts = append(parts, RenderEstimateHelp(m.editMode, onDevices))
	return strings.Join(parts, "\n")
}

// renderBody renders the scrollable field table and, when toggled, the
// breakdown and facts.
func (m *EstimateModel) renderBody() string {
	var sb strings.Builder
	sb.WriteString(RenderFieldTable(m.rows, m.focusedRow, m.editMode, m.input.Value()))
	if m.showDetails {
		sb.WriteString("\n\n")
		sb.WriteString(RenderBreakdownTable(m.est.Breakdown(m.usage)))
		sb.WriteString("\n\n")
		sb.WriteString(RenderFacts(footprint.Facts()))
	}
	return sb.String()
}

// bodyHeight is the number of lines left for the body once top, footer and
// the separator line below top are placed.
func (m *EstimateModel) bodyHeight(top, footer string) int {
	return max(m.height-lipgloss.Height(top)-1-lipgloss.Height(footer), minBodyHeight)
}

// renderEditingView renders the main editing interface. The body scrolls
// so the whole view fits m.height lines whenever the window leaves at
// least minBodyHeight lines for it.
func (m *EstimateModel) renderEditingView() string {
	top, footer := m.renderTop(), m.renderFooter()

	body := viewport.New(m.width, m.bodyHeight(top, footer))
	body.SetContent(m.renderBody())
	body.SetYOffset(m.scroll)

	view := top + "\n\n" + body.View() + "\n" + footer
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}
	return view
}
