package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/footprint"
)

// Palette.
const (
	ColorHeader    = lipgloss.Color("39")  // blue
	ColorBorder    = lipgloss.Color("240") // grey
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("242")
	ColorHighlight = lipgloss.Color("212") // pink
	ColorOK        = lipgloss.Color("42")  // green
	ColorWarning   = lipgloss.Color("214") // orange
	ColorCritical  = lipgloss.Color("196") // red
	ColorInfo      = lipgloss.Color("33")
)

// Direction icons for deltas.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	LabelStyle         = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle         = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle        = lipgloss.NewStyle().Foreground(ColorMuted)
	OKStyle            = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle       = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle      = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	InfoStyle          = lipgloss.NewStyle().Foreground(ColorInfo)
	ModifiedStyle      = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)
)

// HeaderStyle frames the screen title.
//
//nolint:gochecknoglobals // Shared lipgloss style.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorHeader).
	Border(lipgloss.NormalBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// BoxStyle frames a results panel.
//
//nolint:gochecknoglobals // Shared lipgloss style.
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// TierStyle returns the banner style for a consumption tier.
func TierStyle(t footprint.Tier) lipgloss.Style {
	switch t {
	case footprint.TierLow:
		return OKStyle
	case footprint.TierModerate:
		return InfoStyle.Bold(true)
	case footprint.TierHeavy:
		return WarningStyle
	default:
		return CriticalStyle
	}
}
