package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/profile"
)

// EstimateState represents the current state of the estimate TUI.
type EstimateState int

const (
	// EstimateStateEditing indicates the user is browsing or editing fields.
	EstimateStateEditing EstimateState = iota
	// EstimateStateQuitting indicates the application is exiting.
	EstimateStateQuitting
)

// Default dimensions for estimate model.
const (
	estimateDefaultWidth  = 80
	estimateDefaultHeight = 24
	inputCharLimit        = 64
)

// EstimateModel is the Bubble Tea model for the interactive footprint editor.
//
// Every committed edit recomputes the result synchronously inside Update,
// so the view never shows a result older than the last edit.
type EstimateModel struct {
	ctx context.Context
	est *footprint.Estimator

	name     string
	initial  footprint.UsageProfile
	usage    footprint.UsageProfile
	baseline footprint.ResultProfile
	result   footprint.ResultProfile

	// Editable fields
	rows       []FieldRow
	focusedRow int
	editMode   bool
	input      textinput.Model

	// err is the last rejected edit, shown until the next successful one.
	err error

	showDetails bool
	state       EstimateState

	// scroll is the first body line shown below the pinned summary.
	scroll int

	// Display dimensions
	width  int
	height int
}

// NewEstimateModel creates an EstimateModel starting from usage.
func NewEstimateModel(
	ctx context.Context,
	est *footprint.Estimator,
	name string,
	usage footprint.UsageProfile,
) *EstimateModel {
	if est == nil {
		est = footprint.NewDefaultEstimator()
	}
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = inputCharLimit

	m := &EstimateModel{
		ctx:     ctx,
		est:     est,
		name:    name,
		initial: usage,
		usage:   usage,
		rows:    buildRows(usage),
		input:   input,
		state:   EstimateStateEditing,
		width:   estimateDefaultWidth,
		height:  estimateDefaultHeight,
	}
	m.baseline = est.Estimate(usage)
	m.result = m.baseline
	return m
}

// Init initializes the model.
func (m *EstimateModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *EstimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.followFocus()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.editMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for editor navigation.
func (m *EstimateModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editMode {
		return m.handleEditModeKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = EstimateStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		return m.handleRuneKey(string(msg.Runes))

	case tea.KeyUp:
		m.moveFocus(-1)

	case tea.KeyDown:
		m.moveFocus(1)

	case tea.KeyLeft:
		m.cycleFocused(-1)

	case tea.KeyRight:
		m.cycleFocused(1)

	case tea.KeyPgUp:
		m.scrollBody(-1)

	case tea.KeyPgDown:
		m.scrollBody(1)

	case tea.KeyEnter:
		if m.focusedRow < len(m.rows) {
			m.editMode = true
			m.input.SetValue(m.rows[m.focusedRow].CurrentValue)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}

	case tea.KeyEsc:
		m.err = nil
	}

	return m, nil
}

func (m *EstimateModel) handleRuneKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		m.state = EstimateStateQuitting
		return m, tea.Quit
	case "k":
		m.moveFocus(-1)
	case "j":
		m.moveFocus(1)
	case "d":
		m.toggleDetails()
	case "r":
		m.Reset()
	default:
		m.toggleDeviceKey(key)
	}
	return m, nil
}

// toggleDetails shows or hides the breakdown. Showing it scrolls the body
// to the breakdown.
func (m *EstimateModel) toggleDetails() {
	m.showDetails = !m.showDetails
	if !m.showDetails {
		m.followFocus()
		return
	}
	m.scroll = lipgloss.Height(RenderFieldTable(m.rows, m.focusedRow, false, "")) + 1
	m.scrollBody(0)
}

// toggleDeviceKey flips the device numbered key (1-based, in DeviceKinds
// order) while the devices row is focused. Other keys are ignored.
func (m *EstimateModel) toggleDeviceKey(key string) {
	if m.rows[m.focusedRow].Kind != FieldDevices {
		return
	}
	kinds := footprint.DeviceKinds()
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(kinds) {
		return
	}
	m.err = nil
	m.usage = m.usage.ToggleDevice(kinds[n-1])
	m.recompute()
}

// handleEditModeKey processes keyboard input while editing a field.
//
//nolint:exhaustive // Only Enter and Esc are intercepted; the rest go to the text input.
func (m *EstimateModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = EstimateStateQuitting
		return m, tea.Quit

	case tea.KeyEnter:
		value := m.input.Value()
		m.closeEditor()
		m.commit(m.rows[m.focusedRow].Key, value)
		return m, nil

	case tea.KeyEsc:
		m.closeEditor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *EstimateModel) closeEditor() {
	m.editMode = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *EstimateModel) moveFocus(delta int) {
	next := m.focusedRow + delta
	if next >= 0 && next < len(m.rows) {
		m.focusedRow = next
	}
	m.followFocus()
}

// followFocus scrolls the body just enough to keep the focused row
// visible. The column header stays visible while the first row is focused.
func (m *EstimateModel) followFocus() {
	if m.focusedRow == 0 {
		m.scroll = 0
		return
	}
	h := m.bodyHeight(m.renderTop(), m.renderFooter())
	line := m.focusedRow + 1 // below the column header
	if line < m.scroll {
		m.scroll = line
	}
	if line >= m.scroll+h {
		m.scroll = line - h + 1
	}
}

// scrollBody moves the body by pages screens, clamped to its content.
func (m *EstimateModel) scrollBody(pages int) {
	h := m.bodyHeight(m.renderTop(), m.renderFooter())
	maxScroll := max(lipgloss.Height(m.renderBody())-h, 0)
	m.scroll = min(max(m.scroll+pages*h, 0), maxScroll)
}

// cycleFocused steps an enumerated field to its neighbouring value.
func (m *EstimateModel) cycleFocused(dir int) {
	row := m.rows[m.focusedRow]
	values := enumValues(row.Kind)
	if values == nil {
		return
	}
	m.commit(row.Key, cycle(values, row.CurrentValue, dir))
}

// commit applies one edit and recomputes the result. A rejected value
// leaves the profile unchanged and records the error for display.
func (m *EstimateModel) commit(key, value string) {
	next, err := profile.Apply(m.ctx, m.usage, map[string]string{key: value})
	if err != nil {
		m.err = fmt.Errorf("rejected %s=%q: %w", key, value, err)
		m.followFocus()
		return
	}
	m.err = nil
	m.usage = next
	m.recompute()
}

// recompute refreshes the result and row values. Advisories and errors
// change the pinned areas, so the scroll is re-checked.
func (m *EstimateModel) recompute() {
	m.result = m.est.Estimate(m.usage)
	for i, spec := range fieldSpecs {
		m.rows[i].CurrentValue = fieldValue(m.usage, spec)
	}
	if !m.showDetails {
		m.followFocus()
	}
}

// Reset discards every edit.
func (m *EstimateModel) Reset() {
	m.usage = m.initial
	m.err = nil
	m.recompute()
}

// View renders the current view.
func (m *EstimateModel) View() string {
	if m.state == EstimateStateQuitting {
		return ""
	}
	return m.renderEditingView()
}

// Usage returns the profile as currently edited.
func (m *EstimateModel) Usage() footprint.UsageProfile {
	return m.usage
}

// Result returns the result for the current profile.
func (m *EstimateModel) Result() footprint.ResultProfile {
	return m.result
}

// Baseline returns the result for the starting profile.
func (m *EstimateModel) Baseline() footprint.ResultProfile {
	return m.baseline
}

// Err returns the last rejected edit, or nil.
func (m *EstimateModel) Err() error {
	return m.err
}

// GetOverrides returns the changed fields as key=value overrides.
func (m *EstimateModel) GetOverrides() map[string]string {
	overrides := make(map[string]string)
	for _, row := range m.rows {
		if row.Changed() {
			overrides[row.Key] = row.CurrentValue
		}
	}
	return overrides
}
