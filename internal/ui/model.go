package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/pressure-trend/internal/input"
	"github.com/ngmaloney/pressure-trend/internal/log"
	"github.com/ngmaloney/pressure-trend/internal/models"
)

// Farewell is shown once the user declines another calculation
const Farewell = "Thank you for using the Pressure Trend Calculator!"

const invalidReadingsMsg = "Please enter valid numeric values for pressures."

// AppState represents the current state of the application
type AppState int

const (
	StateUnitSelect AppState = iota // Choose the unit readings are entered in
	StateReadings                   // Prompt for the four readings
	StateComputing                  // Calculation in flight
	StateResult                     // Show the report
	StateError                      // Rejected input or failed calculation
)

// readingCount is the number of prompts: current plus three hourly readings
const readingCount = 4

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Unit selection
	unitList    list.Model
	defaultUnit models.Unit
	unit        models.Unit

	// Readings
	readingInput textinput.Model
	step         int // index of the reading being prompted for
	entries      [readingCount]string

	// Data
	readings models.Readings
	result   *models.TrendResult

	done bool
}

// NewModel creates a new application model with defaultUnit preselected in the menu
func NewModel(defaultUnit models.Unit) Model {
	if !defaultUnit.Valid() {
		defaultUnit = models.UnitInHg
	}

	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20

	return Model{
		state:        StateUnitSelect,
		defaultUnit:  defaultUnit,
		unitList:     createUnitList(defaultUnit, 0, 0),
		readingInput: ti,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Done reports whether the user has finished and the farewell should be printed
func (m Model) Done() bool {
	return m.done
}

// Result returns the last computed result, or nil
func (m Model) Result() *models.TrendResult {
	return m.result
}

// SetResult jumps straight to the report for an already computed result
func (m *Model) SetResult(unit models.Unit, readings models.Readings, result models.TrendResult) {
	m.unit = unit
	m.readings = readings
	m.result = &result
	m.err = nil
	m.state = StateResult
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.unitList.SetSize(max(msg.Width-4, minListWidth), max(msg.Height-10, minListHeight))
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		log.Errorw("trend calculation failed", "unit", m.unit.String(), "err", msg.err)
		m.err = fmt.Errorf("calculation failed: %w", msg.err)
		m.state = StateError
		return m, nil

	case trendComputedMsg:
		log.Infow("trend computed",
			"unit", m.unit.String(),
			"station_model", msg.result.StationModelCode(),
			"trend_value", msg.result.TrendValue,
			"symbol", msg.result.TendencySymbol,
		)
		m.result = msg.result
		m.state = StateResult
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateUnitSelect:
			return m.handleUnitSelect(keyMsg)

		case StateReadings:
			return m.handleReadingInput(keyMsg)

		case StateComputing:
			return m, nil

		case StateResult, StateError:
			return m.handleAnother(keyMsg)
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateUnitSelect:
		m.unitList, cmd = m.unitList.Update(msg)
	case StateReadings:
		m.readingInput, cmd = m.readingInput.Update(msg)
	}

	return m, cmd
}

// handleUnitSelect handles keyboard input in the unit menu
func (m Model) handleUnitSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "esc":
		return m.finish()
	case "1", "2", "3", "4":
		// number shortcuts mirror the menu order
		unit, err := models.ParseUnit(msg.String())
		if err == nil {
			return m.selectUnit(unit)
		}
	case "enter":
		if item, ok := m.unitList.SelectedItem().(unitItem); ok {
			return m.selectUnit(item.unit)
		}
		return m, nil
	}

	m.unitList, cmd = m.unitList.Update(msg)
	return m, cmd
}

// selectUnit starts prompting for readings in unit
func (m Model) selectUnit(unit models.Unit) (tea.Model, tea.Cmd) {
	m.unit = unit
	m.step = 0
	m.entries = [readingCount]string{}
	m.err = nil
	m.state = StateReadings
	m.resetReadingInput()
	return m, textinput.Blink
}

// handleReadingInput handles keyboard input while readings are being entered
func (m Model) handleReadingInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEsc:
		// Back to the unit menu, discarding partial entries
		m.state = StateUnitSelect
		m.entries = [readingCount]string{}
		m.step = 0
		m.readingInput.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.readingInput.Value())
		if value == "" {
			return m, nil
		}
		m.entries[m.step] = value
		m.step++
		if m.step < readingCount {
			m.resetReadingInput()
			return m, nil
		}
		return m.submitReadings()
	}

	m.readingInput, cmd = m.readingInput.Update(msg)
	return m, cmd
}

// submitReadings validates the four entries and starts the calculation
func (m Model) submitReadings() (tea.Model, tea.Cmd) {
	m.readingInput.Blur()

	readings, err := input.ParseReadings(m.entries[0], m.entries[1], m.entries[2], m.entries[3])
	if err != nil {
		log.Warnw("rejected readings", "unit", m.unit.String(), "err", err)
		m.err = err
		m.state = StateError
		return m, nil
	}

	log.Debugw("calculating trend",
		"unit", m.unit.String(),
		"current", readings.Current,
		"past", readings.Past(),
	)
	m.readings = readings
	m.state = StateComputing
	return m, computeTrend(readings, m.unit)
}

// handleAnother handles the "calculate another?" prompt after a result or error.
// Only y continues; Enter on its own is an empty answer and ends the session.
func (m Model) handleAnother(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.reset()
		return m, nil
	case "n", "N", "q", "esc", "enter":
		return m.finish()
	}
	return m, nil
}

// reset returns to the unit menu with the previous unit highlighted
func (m *Model) reset() {
	selected := m.defaultUnit
	if m.unit.Valid() {
		selected = m.unit
	}
	m.unitList = createUnitList(selected, m.width-4, m.height-10)
	m.state = StateUnitSelect
	m.err = nil
	m.result = nil
	m.readings = models.Readings{}
	m.entries = [readingCount]string{}
	m.step = 0
	m.readingInput.Blur()
	m.readingInput.SetValue("")
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

func (m *Model) resetReadingInput() {
	current, past := m.unit.InputLabels()
	label := past
	if m.step == 0 {
		label = current
	}
	m.readingInput.SetValue("")
	m.readingInput.Placeholder = placeholderFor(label)
	m.readingInput.Focus()
}

// prompt returns the question for reading step
func (m Model) prompt(step int) string {
	current, past := m.unit.InputLabels()
	switch step {
	case 0:
		return fmt.Sprintf("Enter current pressure (%s)", current)
	case 1:
		return fmt.Sprintf("Enter pressure 1 hour ago (%s)", past)
	default:
		return fmt.Sprintf("Enter pressure %d hours ago (%s)", step, past)
	}
}

func isInputError(err error) bool {
	return errors.Is(err, input.ErrInvalidReading)
}

func placeholderFor(label string) string {
	switch label {
	case "hPa":
		return "e.g. 1013.2"
	case "kPa":
		return "e.g. 101.32"
	default:
		return "e.g. 29.92"
	}
}

// View renders the UI
func (m Model) View() string {
	if m.done {
		return Farewell + "\n"
	}
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateUnitSelect:
		return m.viewUnitSelect()
	case StateReadings:
		return m.viewReadings()
	case StateComputing:
		return m.viewComputing()
	case StateResult:
		return m.viewResult()
	case StateError:
		return m.viewError()
	}

	return ""
}

func (m Model) header() []string {
	title := titleStyle.Render("Pressure Trend Calculator")
	subtitle := mutedStyle.Render("3-hour barometric tendency for station models")
	return []string{title, subtitle, ""}
}

// viewUnitSelect renders the unit menu
func (m Model) viewUnitSelect() string {
	help := helpStyle.Render("↑/↓: Navigate • 1-4: Quick select • Enter: Select • Q: Quit")

	sections := m.header()
	sections = append(sections, m.unitList.View(), "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewReadings renders the reading prompts entered so far plus the active one
func (m Model) viewReadings() string {
	sections := m.header()
	sections = append(sections, labelStyle.Render("Unit: ")+valueStyle.Render(m.unit.Label()), "")

	for i := 0; i < m.step; i++ {
		sections = append(sections, mutedStyle.Render(m.prompt(i)+": ")+valueStyle.Render(m.entries[i]))
	}

	sections = append(sections,
		promptStyle.Render(m.prompt(m.step)+":"),
		inputBoxStyle.Width(30).Render(m.readingInput.View()),
	)

	help := helpStyle.Render("Enter: Next • Esc: Change unit • Ctrl+C: Quit")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewComputing renders the calculating view
func (m Model) viewComputing() string {
	return fmt.Sprintf("Calculating pressure trend (%s)...\n", m.unit.Label())
}

// viewResult renders the report and the "another?" prompt
func (m Model) viewResult() string {
	if m.result == nil {
		return "No result available"
	}

	sections := m.header()
	sections = append(sections,
		m.renderResultPane(),
		promptStyle.Render("Calculate another trend? (y/n)"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	sections := []string{title, "", errorMsg}
	if isInputError(m.err) {
		sections = append(sections, invalidReadingsMsg)
	}
	sections = append(sections,
		"",
		promptStyle.Render("Calculate another trend? (y/n)"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
