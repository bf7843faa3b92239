package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/history"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/logger"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/ui"
)

// Init initializes the model (required by Bubble Tea).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model (required by Bubble Tea).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.list.SetSize(msg.Width, m.listHeight())
		m.viewport.Width = msg.Width
		m.viewport.Height = m.listHeight()
		m.textInput.Width = msg.Width - 4
		return m, nil

	case historySavedMsg:
		if msg.err != nil {
			// In-memory history stays authoritative for this session
			logger.Error("failed to save history: %v", msg.err)
			m.status = fmt.Sprintf("History not saved: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.currentScreen {
	case HistoryScreen:
		return m.handleHistoryKey(msg)
	case NoteScreen:
		return m.handleNoteKey(msg)
	case CalendarScreen:
		return m.handleCalendarKey(msg)
	case HelpScreen:
		return m.handleHelpKey(msg)
	default:
		return m.handleCalculatorKey(msg)
	}
}

func (m Model) handleCalculatorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h":
		m.session.ClearDay()
		m.historyParent = CalculatorScreen
		return m.navigateToHistory(0), nil
	case "d":
		return m.navigateToCalendar(), nil
	case "?":
		return m.navigateToHelp(), nil
	}

	key, ok := keyBindings[msg.String()]
	if !ok {
		return m, nil
	}

	m.err = nil
	m.status = ""
	out := m.session.Press(key)
	if out.Err != nil {
		m.status = out.Err.Error()
		return m, nil
	}
	if out.Recorded() {
		logger.Debug("recorded %q", out.Entry.Entry)
		return m, m.saveHistory(out.Snapshot)
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.navigateToCalculator(), nil
	case "esc", "b":
		return m.navigateBack(), nil
	case "?":
		return m.navigateToHelp(), nil
	case "enter":
		if m.session.Visible().Len() == 0 {
			return m, nil
		}
		return m.navigateToNote(m.list.Index()), nil
	}

	var cmd tea.Cmd
	m.list, cmd = ui.UpdateList(m.list, msg)
	return m, cmd
}

func (m Model) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.navigateBack(), nil
	case "enter":
		return m.saveNote()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) saveNote() (tea.Model, tea.Cmd) {
	note := SanitizeNote(m.textInput.Value())
	if err := ValidateNote(note); err != nil {
		m.err = err
		return m, nil
	}

	snap, err := m.session.SaveNote(m.notePos, note)
	if err != nil {
		if errors.Is(err, history.ErrNoEntry) {
			logger.Error("note target vanished: %v", err)
		}
		m.err = err
		return m.navigateBack(), nil
	}

	m.err = nil
	return m.navigateBack(), m.saveHistory(snap)
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.navigateToCalculator(), nil
	case "?":
		return m.navigateToHelp(), nil
	case "left", "h":
		m.picker = m.picker.Move(-1)
	case "right", "l":
		m.picker = m.picker.Move(1)
	case "up", "k":
		m.picker = m.picker.Move(-7)
	case "down", "j":
		m.picker = m.picker.Move(7)
	case "[", "pgup":
		m.picker = m.picker.MoveMonth(-1)
	case "]", "pgdown":
		m.picker = m.picker.MoveMonth(1)
	case "t":
		m.picker = m.picker.Jump(m.picker.Today())
	case "enter":
		if err := m.session.SelectDay(m.picker.Key()); err != nil {
			m.err = err
			return m, nil
		}
		m.historyParent = CalendarScreen
		return m.navigateToHistory(0), nil
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		return m.navigateBack(), nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = ui.UpdateViewport(m.viewport, msg)
	return m, cmd
}
