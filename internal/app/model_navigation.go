package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/calendar"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/ui"
)

// Navigation handlers for the calculator, history, note and calendar screens.

func (m Model) navigateToCalculator() Model {
	m.textInput.Blur()
	m.historyParent = CalculatorScreen
	m.previousScreen = m.currentScreen
	m.currentScreen = CalculatorScreen
	return m
}

// navigateToHistory shows the session's visible history, keeping the cursor
// at selected when it is still in range.
func (m Model) navigateToHistory(selected int) Model {
	view := m.session.Visible()

	items := []list.Item{}
	for _, e := range view.All() {
		desc := "Enter to add note"
		if e.Note != "" {
			desc = "Note: " + e.Note
		}
		items = append(items, ui.NewSimpleItem(fmt.Sprintf("[%s] %s", e.DisplayDate, e.Entry), desc))
	}
	if len(items) == 0 {
		hint := "Evaluate something to see it here"
		if day := view.Day(); day != "" {
			hint = "Nothing was calculated on " + day
		}
		items = []list.Item{ui.NewSimpleItem("No history", hint)}
	}

	title := "History"
	if day := view.Day(); day != "" {
		title = "History for " + day
	}
	m.list = ui.NewList(items, title, m.width, m.listHeight())
	if selected > 0 && selected < len(items) {
		m.list.Select(selected)
	}

	m.textInput.Blur()
	m.previousScreen = m.currentScreen
	m.currentScreen = HistoryScreen
	return m
}

func (m Model) navigateToNote(pos int) Model {
	target, ok := m.session.NoteTarget(pos)
	if !ok {
		return m
	}
	m.notePos = pos
	m.textInput.SetValue(target.Note)
	m.textInput.CursorEnd()
	m.textInput.Focus()
	m.previousScreen = m.currentScreen
	m.currentScreen = NoteScreen
	return m
}

func (m Model) navigateToCalendar() Model {
	if day := m.session.SelectedDay(); day != "" {
		if t, err := calendar.ParseDay(day); err == nil {
			m.picker = m.picker.Jump(t)
		}
	}
	m.previousScreen = m.currentScreen
	m.currentScreen = CalendarScreen
	return m
}

func (m Model) navigateToHelp() Model {
	var s strings.Builder
	for _, h := range keyHints {
		if h[0] == "" {
			s.WriteString("\n")
			continue
		}
		s.WriteString(fmt.Sprintf("  %-14s %s\n", h[0], h[1]))
	}
	m.viewport.SetContent(s.String())
	m.viewport.GotoTop()
	m.previousScreen = m.currentScreen
	m.currentScreen = HelpScreen
	return m
}

// navigateBack leaves the current screen the way its Back action should.
func (m Model) navigateBack() Model {
	switch m.currentScreen {
	case NoteScreen:
		parent := m.historyParent
		m = m.navigateToHistory(m.notePos)
		m.historyParent = parent
		return m
	case HistoryScreen:
		if m.historyParent == CalendarScreen {
			return m.navigateToCalendar()
		}
		return m.navigateToCalculator()
	case HelpScreen:
		prev := m.previousScreen
		m.previousScreen = m.currentScreen
		m.currentScreen = prev
		return m
	default:
		return m.navigateToCalculator()
	}
}

func (m Model) listHeight() int {
	if m.height > 6 {
		return m.height - 6
	}
	return m.height
}
