package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/calendar"
)

// View renders the UI (required by Bubble Tea).
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	// Show error if present
	if m.err != nil {
		s.WriteString(m.GetErrorStyle().Render(fmt.Sprintf("⚠️  Error: %v", m.err)))
		s.WriteString("\n\n")
	}

	// Render current screen
	switch m.currentScreen {
	case HistoryScreen:
		s.WriteString(m.list.View())
		if m.historyParent == CalendarScreen {
			s.WriteString(m.GetHelpStyle().Render("\n\nEnter=add/edit note | Esc=back to calendar | q=close"))
		} else {
			s.WriteString(m.GetHelpStyle().Render("\n\nEnter=add/edit note | Esc or q=close"))
		}

	case NoteScreen:
		s.WriteString(m.GetHeaderStyle().Render("Add Note"))
		s.WriteString("\n")
		s.WriteString(strings.Repeat("─", m.width) + "\n")
		if target, ok := m.session.NoteTarget(m.notePos); ok {
			s.WriteString(fmt.Sprintf("[%s] %s\n\n", target.DisplayDate, target.Entry))
		}
		s.WriteString(m.textInput.View())
		s.WriteString(m.GetHelpStyle().Render("\n\nPress Enter to save, Esc to cancel"))

	case CalendarScreen:
		s.WriteString(m.renderCalendar())

	case HelpScreen:
		s.WriteString(m.GetHeaderStyle().Render("Keys"))
		s.WriteString("\n")
		s.WriteString(strings.Repeat("─", m.width) + "\n")
		s.WriteString(m.viewport.View())
		s.WriteString(m.GetHelpStyle().Render("\n\nPress 'Esc' to go back | ↑↓ to scroll"))

	default:
		s.WriteString(m.renderCalculator())
	}

	if m.status != "" {
		s.WriteString("\n\n")
		s.WriteString(m.GetWarningStyle().Render(m.status))
	}

	return s.String()
}

func (m Model) renderCalculator() string {
	var s strings.Builder

	s.WriteString(m.GetHeaderStyle().Render("Calculator"))
	s.WriteString("\n\n")

	displayWidth := 4*7 - 1
	if m.width-4 < displayWidth {
		displayWidth = m.width - 4
	}
	display := m.session.Display()
	if m.session.Failed() {
		display = m.GetErrorStyle().Render(display)
	}
	s.WriteString(m.GetDisplayStyle().Width(displayWidth).Render(display))
	s.WriteString("\n\n")

	for _, row := range keypadRows {
		var cells []string
		for _, label := range row {
			cells = append(cells, m.GetKeyStyle(isOperatorKey(label)).Render(label))
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		s.WriteString("\n")
	}

	s.WriteString(m.GetHelpStyle().Render("\nh=history | d=calendar | ?=keys | q=quit"))
	return s.String()
}

func isOperatorKey(label string) bool {
	switch label {
	case "+", "−", "×", "÷", "=", "^", "%", "√", "sin", "cos", "tan":
		return true
	}
	return false
}

func (m Model) renderCalendar() string {
	var s strings.Builder

	s.WriteString(m.GetHeaderStyle().Render(m.picker.Title()))
	s.WriteString("\n\n")
	s.WriteString(m.GetHelpStyle().Render("Su Mo Tu We Th Fr Sa"))
	s.WriteString("\n")

	marked := m.daysWithHistory()
	cursor := m.picker.Key()
	today := calendar.DayKey(m.picker.Today())

	for _, week := range m.picker.Weeks() {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, m.renderDay(day, cursor, today, marked))
		}
		s.WriteString(strings.Join(cells, " "))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Selected: %s", cursor))
	if marked[cursor] {
		n := m.session.History().Filter(cursor).Len()
		s.WriteString(fmt.Sprintf(" (%d calculations)", n))
	}
	s.WriteString(m.GetHelpStyle().Render("\n\n←→↑↓ move | [ ] month | t today | Enter=show history | Esc=close"))
	return s.String()
}

func (m Model) renderDay(day time.Time, cursor, today string, marked map[string]bool) string {
	if day.IsZero() {
		return "  "
	}
	key := calendar.DayKey(day)
	label := fmt.Sprintf("%2d", day.Day())

	style := lipgloss.NewStyle()
	if marked[key] {
		style = m.GetSuccessStyle()
	}
	if key == today {
		style = style.Underline(true)
	}
	if key == cursor {
		style = m.GetHighlightStyle()
	}
	return style.Render(label)
}
