package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/calendar"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/history"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/session"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/ui"
)

const saveTimeout = 5 * time.Second

// Model represents the application state
type Model struct {
	// Core dependencies
	session *session.Session

	// Current screen and navigation state
	currentScreen  Screen
	previousScreen Screen
	// historyParent is CalendarScreen when history was opened by picking a day
	historyParent Screen
	notePos       int

	picker calendar.Picker
	theme  Theme

	// UI components
	list      list.Model
	viewport  viewport.Model
	textInput textinput.Model

	// Terminal dimensions
	width  int
	height int

	// status is a one-line message under the current screen
	status string
	// Error state
	err error
}

// NewModel creates and initializes a new application model. loadErr is a
// non-fatal problem from startup (e.g. corrupt history) shown on first render.
func NewModel(sess *session.Session, theme Theme, today time.Time, loadErr error) Model {
	ti := textinput.New()
	ti.Placeholder = "Note..."
	ti.CharLimit = maxNoteLength

	return Model{
		session:       sess,
		currentScreen: CalculatorScreen,
		historyParent: CalculatorScreen,
		picker:        calendar.NewPicker(today),
		theme:         theme,
		list:          ui.NewList(nil, "History", 0, 0),
		viewport:      ui.NewViewport(0, 0),
		textInput:     ti,
		err:           loadErr,
	}
}

// Session returns the calculator session behind the UI.
func (m Model) Session() *session.Session {
	return m.session
}

// saveHistory persists a snapshot off the update loop. The UI never waits
// for it; the result comes back as historySavedMsg.
func (m Model) saveHistory(snap history.Snapshot) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return historySavedMsg{err: sess.Persist(ctx, snap)}
	}
}

// daysWithHistory returns the set of day keys that have at least one entry.
func (m Model) daysWithHistory() map[string]bool {
	days := map[string]bool{}
	for _, e := range m.session.History().Filter("").All() {
		days[e.Date] = true
	}
	return days
}
