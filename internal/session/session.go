// Package session holds the calculator's application state: the input
// buffer, the history store and the selected calendar day.
package session

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/calc"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/calendar"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/history"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/logger"
)

// Keypad keys with special meaning. Every other key is appended verbatim.
const (
	KeyClear     = "AC"
	KeyBackspace = "⌫"
	KeyEquals    = "="
	KeySin       = "sin"
	KeyCos       = "cos"
	KeyTan       = "tan"
)

// Outcome reports what a key press did.
type Outcome struct {
	// Entry is the history record created by a successful evaluation.
	Entry *history.Entry
	// Snapshot is the history to persist when Entry is set.
	Snapshot history.Snapshot
	// Err is the evaluation failure, if any. The display already shows
	// the error sentinel.
	Err error
}

// Recorded reports whether the press added a history entry.
func (o Outcome) Recorded() bool {
	return o.Entry != nil
}

// Session is the single owner of calculator state.
type Session struct {
	input   string
	history *history.Store
	day     string

	now           func() time.Time
	displayLayout string
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the wall clock used to stamp history entries.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithDisplayLayout sets the time layout of an entry's display date.
func WithDisplayLayout(layout string) Option {
	return func(s *Session) {
		s.displayLayout = layout
	}
}

// New creates a session over an already loaded history store.
func New(store *history.Store, opts ...Option) *Session {
	s := &Session{
		history:       store,
		now:           time.Now,
		displayLayout: history.DefaultDisplayLayout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input returns the raw input buffer.
func (s *Session) Input() string {
	return s.input
}

// Display returns what the calculator screen shows.
func (s *Session) Display() string {
	if s.input == "" {
		return "0"
	}
	return s.input
}

// Failed reports whether the display shows the error sentinel.
func (s *Session) Failed() bool {
	return s.input == calc.ErrorSentinel
}

// History returns the master history store.
func (s *Session) History() *history.Store {
	return s.history
}

// Press applies one keypad key.
func (s *Session) Press(key string) Outcome {
	// After an error the next key starts over instead of editing "Error".
	if s.Failed() {
		s.input = ""
	}

	switch key {
	case KeyClear:
		s.input = ""
	case KeyBackspace:
		if s.input != "" {
			_, size := utf8.DecodeLastRuneInString(s.input)
			s.input = s.input[:len(s.input)-size]
		}
	case KeyEquals:
		return s.evaluate()
	case KeySin, KeyCos, KeyTan:
		return s.applyUnary(key)
	default:
		s.input += key
	}
	return Outcome{}
}

// Evaluate replaces the buffer with expression and evaluates it as one
// unit. Key names inside expression get no special meaning.
func (s *Session) Evaluate(expression string) Outcome {
	s.input = expression
	return s.evaluate()
}

func (s *Session) evaluate() Outcome {
	expression := s.input
	v, err := calc.Evaluate(expression)
	if err != nil {
		return s.fail(err)
	}
	return s.record(expression, calc.FormatResult(v))
}

func (s *Session) applyUnary(name string) Outcome {
	operand := s.input
	v, err := calc.ApplyUnary(name, operand)
	if err != nil {
		return s.fail(err)
	}
	return s.record(fmt.Sprintf("%s(%s)", name, operand), calc.FormatResult(v))
}

func (s *Session) fail(err error) Outcome {
	logger.Debug("evaluation failed: %v", err)
	s.input = calc.ErrorSentinel
	return Outcome{Err: err}
}

func (s *Session) record(expression, result string) Outcome {
	entry := history.NewEntry(expression, result, s.now(), s.displayLayout)
	snap := s.history.Append(entry)
	s.input = result
	return Outcome{Entry: &entry, Snapshot: snap}
}

// SelectDay filters the visible history to day (YYYY-MM-DD).
func (s *Session) SelectDay(day string) error {
	if _, err := calendar.ParseDay(day); err != nil {
		return err
	}
	s.day = day
	return nil
}

// ClearDay removes the day filter.
func (s *Session) ClearDay() {
	s.day = ""
}

// SelectedDay returns the active filter key, empty when unfiltered.
func (s *Session) SelectedDay() string {
	return s.day
}

// Visible returns the history as currently filtered.
func (s *Session) Visible() history.View {
	return s.history.Filter(s.day)
}

// NoteTarget returns the record at position pos of the visible history.
func (s *Session) NoteTarget(pos int) (history.Entry, bool) {
	_, e, ok := s.Visible().At(pos)
	return e, ok
}

// SaveNote sets the note of the record at position pos of the visible
// history. The position is resolved to the record's index in the unfiltered
// list before writing.
func (s *Session) SaveNote(pos int, note string) (history.Snapshot, error) {
	master, _, ok := s.Visible().At(pos)
	if !ok {
		return history.Snapshot{}, fmt.Errorf("%w: position %d", history.ErrNoEntry, pos)
	}
	return s.history.SetNote(master, note)
}

// Persist writes snap synchronously.
func (s *Session) Persist(ctx context.Context, snap history.Snapshot) error {
	return s.history.Save(ctx, snap)
}
