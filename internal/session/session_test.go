package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/calc"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/history"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/storage"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func newSession(t *testing.T) (*Session, *clock, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	store := history.NewStore(kv, "")
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	c := &clock{t: time.Date(2026, time.October, 16, 9, 30, 0, 0, time.Local)}
	return New(store, WithClock(c.now)), c, kv
}

func press(s *Session, keys ...string) Outcome {
	var out Outcome
	for _, k := range keys {
		out = s.Press(k)
	}
	return out
}

func TestEvaluateRecordsHistory(t *testing.T) {
	s, _, _ := newSession(t)

	out := press(s, "2", "+", "3", "×", "4", KeyEquals)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if !out.Recorded() {
		t.Fatal("expected a history entry")
	}
	if s.Display() != "14" {
		t.Fatalf("display = %q, want 14", s.Display())
	}
	if out.Entry.Entry != "2+3×4 = 14" {
		t.Fatalf("entry = %q", out.Entry.Entry)
	}
	if out.Entry.Date != "2026-10-16" {
		t.Fatalf("date = %q", out.Entry.Date)
	}
	if got := out.Snapshot.Entries(); len(got) != 1 || got[0] != *out.Entry {
		t.Fatalf("snapshot does not hold the new entry: %+v", got)
	}
}

func TestMalformedShowsSentinelAndKeepsHistory(t *testing.T) {
	s, _, _ := newSession(t)
	press(s, "1", "+", "1", KeyEquals, KeyClear)

	out := press(s, "5", "+", KeyEquals)
	if !errors.Is(out.Err, calc.ErrEvaluation) {
		t.Fatalf("expected evaluation error, got %v", out.Err)
	}
	if out.Recorded() {
		t.Fatal("failed evaluation must not record history")
	}
	if s.Display() != calc.ErrorSentinel {
		t.Fatalf("display = %q, want %q", s.Display(), calc.ErrorSentinel)
	}
	if s.History().Len() != 1 {
		t.Fatalf("history length = %d, want 1", s.History().Len())
	}
}

func TestEvaluateWholeExpression(t *testing.T) {
	s, _, _ := newSession(t)

	out := s.Evaluate("1+1=+2")
	if !errors.Is(out.Err, calc.ErrEvaluation) {
		t.Fatalf("expected evaluation error, got %v", out.Err)
	}
	if s.History().Len() != 0 {
		t.Fatalf("an embedded = must not record anything, got %d entries", s.History().Len())
	}

	out = s.Evaluate("2^10")
	if out.Err != nil || s.Display() != "1024" {
		t.Fatalf("display = %q, err = %v", s.Display(), out.Err)
	}
}

// Very large results are shown in exponent form and must still work as the
// start of the next calculation.
func TestContinueFromExponentResult(t *testing.T) {
	s, _, _ := newSession(t)
	press(s, "1", "0", "^", "2", "1", KeyEquals)
	if s.Display() != "1e+21" {
		t.Fatalf("display = %q, want 1e+21", s.Display())
	}

	out := press(s, "×", "2", KeyEquals)
	if out.Err != nil || s.Display() != "2e+21" {
		t.Fatalf("display = %q, err = %v", s.Display(), out.Err)
	}

	press(s, KeyClear, "1", "0", "^", "−", "7", KeyEquals)
	if out := s.Press(KeySin); out.Err != nil {
		t.Fatalf("sin of %q failed: %v", "1e-7", out.Err)
	}
}

func TestKeyAfterErrorStartsOver(t *testing.T) {
	s, _, _ := newSession(t)
	press(s, "(", KeyEquals)

	s.Press("7")
	if s.Input() != "7" {
		t.Fatalf("input = %q, want 7", s.Input())
	}
}

func TestNewestFirst(t *testing.T) {
	s, _, _ := newSession(t)
	press(s, "1", "+", "1", KeyEquals, KeyClear)
	press(s, "2", "+", "2", KeyEquals)

	first, _ := s.History().Get(0)
	if first.Entry != "2+2 = 4" {
		t.Fatalf("newest entry = %q", first.Entry)
	}
}

func TestClearAndBackspace(t *testing.T) {
	s, _, _ := newSession(t)
	press(s, "1", "2", "×")
	s.Press(KeyBackspace)
	if s.Input() != "12" {
		t.Fatalf("backspace should remove the whole glyph, got %q", s.Input())
	}
	s.Press(KeyClear)
	if s.Input() != "" || s.Display() != "0" {
		t.Fatalf("clear left %q / %q", s.Input(), s.Display())
	}
	s.Press(KeyBackspace)
	if s.Input() != "" {
		t.Fatalf("backspace on empty input = %q", s.Input())
	}
}

func TestScientificFunctions(t *testing.T) {
	s, _, _ := newSession(t)

	out := press(s, "0", KeyCos)
	if out.Err != nil || s.Display() != "1" {
		t.Fatalf("cos(0): display %q err %v", s.Display(), out.Err)
	}
	if out.Entry.Entry != "cos(0) = 1" {
		t.Fatalf("entry = %q", out.Entry.Entry)
	}

	s.Press(KeyClear)
	out = press(s, "1", "+", "2", KeySin)
	if !errors.Is(out.Err, calc.ErrEvaluation) {
		t.Fatalf("sin of an expression should fail, got %v", out.Err)
	}
	if s.History().Len() != 1 {
		t.Fatalf("history length = %d, want 1", s.History().Len())
	}
}

func TestSaveNoteUnderFilterTargetsMasterRecord(t *testing.T) {
	s, c, kv := newSession(t)

	c.t = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)
	press(s, "1", "+", "1", KeyEquals, KeyClear)
	c.t = time.Date(2026, time.October, 16, 10, 0, 0, 0, time.Local)
	press(s, "5", "+", "5", KeyEquals, KeyClear)

	if err := s.SelectDay("2026-10-14"); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}
	if s.Visible().Len() != 1 {
		t.Fatalf("visible = %d, want 1", s.Visible().Len())
	}

	target, ok := s.NoteTarget(0)
	if !ok || target.Entry != "1+1 = 2" {
		t.Fatalf("note target = %+v", target)
	}

	snap, err := s.SaveNote(0, "warm-up")
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if err := s.Persist(context.Background(), snap); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	reloaded := history.NewStore(kv, "")
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	newest, _ := reloaded.Get(0)
	oldest, _ := reloaded.Get(1)
	if newest.Note != "" {
		t.Fatalf("note landed on the wrong record: %+v", newest)
	}
	if oldest.Note != "warm-up" {
		t.Fatalf("note missing after reload: %+v", oldest)
	}

	if _, err := s.SaveNote(1, "x"); !errors.Is(err, history.ErrNoEntry) {
		t.Fatalf("expected ErrNoEntry, got %v", err)
	}
}

func TestSelectDay(t *testing.T) {
	s, _, _ := newSession(t)
	if err := s.SelectDay("16/10/2026"); err == nil {
		t.Fatal("expected invalid day error")
	}
	if s.SelectedDay() != "" {
		t.Fatal("invalid day must not change the selection")
	}
	if err := s.SelectDay("2026-10-16"); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}
	s.ClearDay()
	if s.SelectedDay() != "" {
		t.Fatal("ClearDay did not clear")
	}
}
