package calendar

import (
	"fmt"
	"time"
)

// DayLayout is the filter key format.
const DayLayout = "2006-01-02"

// DayKey returns the YYYY-MM-DD key of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay validates a YYYY-MM-DD key and returns local midnight of that day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Picker is a month-grid cursor over calendar days.
type Picker struct {
	cursor time.Time
	today  time.Time
}

// NewPicker creates a picker with the cursor on today.
func NewPicker(today time.Time) Picker {
	d := midnight(today)
	return Picker{cursor: d, today: d}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today returns the day the picker was created on.
func (p Picker) Today() time.Time {
	return p.today
}

// Key returns the filter key of the highlighted day.
func (p Picker) Key() string {
	return DayKey(p.cursor)
}

// Move shifts the cursor by n days.
func (p Picker) Move(n int) Picker {
	p.cursor = p.cursor.AddDate(0, 0, n)
	return p
}

// MoveMonth shifts the cursor by n months, clamping the day to the length
// of the target month (Jan 31 + 1 month is Feb 28/29, not Mar 3).
func (p Picker) MoveMonth(n int) Picker {
	y, m, d := p.cursor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, p.cursor.Location()).AddDate(0, n, 0)
	if last := daysIn(first); d > last {
		d = last
	}
	p.cursor = first.AddDate(0, 0, d-1)
	return p
}

// Jump moves the cursor to t.
func (p Picker) Jump(t time.Time) Picker {
	p.cursor = midnight(t)
	return p
}

// Title returns e.g. "October 2026".
func (p Picker) Title() string {
	return p.cursor.Format("January 2006")
}

// Weeks returns the cursor's month as rows of seven days, Sunday first.
// Cells outside the month are the zero time.
func (p Picker) Weeks() [][7]time.Time {
	y, m, _ := p.cursor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, p.cursor.Location())

	var weeks [][7]time.Time
	var week [7]time.Time
	col := int(first.Weekday())
	for day := first; day.Month() == m; day = day.AddDate(0, 0, 1) {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]time.Time{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func daysIn(first time.Time) int {
	return first.AddDate(0, 1, -1).Day()
}
