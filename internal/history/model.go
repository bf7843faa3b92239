package history

import (
	"time"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/calendar"
)

// DefaultDisplayLayout renders timestamps like "10/16/2026, 3:04:05 PM".
const DefaultDisplayLayout = "1/2/2006, 3:04:05 PM"

// Entry represents one calculation in history.
type Entry struct {
	// Entry reads "<expression> = <result>".
	Entry string `json:"entry"`
	// Date is the calendar day key (YYYY-MM-DD) used for filtering.
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	Note        string `json:"note,omitempty"`
}

// NewEntry creates a new history entry stamped with now.
func NewEntry(expression, result string, now time.Time, displayLayout string) Entry {
	if displayLayout == "" {
		displayLayout = DefaultDisplayLayout
	}
	return Entry{
		Entry:       expression + " = " + result,
		Date:        calendar.DayKey(now),
		DisplayDate: now.Format(displayLayout),
	}
}
