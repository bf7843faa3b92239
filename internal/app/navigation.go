package app

// Screen represents different screens in the calculator
type Screen int

const (
	// CalculatorScreen is the initial screen with display and keypad
	CalculatorScreen Screen = iota
	// HistoryScreen lists past calculations, optionally filtered by day
	HistoryScreen
	// NoteScreen edits the note of one history entry
	NoteScreen
	// CalendarScreen picks a day to filter history by
	CalendarScreen
	HelpScreen
)

// String returns the string representation of a Screen
func (s Screen) String() string {
	switch s {
	case CalculatorScreen:
		return "Calculator"
	case HistoryScreen:
		return "History"
	case NoteScreen:
		return "Note"
	case CalendarScreen:
		return "Calendar"
	case HelpScreen:
		return "Help"
	default:
		return "Unknown"
	}
}

// Theme selects the colour scheme.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme maps a config value to a Theme, defaulting to dark.
func ParseTheme(name string) Theme {
	if name == "light" {
		return ThemeLight
	}
	return ThemeDark
}
