package app

import (
	"github.com/charmbracelet/lipgloss"
)

// ThemeColors defines the color scheme for the application
type ThemeColors struct {
	// Base colors
	Primary lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	// Background and text
	Text   lipgloss.AdaptiveColor
	Subtle lipgloss.AdaptiveColor

	// Borders and highlights
	Border lipgloss.AdaptiveColor

	// UI elements
	Highlight lipgloss.AdaptiveColor
	Key       lipgloss.AdaptiveColor
	Operator  lipgloss.AdaptiveColor
}

// GetThemeColors returns the color scheme for the current theme
func GetThemeColors(theme Theme) ThemeColors {
	switch theme {
	case ThemeLight:
		return ThemeColors{
			Primary:   lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#0066CC"},
			Success:   lipgloss.AdaptiveColor{Light: "#008000", Dark: "#008000"},
			Warning:   lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FF8C00"},
			Error:     lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#CC0000"},
			Text:      lipgloss.AdaptiveColor{Light: "#333333", Dark: "#333333"},
			Subtle:    lipgloss.AdaptiveColor{Light: "#999999", Dark: "#777777"},
			Border:    lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#AAAAAA"},
			Highlight: lipgloss.AdaptiveColor{Light: "#E6F3FF", Dark: "#CCE4FF"},
			Key:       lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#DDDDDD"},
			Operator:  lipgloss.AdaptiveColor{Light: "#FFD8A8", Dark: "#FFC078"},
		}
	default: // ThemeDark
		return ThemeColors{
			Primary:   lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#4DA6FF"},
			Success:   lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00D700"},
			Warning:   lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFCC00"},
			Error:     lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF3333"},
			Text:      lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"},
			Subtle:    lipgloss.AdaptiveColor{Light: "#999999", Dark: "#999999"},
			Border:    lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#333333"},
			Highlight: lipgloss.AdaptiveColor{Light: "#E6F3FF", Dark: "#003366"},
			Key:       lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#333333"},
			Operator:  lipgloss.AdaptiveColor{Light: "#FFC078", Dark: "#B35900"},
		}
	}
}

// GetHeaderStyle returns a styled header
func (m Model) GetHeaderStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Primary).
		Bold(true).
		Underline(true)
}

// GetDisplayStyle returns the calculator display box
func (m Model) GetDisplayStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.Border).
		Align(lipgloss.Right).
		Bold(true).
		Padding(0, 1)
}

// GetKeyStyle returns a keypad button style
func (m Model) GetKeyStyle(operator bool) lipgloss.Style {
	colors := GetThemeColors(m.theme)
	bg := colors.Key
	if operator {
		bg = colors.Operator
	}
	return lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(bg).
		Width(6).
		Align(lipgloss.Center).
		MarginRight(1)
}

// GetHighlightStyle returns a styled highlight
func (m Model) GetHighlightStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Background(colors.Highlight).
		Foreground(colors.Text).
		Bold(true)
}

// GetSuccessStyle returns a styled success message
func (m Model) GetSuccessStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Success).
		Bold(true)
}

// GetErrorStyle returns a styled error message
func (m Model) GetErrorStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Error).
		Bold(true)
}

// GetWarningStyle returns a styled warning message
func (m Model) GetWarningStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Warning)
}

// GetHelpStyle returns a styled help text
func (m Model) GetHelpStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Subtle)
}
