package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// NewViewport creates a new viewport for scrollable text such as the key help
func NewViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// UpdateViewport is a helper to update a viewport model
func UpdateViewport(vp viewport.Model, msg tea.Msg) (viewport.Model, tea.Cmd) {
	newVp, cmd := vp.Update(msg)
	return newVp, cmd
}
