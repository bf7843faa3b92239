package app

// Messages are custom events sent through the Bubble Tea update loop

// historySavedMsg is sent when a history snapshot write has finished
type historySavedMsg struct {
	err error
}
