package tui

import "github.com/mmcdole/flicks/internal/controller"

// Message types for the TUI

// StateMsg carries a fresh controller snapshot
type StateMsg struct {
	State controller.State
}

// BrowserOpenedMsg reports the outcome of opening a web page
type BrowserOpenedMsg struct {
	URL string
	Err error
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
