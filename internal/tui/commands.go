package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flicks/internal/controller"
)

// dispatchTimeout bounds a single controller transition, including its network calls
const dispatchTimeout = 30 * time.Second

// Controller is the part of the content controller the TUI drives
type Controller interface {
	Dispatch(ctx context.Context, action controller.Action)
	Snapshot() controller.State
	Subscribe(o controller.Observer) (unsubscribe func())
}

// URLOpener opens web pages
type URLOpener interface {
	Open(rawURL string) error
}

// Command factories for async operations

// DispatchCmd runs an action on the controller. The resulting state arrives through the observer.
func DispatchCmd(ctrl Controller, action controller.Action) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		ctrl.Dispatch(ctx, action)
		return nil
	}
}

// DispatchSequenceCmd runs actions one after another, each to completion
func DispatchSequenceCmd(ctrl Controller, actions ...controller.Action) tea.Cmd {
	cmds := make([]tea.Cmd, len(actions))
	for i, a := range actions {
		cmds[i] = DispatchCmd(ctrl, a)
	}
	return tea.Sequence(cmds...)
}

// WaitForStateCmd blocks until the controller reports a change, then reads the latest snapshot
func WaitForStateCmd(ctrl Controller, obs *ChannelObserver) tea.Cmd {
	return func() tea.Msg {
		<-obs.Changed()
		return StateMsg{State: ctrl.Snapshot()}
	}
}

// OpenURLCmd opens a web page in the browser
func OpenURLCmd(opener URLOpener, rawURL string) tea.Cmd {
	return func() tea.Msg {
		return BrowserOpenedMsg{URL: rawURL, Err: opener.Open(rawURL)}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
