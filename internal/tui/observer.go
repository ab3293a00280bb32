package tui

import "github.com/mmcdole/flicks/internal/controller"

// ChannelObserver adapts controller.Observer to a channel for Bubble Tea.
// Notifications are coalesced: the receiver reads the latest snapshot itself,
// so a burst of changes produces one wake-up and never delivers a stale state.
type ChannelObserver struct {
	ch chan struct{}
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{ch: make(chan struct{}, 1)}
}

// StateChanged signals the channel (non-blocking if a signal is already pending).
func (o *ChannelObserver) StateChanged(controller.State) {
	select {
	case o.ch <- struct{}{}:
	default: // Already signalled
	}
}

// Changed returns the notification channel
func (o *ChannelObserver) Changed() <-chan struct{} {
	return o.ch
}
