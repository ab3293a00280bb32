package tui

import (
	"testing"

	"github.com/mmcdole/flicks/internal/controller"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelObserver_CoalescesBursts(t *testing.T) {
	obs := NewChannelObserver()

	for range 3 {
		obs.StateChanged(controller.State{})
	}

	<-obs.Changed()
	select {
	case <-obs.Changed():
		t.Fatal("expected a single pending signal")
	default:
	}
}

func TestWaitForStateCmd_ReadsLatestSnapshot(t *testing.T) {
	ctrl := &fakeController{state: controller.State{
		Search: controller.SearchState{Query: "heat", Category: domain.CategoryMovie},
	}}
	obs := NewChannelObserver()
	obs.StateChanged(controller.State{}) // stale payload is ignored

	msg := WaitForStateCmd(ctrl, obs)()

	require.IsType(t, StateMsg{}, msg)
	assert.Equal(t, "heat", msg.(StateMsg).State.Search.Query)
}
