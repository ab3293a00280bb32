package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flicks/internal/controller"
	"github.com/mmcdole/flicks/internal/domain"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Text inputs swallow everything except their own submit/cancel keys
	switch m.focus {
	case FocusSearch:
		return m.handleSearchKey(msg)
	case FocusFilter:
		return m.handleFilterKey(msg)
	}

	// Overlays, innermost first
	if m.detailOpen() {
		return m.handleDetailKey(msg)
	}
	if m.dialogOpen() {
		return m.handleDialogKey(msg)
	}

	return m.handleListKey(msg)
}

// handleSearchKey handles keys while the search input is focused
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Enter):
		m.focus = FocusList
		m.searchInput.Blur()
		m.cursor, m.offset = 0, 0
		m.pane = PaneResults
		return m, m.submitQuery(m.searchInput.Value())

	case key.Matches(msg, Keys.Escape):
		m.focus = FocusList
		m.searchInput.Blur()
		m.searchInput.SetValue(m.state.Search.Query)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// submitQuery commits the typed query. A non-empty query runs a fresh search;
// an empty one returns to curated content.
func (m Model) submitQuery(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" {
		return DispatchCmd(m.ctrl, controller.SetQueryAction{Query: text})
	}
	return DispatchSequenceCmd(m.ctrl,
		controller.SetQueryAction{Query: text},
		controller.SearchAction{Reset: true},
	)
}

// handleFilterKey handles keys while the local filter input is focused
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Enter):
		m.focus = FocusList
		m.filterInput.Blur()
		return m, nil

	case key.Matches(msg, Keys.Escape):
		m.focus = FocusList
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.refreshVisible()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.cursor, m.offset = 0, 0
	m.refreshVisible()
	return m, cmd
}

// handleDetailKey handles keys while the detail overlay is open
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		return m, DispatchCmd(m.ctrl, controller.ClearDetailAction{})

	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, Keys.Retry):
		if m.state.Detail.DetailError != "" {
			return m, DispatchCmd(m.ctrl, controller.LoadDetailAction{ID: m.state.Detail.ID})
		}
		return m, nil

	case key.Matches(msg, Keys.OpenIMDb):
		if item := m.state.Detail.Item; item != nil {
			return m, OpenURLCmd(m.opener, item.IMDbURL())
		}
		return m, nil

	case key.Matches(msg, Keys.OpenWebsite):
		if item := m.state.Detail.Item; item != nil && hasValue(item.Website) {
			return m, OpenURLCmd(m.opener, item.Website)
		}
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.detail.GotoTop()
		return m, nil

	case key.Matches(msg, Keys.End):
		m.detail.GotoBottom()
		return m, nil
	}

	// Scrolling
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleDialogKey handles keys while the selection dialog is open
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.state.Selected

	switch {
	case key.Matches(msg, Keys.Enter):
		return m, DispatchCmd(m.ctrl, controller.LoadDetailAction{ID: selected.ID})

	case key.Matches(msg, Keys.Escape):
		return m, DispatchCmd(m.ctrl, controller.CloseDialogAction{})

	case key.Matches(msg, Keys.OpenIMDb):
		return m, OpenURLCmd(m.opener, selected.IMDbURL())

	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// handleListKey handles keys on the main screen
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampOffset()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.focus = FocusSearch
		return m, m.searchInput.Focus()

	case key.Matches(msg, Keys.Filter):
		m.focus = FocusFilter
		m.pane = PaneResults
		return m, m.filterInput.Focus()

	case key.Matches(msg, Keys.Escape):
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.refreshVisible()
		}
		return m, nil

	case key.Matches(msg, Keys.Category):
		return m.switchCategory()

	case key.Matches(msg, Keys.Retry):
		return m, DispatchCmd(m.ctrl, controller.RetryAction{})

	case key.Matches(msg, Keys.Reset):
		m.searchInput.SetValue("")
		m.filterInput.SetValue("")
		m.cursor, m.offset, m.pane = 0, 0, PaneResults
		return m, DispatchSequenceCmd(m.ctrl, controller.ResetAction{}, controller.LoadCuratedAction{})

	case key.Matches(msg, Keys.SwitchPane):
		if m.pane == PaneResults && len(m.recentItems()) > 0 && !m.recentCollapsed() {
			m.pane = PaneRecent
		} else {
			m.pane = PaneResults
		}
		return m, nil

	case key.Matches(msg, Keys.ToggleRecent):
		if m.pane == PaneRecent {
			m.pane = PaneResults
		}
		return m, DispatchCmd(m.ctrl, controller.ToggleRecentAction{Bucket: m.state.Search.Category.Bucket()})

	case key.Matches(msg, Keys.ClearHistory):
		m.pane = PaneResults
		return m, DispatchCmd(m.ctrl, controller.ClearHistoryAction{})

	case key.Matches(msg, Keys.Enter):
		if item, ok := m.selectedItem(); ok {
			return m, DispatchCmd(m.ctrl, controller.SelectItemAction{Item: item})
		}
		return m, nil

	case key.Matches(msg, Keys.OpenIMDb):
		if item, ok := m.selectedItem(); ok {
			return m, OpenURLCmd(m.opener, item.IMDbURL())
		}
		return m, nil

	case key.Matches(msg, Keys.Up):
		return m.moveCursor(-1)
	case key.Matches(msg, Keys.Down):
		return m.moveCursor(1)
	case key.Matches(msg, Keys.PageUp):
		return m.moveCursor(-m.resultsHeight())
	case key.Matches(msg, Keys.PageDown):
		return m.moveCursor(m.resultsHeight())
	case key.Matches(msg, Keys.Home):
		return m.moveCursor(-len(m.visible))
	case key.Matches(msg, Keys.End):
		return m.moveCursor(len(m.visible))
	}
	return m, nil
}

// switchCategory flips between movies and series. With a query present the new
// category is searched right away; otherwise the controller loads curated content.
func (m Model) switchCategory() (tea.Model, tea.Cmd) {
	next := domain.CategorySeries
	if m.state.Search.Category == domain.CategorySeries {
		next = domain.CategoryMovie
	}
	m.cursor, m.offset, m.recentCursor = 0, 0, 0
	m.pane = PaneResults

	if strings.TrimSpace(m.state.Search.Query) == "" {
		return m, DispatchCmd(m.ctrl, controller.SetCategoryAction{Category: next})
	}
	return m, DispatchSequenceCmd(m.ctrl,
		controller.SetCategoryAction{Category: next},
		controller.SearchAction{Reset: true},
	)
}

// moveCursor moves within the focused pane. Reaching the last search result
// requests the next page.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if m.pane == PaneRecent {
		n := len(m.recentItems())
		m.recentCursor = clamp(m.recentCursor+delta, 0, max(n-1, 0))
		return m, nil
	}

	n := len(m.visible)
	if n == 0 {
		return m, nil
	}
	m.cursor = clamp(m.cursor+delta, 0, n-1)
	m.clampOffset()

	if m.cursor == n-1 && delta > 0 && m.wantsMore() {
		return m, DispatchCmd(m.ctrl, controller.LoadMoreAction{})
	}
	return m, nil
}

// wantsMore reports whether another search page should be requested
func (m Model) wantsMore() bool {
	s := m.state.Search
	return s.Mode == controller.ModeSearchResults && s.HasMore && !s.Loading &&
		strings.TrimSpace(m.filterInput.Value()) == ""
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
