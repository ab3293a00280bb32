package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flicks/internal/controller"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/tui/styles"
)

// Focus is the widget receiving key presses
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
	FocusFilter
)

// Pane is the list the cursor moves in
type Pane int

const (
	PaneResults Pane = iota
	PaneRecent
)

// Layout
const (
	HeaderHeight     = 4 // title and tabs, search line, filter line, rule
	FooterHeight     = 2 // status line, help line
	MaxRecentRows    = 5
	MinResultsHeight = 3
)

// Model is the main Bubble Tea model for the application
type Model struct {
	ctrl        Controller
	observer    *ChannelObserver
	unsubscribe func()
	opener      URLOpener
	logger      *slog.Logger

	// Latest controller snapshot
	state controller.State

	// UI components
	searchInput textinput.Model
	filterInput textinput.Model
	spinner     spinner.Model
	help        help.Model
	detail      viewport.Model

	// UI state
	focus        Focus
	pane         Pane
	cursor       int // index into visible
	offset       int
	recentCursor int
	visible      []visibleItem

	// Dimensions
	Width  int
	Height int
	Ready  bool

	StatusMsg   string
	StatusIsErr bool

	now func() time.Time
}

// NewModel creates the application model and subscribes it to the controller
func NewModel(ctrl Controller, opener URLOpener, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	search := textinput.New()
	search.Placeholder = "Search movies and series..."
	search.CharLimit = 100
	search.Width = 40
	search.Prompt = "Search: "
	search.PromptStyle = styles.AccentStyle
	search.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	search.PlaceholderStyle = styles.DimStyle

	filter := textinput.New()
	filter.Placeholder = "Type to filter..."
	filter.CharLimit = 100
	filter.Width = 40
	filter.Prompt = "Filter: "
	filter.PromptStyle = styles.FilterPromptStyle
	filter.PlaceholderStyle = styles.DimStyle

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	obs := NewChannelObserver()
	m := Model{
		ctrl:        ctrl,
		observer:    obs,
		unsubscribe: ctrl.Subscribe(obs),
		opener:      opener,
		logger:      logger,
		state:       ctrl.Snapshot(),
		searchInput: search,
		filterInput: filter,
		spinner:     spin,
		help:        help.New(),
		detail:      viewport.New(0, 0),
		now:         time.Now,
	}
	m.refreshVisible()
	return m
}

// Close detaches the model from the controller
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForStateCmd(m.ctrl, m.observer),
		DispatchCmd(m.ctrl, controller.LoadCuratedAction{}),
		m.spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case StateMsg:
		m.applyState(msg.State)
		return m, WaitForStateCmd(m.ctrl, m.observer)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case BrowserOpenedMsg:
		if msg.Err != nil {
			m.logger.Error("failed to open url", "url", msg.URL, "error", msg.Err)
			m.StatusMsg = "Could not open browser"
			m.StatusIsErr = true
		} else {
			m.StatusMsg = "Opened " + msg.URL
			m.StatusIsErr = false
		}
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	cmds = append(cmds, cmd)
	m.filterInput, cmd = m.filterInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// applyState installs a new snapshot and keeps the cursors and detail view in range
func (m *Model) applyState(s controller.State) {
	prevDetail := m.state.Detail.ID
	m.state = s

	if m.focus != FocusSearch && m.searchInput.Value() != s.Search.Query {
		m.searchInput.SetValue(s.Search.Query)
	}

	m.refreshVisible()

	if n := len(m.recentItems()); m.recentCursor >= n {
		m.recentCursor = max(n-1, 0)
	}
	if m.pane == PaneRecent && len(m.recentItems()) == 0 {
		m.pane = PaneResults
	}

	m.detail.SetContent(RenderDetail(s.Detail, m.detail.Width))
	if s.Detail.ID != prevDetail {
		m.detail.GotoTop()
	}
}

// refreshVisible re-applies the local filter and clamps the cursor
func (m *Model) refreshVisible() {
	m.visible = filterItems(m.state.Search.Results, m.filterInput.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	height := m.resultsHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// updateLayout sizes components after a resize
func (m *Model) updateLayout() {
	inputWidth := max(m.Width-12, 10)
	m.searchInput.Width = inputWidth
	m.filterInput.Width = inputWidth
	m.help.Width = m.Width

	m.detail.Width = max(m.Width-6, 10)
	m.detail.Height = max(m.Height-FooterHeight-4, 3)
	m.detail.SetContent(RenderDetail(m.state.Detail, m.detail.Width))

	m.clampOffset()
}

// recentItems returns the recently-viewed items of the active category
func (m Model) recentItems() []domain.Item {
	if m.state.Search.Category == domain.CategorySeries {
		return m.state.Recent.Series
	}
	return m.state.Recent.Movies
}

// recentCollapsed reports whether the active category's recent strip is collapsed
func (m Model) recentCollapsed() bool {
	return m.state.Collapsed[m.state.Search.Category.Bucket()]
}

// recentRows is the number of lines the recent strip occupies
func (m Model) recentRows() int {
	items := m.recentItems()
	if len(items) == 0 {
		return 0
	}
	if m.recentCollapsed() {
		return 1
	}
	return 1 + min(len(items), MaxRecentRows)
}

// resultsHeight is the number of result rows that fit on screen
func (m Model) resultsHeight() int {
	h := m.Height - HeaderHeight - FooterHeight - m.recentRows() - 2 // summary line, spacer
	if m.help.ShowAll {
		h -= 4
	}
	return max(h, MinResultsHeight)
}

// selectedItem returns the item under the cursor in the focused pane
func (m Model) selectedItem() (domain.Item, bool) {
	if m.pane == PaneRecent {
		items := m.recentItems()
		if m.recentCursor < len(items) {
			return items[m.recentCursor], true
		}
		return domain.Item{}, false
	}
	if m.cursor < len(m.visible) {
		idx := m.visible[m.cursor].Index
		if idx < len(m.state.Search.Results) {
			return m.state.Search.Results[idx], true
		}
	}
	return domain.Item{}, false
}

// detailOpen reports whether the detail overlay is showing
func (m Model) detailOpen() bool {
	return m.state.Detail.ID != ""
}

// dialogOpen reports whether the selection dialog is showing
func (m Model) dialogOpen() bool {
	return m.state.DialogOpen && m.state.Selected != nil
}

// State returns the latest snapshot the model has rendered
func (m Model) State() controller.State {
	return m.state
}
