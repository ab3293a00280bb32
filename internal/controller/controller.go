// Package controller owns the observable search, selection and detail state.
//
// Every transition runs to completion under the controller lock; gateway calls happen
// outside it. List fetches are guarded by the loading flag and fenced by a session token,
// so a response that arrives after the query, category or state was reset is dropped.
package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/history"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mmcdole/flicks/internal/controller Gateway

// Gateway is the remote data boundary the controller drives
type Gateway interface {
	SearchByKeyword(ctx context.Context, keyword string, category domain.Category, page int) (*domain.ResultPage, error)
	FetchDetail(ctx context.Context, id string) (*domain.ItemDetail, error)
	FetchCuratedBatch(ctx context.Context, category domain.Category) (*domain.ResultPage, error)
	FetchReviews(ctx context.Context, title string) (*domain.ReviewPage, error)
}

// Observer is notified with a fresh snapshot after every state change
type Observer interface {
	StateChanged(State)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(State)

func (f ObserverFunc) StateChanged(s State) { f(s) }

const (
	msgNoResults      = "No results found"
	msgSearchFailed   = "Failed to search"
	msgCuratedFailed  = "Failed to load popular content"
	msgDetailFailed   = "Failed to load details"
	msgDetailNotFound = "Title not found"
)

// Controller is the process-wide content state machine
type Controller struct {
	gateway         Gateway
	ledger          *history.Ledger
	logger          *slog.Logger
	defaultCategory domain.Category

	mu         sync.Mutex
	search     SearchState
	selected   *domain.Item
	dialogOpen bool
	detail     DetailState

	session   uint64 // bumped when in-flight list responses become stale
	detailGen uint64 // bumped when in-flight detail responses become stale

	obsMu     sync.RWMutex
	observers map[int]Observer
	nextObs   int
}

// New creates a controller in curated mode for category
func New(gateway Gateway, ledger *history.Ledger, category domain.Category, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if ledger == nil {
		ledger = history.NewLedger(nil, logger)
	}
	if category != domain.CategorySeries {
		category = domain.CategoryMovie
	}
	return &Controller{
		gateway:         gateway,
		ledger:          ledger,
		logger:          logger,
		defaultCategory: category,
		search:          initialSearch(category),
		observers:       make(map[int]Observer),
	}
}

// Subscribe registers an observer and returns a function that removes it
func (c *Controller) Subscribe(o Observer) (unsubscribe func()) {
	c.obsMu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = o
	c.obsMu.Unlock()

	return func() {
		c.obsMu.Lock()
		delete(c.observers, id)
		c.obsMu.Unlock()
	}
}

// Snapshot returns a deep copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	s := State{
		Search:     c.search.clone(),
		Selected:   cloneItemPtr(c.selected),
		DialogOpen: c.dialogOpen,
		Detail:     c.detail.clone(),
	}
	c.mu.Unlock()

	s.Recent = c.ledger.History()
	s.Collapsed = c.ledger.CollapsedFlags()
	return s
}

func (c *Controller) notify() {
	c.obsMu.RLock()
	if len(c.observers) == 0 {
		c.obsMu.RUnlock()
		return
	}
	observers := make([]Observer, 0, len(c.observers))
	for _, o := range c.observers {
		observers = append(observers, o)
	}
	c.obsMu.RUnlock()

	s := c.Snapshot()
	for _, o := range observers {
		o.StateChanged(s)
	}
}

// newSessionLocked invalidates every in-flight list request
func (c *Controller) newSessionLocked() {
	c.session++
	c.search.Loading = false
}

func (c *Controller) resetListLocked() {
	c.search.Results = nil
	c.search.Page = 1
	c.search.TotalResults = 0
	c.search.HasMore = false
	c.search.Error = ""
}

// SetQuery updates the query text. An empty query switches to curated mode and loads it.
func (c *Controller) SetQuery(ctx context.Context, text string) {
	c.mu.Lock()
	trimmed := strings.TrimSpace(text)
	if trimmed != strings.TrimSpace(c.search.Query) {
		c.newSessionLocked()
	}
	c.search.Query = text

	if trimmed != "" {
		c.mu.Unlock()
		c.notify()
		return
	}

	c.search.Mode = ModeCurated
	c.resetListLocked()
	c.mu.Unlock()
	c.notify()

	c.LoadCurated(ctx)
}

// SetCategory switches category and clears the list. With an empty query it loads the
// curated batch for the new category; otherwise the caller decides whether to search.
func (c *Controller) SetCategory(ctx context.Context, category domain.Category) {
	c.mu.Lock()
	c.newSessionLocked()
	c.search.Category = category
	c.resetListLocked()
	queryEmpty := strings.TrimSpace(c.search.Query) == ""
	if queryEmpty {
		c.search.Mode = ModeCurated
	}
	c.mu.Unlock()
	c.notify()

	if queryEmpty {
		c.LoadCurated(ctx)
	}
}

// Search fetches the next page of results for the current query, or page 1 when reset is set.
// With an empty query it loads the curated batch instead. Dropped while a fetch is in flight.
func (c *Controller) Search(ctx context.Context, reset bool) {
	c.mu.Lock()
	query := strings.TrimSpace(c.search.Query)
	if query == "" {
		c.mu.Unlock()
		c.LoadCurated(ctx)
		return
	}
	if c.search.Loading {
		c.mu.Unlock()
		c.logger.Debug("search dropped, fetch in flight", "query", query)
		return
	}

	c.search.Mode = ModeSearchResults
	c.search.Loading = true
	c.search.Error = ""
	if reset {
		c.search.Results = nil
		c.search.Page = 1
	}
	session := c.session
	category := c.search.Category
	page := c.search.Page
	c.mu.Unlock()
	c.notify()

	result, err := c.gateway.SearchByKeyword(ctx, query, category, page)

	c.mu.Lock()
	if session != c.session {
		c.mu.Unlock()
		c.logger.Debug("discarding stale search response", "query", query, "page", page)
		return
	}
	c.search.Loading = false

	switch {
	case err != nil:
		c.failSearchLocked(domain.UserMessage(err, msgSearchFailed), reset)
	case !result.OK:
		msg := result.Error
		if msg == "" {
			msg = msgNoResults
		}
		c.failSearchLocked(msg, reset)
	default:
		c.search.Results = append(c.search.Results, domain.CloneItems(result.Items)...)
		c.search.TotalResults = result.TotalResults
		c.search.HasMore = page*PageSize < result.TotalResults
		c.search.Page = page + 1
		c.search.Error = ""
	}
	c.mu.Unlock()
	c.notify()
}

// failSearchLocked records a failed page; prior pages stay visible unless this was a reset
func (c *Controller) failSearchLocked(msg string, reset bool) {
	c.search.Error = msg
	c.search.HasMore = false
	if reset {
		c.search.Results = nil
	}
}

// LoadMore fetches the next search page. It is a no-op while loading, without more pages,
// or in curated mode.
func (c *Controller) LoadMore(ctx context.Context) {
	c.mu.Lock()
	ready := !c.search.Loading && c.search.HasMore && c.search.Mode == ModeSearchResults
	c.mu.Unlock()

	if !ready {
		return
	}
	c.Search(ctx, false)
}

// LoadCurated replaces the list with a curated batch for the current category
func (c *Controller) LoadCurated(ctx context.Context) {
	c.mu.Lock()
	if c.search.Loading {
		c.mu.Unlock()
		c.logger.Debug("curated load dropped, fetch in flight")
		return
	}
	c.search.Mode = ModeCurated
	c.search.Loading = true
	c.search.Error = ""
	session := c.session
	category := c.search.Category
	c.mu.Unlock()
	c.notify()

	result, err := c.gateway.FetchCuratedBatch(ctx, category)

	c.mu.Lock()
	if session != c.session {
		c.mu.Unlock()
		c.logger.Debug("discarding stale curated response", "category", category)
		return
	}
	c.search.Loading = false
	c.search.HasMore = false

	switch {
	case err != nil:
		c.search.Error = domain.UserMessage(err, msgCuratedFailed)
	case !result.OK:
		c.search.Error = result.Error
		if c.search.Error == "" {
			c.search.Error = msgCuratedFailed
		}
	default:
		c.search.Results = domain.CloneItems(result.Items)
		c.search.TotalResults = len(result.Items)
		c.search.Page = 1
		c.search.Error = ""
	}
	c.mu.Unlock()
	c.notify()
}

// Retry re-runs the list fetch for the current mode
func (c *Controller) Retry(ctx context.Context) {
	c.mu.Lock()
	searching := c.search.Mode == ModeSearchResults && strings.TrimSpace(c.search.Query) != ""
	c.mu.Unlock()

	if searching {
		c.Search(ctx, true)
		return
	}
	c.LoadCurated(ctx)
}

// SelectItem opens the dialog for item and records it as viewed
func (c *Controller) SelectItem(item domain.Item) {
	c.mu.Lock()
	c.selected = cloneItemPtr(&item)
	c.dialogOpen = true
	c.mu.Unlock()

	c.ledger.Record(item)
	c.notify()
}

// CloseDialog clears the selection
func (c *Controller) CloseDialog() {
	c.mu.Lock()
	c.selected = nil
	c.dialogOpen = false
	c.mu.Unlock()
	c.notify()
}

// ToggleRecent flips the collapse flag of a recently-viewed bucket
func (c *Controller) ToggleRecent(bucket domain.Bucket) {
	c.ledger.ToggleCollapsed(bucket)
	c.notify()
}

// ClearHistory empties the recently-viewed history
func (c *Controller) ClearHistory() {
	c.ledger.Clear()
	c.notify()
}

// Reset restores the initial list, selection and detail state.
// History and collapse flags are kept; in-flight responses are dropped.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.newSessionLocked()
	c.detailGen++
	c.search = initialSearch(c.defaultCategory)
	c.selected = nil
	c.dialogOpen = false
	c.detail = DetailState{}
	c.mu.Unlock()
	c.notify()
}
