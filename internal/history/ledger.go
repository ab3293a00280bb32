// Package history maintains the recently-viewed ledger: two bounded, newest-first,
// per-category lists of items that are written through to a HistoryStore on every change.
package history

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/flicks/internal/domain"
)

// Capacity is the maximum number of entries kept per category
const Capacity = 10

// Ledger is the recently-viewed history
type Ledger struct {
	store  domain.HistoryStore
	logger *slog.Logger
	now    func() time.Time

	mu        sync.RWMutex
	movies    []domain.Item
	series    []domain.Item
	collapsed map[domain.Bucket]bool
}

// Option configures a Ledger
type Option func(*Ledger)

// WithClock replaces the timestamp source
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger creates a ledger and restores it from store.
// A nil store keeps history in memory; a missing or unreadable blob starts empty.
func NewLedger(store domain.HistoryStore, logger *slog.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{
		store:     store,
		logger:    logger,
		now:       time.Now,
		collapsed: make(map[domain.Bucket]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.restore()
	return l
}

func (l *Ledger) restore() {
	if l.store == nil {
		return
	}

	h, ok, err := l.store.LoadHistory()
	if err != nil {
		l.logger.Warn("discarding unreadable history", "error", err)
		return
	}
	if !ok {
		return
	}

	l.movies = truncate(h.Movies)
	l.series = truncate(h.Series)
	l.logger.Debug("history restored", "movies", len(l.movies), "series", len(l.series))
}

// Record moves item to the front of its category bucket, stamped with the current time.
// Re-recording an id never duplicates it; the oldest entries beyond Capacity are dropped.
func (l *Ledger) Record(item domain.Item) {
	stamped := item.Clone()
	now := l.now()
	stamped.LastViewedAt = &now

	l.mu.Lock()
	bucket := l.bucket(item.Category.Bucket())
	updated := make([]domain.Item, 0, len(*bucket)+1)
	updated = append(updated, stamped)
	for _, existing := range *bucket {
		if !domain.SameItem(existing, stamped) {
			updated = append(updated, existing)
		}
	}
	*bucket = truncate(updated)
	l.persistLocked()
	l.mu.Unlock()
}

// Clear empties both buckets and removes the stored blob
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.movies = nil
	l.series = nil

	if l.store == nil {
		return
	}
	if err := l.store.ClearHistory(); err != nil {
		l.logger.Warn("failed to clear history", "error", err)
	}
}

// Items returns a copy of a bucket. The combined bucket merges both categories, newest first.
func (l *Ledger) Items(b domain.Bucket) []domain.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	switch b {
	case domain.BucketMovies:
		return domain.CloneItems(l.movies)
	case domain.BucketSeries:
		return domain.CloneItems(l.series)
	default:
		return l.combinedLocked()
	}
}

// History returns a copy of both buckets
func (l *Ledger) History() domain.History {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.historyLocked()
}

// ToggleCollapsed flips the display-only collapse flag of a bucket and returns the new value
func (l *Ledger) ToggleCollapsed(b domain.Bucket) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.collapsed[b] = !l.collapsed[b]
	return l.collapsed[b]
}

// CollapsedFlags returns a copy of every collapse flag
func (l *Ledger) CollapsedFlags() map[domain.Bucket]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[domain.Bucket]bool, len(l.collapsed))
	for k, v := range l.collapsed {
		out[k] = v
	}
	return out
}

// Find fuzzy-matches query against the titles of both buckets, best match first.
// An empty query returns the combined history.
func (l *Ledger) Find(query string) []domain.Item {
	items := l.Items(domain.BucketCombined)
	if query == "" {
		return items
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.Stable(ranks)

	out := make([]domain.Item, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, items[r.OriginalIndex])
	}
	return out
}

func (l *Ledger) bucket(b domain.Bucket) *[]domain.Item {
	if b == domain.BucketMovies {
		return &l.movies
	}
	return &l.series
}

func (l *Ledger) historyLocked() domain.History {
	return domain.History{
		Movies: nonNil(domain.CloneItems(l.movies)),
		Series: nonNil(domain.CloneItems(l.series)),
	}
}

func (l *Ledger) combinedLocked() []domain.Item {
	out := make([]domain.Item, 0, len(l.movies)+len(l.series))
	out = append(out, domain.CloneItems(l.movies)...)
	out = append(out, domain.CloneItems(l.series)...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastViewedAt, out[j].LastViewedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	return out
}

// persistLocked writes both buckets through to the store; failures are logged only
func (l *Ledger) persistLocked() {
	if l.store == nil {
		return
	}
	if err := l.store.SaveHistory(l.historyLocked()); err != nil {
		l.logger.Warn("failed to persist history", "error", err)
	}
}

func truncate(items []domain.Item) []domain.Item {
	if len(items) > Capacity {
		return items[:Capacity]
	}
	return items
}

func nonNil(items []domain.Item) []domain.Item {
	if items == nil {
		return []domain.Item{}
	}
	return items
}
