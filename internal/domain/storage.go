package domain

// HistoryStore persists the recently-viewed history as a single blob.
type HistoryStore interface {
	// LoadHistory returns the stored history. ok is false when nothing has been stored yet.
	// A corrupt blob is reported as an error.
	LoadHistory() (History, bool, error)

	// SaveHistory replaces the stored history
	SaveHistory(h History) error

	// ClearHistory removes the stored history
	ClearHistory() error

	Close() error
}
