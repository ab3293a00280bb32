package controller

import "github.com/mmcdole/flicks/internal/domain"

// PageSize is the upstream search page size
const PageSize = 10

// Mode distinguishes browsing curated content from paging through search results
type Mode int

const (
	ModeCurated Mode = iota
	ModeSearchResults
)

func (m Mode) String() string {
	if m == ModeSearchResults {
		return "search"
	}
	return "curated"
}

// SearchState is the list slice of the controller state
type SearchState struct {
	Query        string
	Category     domain.Category
	Page         int // next page to request, 1-based
	Results      []domain.Item
	TotalResults int
	Loading      bool
	HasMore      bool
	Error        string
	Mode         Mode
}

// DetailState is the single open detail view
type DetailState struct {
	ID             string
	Item           *domain.Item
	Reviews        []domain.Review
	DetailLoading  bool
	ReviewsLoading bool
	DetailError    string
}

// State is a complete, independent snapshot of the controller
type State struct {
	Search     SearchState
	Selected   *domain.Item
	DialogOpen bool
	Detail     DetailState

	// Recently viewed, owned by the ledger
	Recent    domain.History
	Collapsed map[domain.Bucket]bool
}

func initialSearch(category domain.Category) SearchState {
	return SearchState{
		Category: category,
		Page:     1,
		Mode:     ModeCurated,
	}
}

func (s SearchState) clone() SearchState {
	out := s
	out.Results = domain.CloneItems(s.Results)
	return out
}

func (d DetailState) clone() DetailState {
	out := d
	out.Item = cloneItemPtr(d.Item)
	if d.Reviews != nil {
		out.Reviews = make([]domain.Review, len(d.Reviews))
		copy(out.Reviews, d.Reviews)
	}
	return out
}

func cloneItemPtr(item *domain.Item) *domain.Item {
	if item == nil {
		return nil
	}
	c := item.Clone()
	return &c
}
