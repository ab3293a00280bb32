package tui

import (
	"strings"

	"github.com/mmcdole/flicks/internal/domain"
	"github.com/sahilm/fuzzy"
)

// visibleItem is a result row after local filtering
type visibleItem struct {
	Index   int   // position in the controller's result list
	Matched []int // byte offsets of matched characters in the title
}

// titleSource exposes lower-cased result titles to the fuzzy matcher
type titleSource []domain.Item

func (s titleSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

// filterItems narrows items to fuzzy title matches, best first.
// An empty query keeps every item in its original order.
func filterItems(items []domain.Item, query string) []visibleItem {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]visibleItem, len(items))
		for i := range items {
			out[i] = visibleItem{Index: i}
		}
		return out
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), titleSource(items))
	out := make([]visibleItem, len(matches))
	for i, match := range matches {
		out[i] = visibleItem{Index: match.Index, Matched: match.MatchedIndexes}
	}
	return out
}
