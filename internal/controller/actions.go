package controller

import (
	"context"
	"fmt"

	"github.com/mmcdole/flicks/internal/domain"
)

// Action is a user intent. The set of variants is closed.
type Action interface {
	isAction()
}

type (
	// SetQueryAction updates the query text
	SetQueryAction struct{ Query string }

	// SetCategoryAction switches between movies and series
	SetCategoryAction struct{ Category domain.Category }

	// SearchAction runs a search, from page 1 when Reset is set
	SearchAction struct{ Reset bool }

	// LoadMoreAction fetches the next search page if there is one
	LoadMoreAction struct{}

	// LoadCuratedAction fetches the curated batch for the current category
	LoadCuratedAction struct{}

	// RetryAction re-runs the last list fetch for the current mode
	RetryAction struct{}

	// SelectItemAction opens an item in the dialog and records it as viewed
	SelectItemAction struct{ Item domain.Item }

	// CloseDialogAction closes the dialog
	CloseDialogAction struct{}

	// ToggleRecentAction collapses or expands a recently-viewed bucket
	ToggleRecentAction struct{ Bucket domain.Bucket }

	// LoadDetailAction opens the detail view for an id
	LoadDetailAction struct{ ID string }

	// ClearDetailAction tears down the detail view
	ClearDetailAction struct{}

	// ClearHistoryAction empties the recently-viewed history
	ClearHistoryAction struct{}

	// ResetAction restores the initial list and detail state
	ResetAction struct{}
)

func (SetQueryAction) isAction()     {}
func (SetCategoryAction) isAction()  {}
func (SearchAction) isAction()       {}
func (LoadMoreAction) isAction()     {}
func (LoadCuratedAction) isAction()  {}
func (RetryAction) isAction()        {}
func (SelectItemAction) isAction()   {}
func (CloseDialogAction) isAction()  {}
func (ToggleRecentAction) isAction() {}
func (LoadDetailAction) isAction()   {}
func (ClearDetailAction) isAction()  {}
func (ClearHistoryAction) isAction() {}
func (ResetAction) isAction()        {}

// Dispatch runs the transition for an action. It blocks until any network call completes.
func (c *Controller) Dispatch(ctx context.Context, action Action) {
	switch a := action.(type) {
	case SetQueryAction:
		c.SetQuery(ctx, a.Query)
	case SetCategoryAction:
		c.SetCategory(ctx, a.Category)
	case SearchAction:
		c.Search(ctx, a.Reset)
	case LoadMoreAction:
		c.LoadMore(ctx)
	case LoadCuratedAction:
		c.LoadCurated(ctx)
	case RetryAction:
		c.Retry(ctx)
	case SelectItemAction:
		c.SelectItem(a.Item)
	case CloseDialogAction:
		c.CloseDialog()
	case ToggleRecentAction:
		c.ToggleRecent(a.Bucket)
	case LoadDetailAction:
		c.LoadDetail(ctx, a.ID)
	case ClearDetailAction:
		c.ClearDetail()
	case ClearHistoryAction:
		c.ClearHistory()
	case ResetAction:
		c.Reset()
	default:
		c.logger.Warn("unknown action", "type", fmt.Sprintf("%T", action))
	}
}
