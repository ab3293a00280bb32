package controller

import (
	"context"

	"github.com/mmcdole/flicks/internal/domain"
)

// LoadDetail opens the detail view for id: the full record first, then its reviews.
// A found record is recorded as viewed. Review failures never surface as an error.
func (c *Controller) LoadDetail(ctx context.Context, id string) {
	c.mu.Lock()
	c.detailGen++
	gen := c.detailGen
	c.detail = DetailState{ID: id, DetailLoading: true}
	c.mu.Unlock()
	c.notify()

	detail, err := c.gateway.FetchDetail(ctx, id)

	c.mu.Lock()
	if gen != c.detailGen {
		c.mu.Unlock()
		c.logger.Debug("discarding stale detail response", "id", id)
		return
	}
	c.detail.DetailLoading = false

	if err != nil || !detail.OK {
		c.detail.DetailError = detailErrorMessage(detail, err)
		c.mu.Unlock()
		c.notify()
		return
	}

	item := detail.Item.Clone()
	c.detail.Item = &item
	c.detail.ReviewsLoading = true
	c.mu.Unlock()

	c.ledger.Record(item)
	c.notify()

	reviews, err := c.gateway.FetchReviews(ctx, item.Title)
	if err != nil {
		c.logger.Warn("reviews unavailable", "id", id, "error", err)
	}

	c.mu.Lock()
	if gen != c.detailGen {
		c.mu.Unlock()
		c.logger.Debug("discarding stale reviews response", "id", id)
		return
	}
	c.detail.ReviewsLoading = false
	c.detail.Reviews = []domain.Review{}
	if err == nil && reviews != nil {
		c.detail.Reviews = append(c.detail.Reviews, reviews.Reviews...)
	}
	c.mu.Unlock()
	c.notify()
}

// ClearDetail tears down the detail view and drops any in-flight detail response
func (c *Controller) ClearDetail() {
	c.mu.Lock()
	c.detailGen++
	c.detail = DetailState{}
	c.mu.Unlock()
	c.notify()
}

func detailErrorMessage(detail *domain.ItemDetail, err error) string {
	if err != nil {
		return domain.UserMessage(err, msgDetailFailed)
	}
	if detail.Error != "" {
		return detail.Error
	}
	return msgDetailNotFound
}
