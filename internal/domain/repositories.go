package domain

import (
	"context"
)

// CatalogRepository provides access to the metadata search service
type CatalogRepository interface {
	// Search returns one page of keyword search results.
	// A payload with a false success flag is returned as ResultPage{OK: false}.
	Search(ctx context.Context, keyword string, category Category, page int) (*ResultPage, error)

	// GetByID returns the full detail record (full-length plot) for an item id
	GetByID(ctx context.Context, id string) (*ItemDetail, error)

	// GetByTitle returns the best match for an exact title within a category
	GetByTitle(ctx context.Context, title string, category Category) (*ItemDetail, error)
}

// ReviewRepository provides critic reviews for a title
type ReviewRepository interface {
	// Reviews returns reviews ordered by publication date, newest first
	Reviews(ctx context.Context, title string) (*ReviewPage, error)
}

// HealthChecker is implemented by repositories that can probe their upstream
type HealthChecker interface {
	Ping(ctx context.Context) error
}
