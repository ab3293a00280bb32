package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/flicks/internal/adapter"
	"github.com/mmcdole/flicks/internal/adapter/source/nytimes"
	"github.com/mmcdole/flicks/internal/adapter/source/omdb"
	"github.com/mmcdole/flicks/internal/domain"
)

// Catalog is the metadata backend: search, lookups and a health probe
type Catalog interface {
	domain.CatalogRepository
	domain.HealthChecker
}

// ReviewSource is the critic review backend
type ReviewSource interface {
	domain.ReviewRepository
	domain.HealthChecker
}

// Sources bundles both upstream clients. Reviews is nil when no review API key is configured.
type Sources struct {
	Catalog Catalog
	Reviews ReviewSource
}

// NewSources creates both upstream clients from the application config
func NewSources(cfg *adapter.Config, logger *slog.Logger) (*Sources, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.OMDb.APIKey == "" {
		return nil, fmt.Errorf("OMDb API key is required")
	}
	if cfg.OMDb.BaseURL == "" {
		return nil, fmt.Errorf("OMDb base URL is required")
	}

	catalog := omdb.NewClient(cfg.OMDb.BaseURL, cfg.OMDb.APIKey,
		logger.With("component", "omdb"),
		omdb.WithTimeout(cfg.OMDb.Timeout))

	sources := &Sources{Catalog: catalog}

	// Reviews are optional enrichment
	if cfg.Reviews.APIKey != "" {
		sources.Reviews = nytimes.NewClient(cfg.Reviews.BaseURL, cfg.Reviews.APIKey,
			logger.With("component", "nytimes"),
			nytimes.WithTimeout(cfg.Reviews.Timeout))
	}

	return sources, nil
}
