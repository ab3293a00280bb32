package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/mmcdole/flicks/internal/domain"
)

const (
	// CuratedSampleSize is the number of curated titles looked up per batch
	CuratedSampleSize = 15

	healthProbeTimeout = 5 * time.Second
)

// NoPopularContent is the failure text of a curated batch with no survivors
const NoPopularContent = "No popular content available"

// Gateway is the single boundary for outbound calls to the catalog and review services
type Gateway struct {
	catalog domain.CatalogRepository
	reviews domain.ReviewRepository
	logger  *slog.Logger

	shuffle    func([]string)
	sampleSize int
}

// GatewayOption configures a Gateway
type GatewayOption func(*Gateway)

// WithShuffle replaces the curated title shuffle
func WithShuffle(shuffle func([]string)) GatewayOption {
	return func(g *Gateway) {
		g.shuffle = shuffle
	}
}

// WithSampleSize overrides how many curated titles are looked up per batch
func WithSampleSize(n int) GatewayOption {
	return func(g *Gateway) {
		if n > 0 {
			g.sampleSize = n
		}
	}
}

// NewGateway creates a gateway. reviews may be nil, in which case every title has zero reviews.
func NewGateway(catalog domain.CatalogRepository, reviews domain.ReviewRepository, logger *slog.Logger, opts ...GatewayOption) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Gateway{
		catalog:    catalog,
		reviews:    reviews,
		logger:     logger,
		shuffle:    shuffleTitles,
		sampleSize: CuratedSampleSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func shuffleTitles(titles []string) {
	rand.Shuffle(len(titles), func(i, j int) {
		titles[i], titles[j] = titles[j], titles[i]
	})
}

// SearchByKeyword returns one page of search results for a trimmed, non-empty keyword
func (g *Gateway) SearchByKeyword(ctx context.Context, keyword string, category domain.Category, page int) (*domain.ResultPage, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", domain.ErrInvalidInput)
	}
	if page < 1 {
		page = 1
	}

	result, err := g.catalog.Search(ctx, keyword, category, page)
	if err != nil {
		g.logger.Error("search failed", "query", keyword, "category", category, "page", page, "error", err)
		return nil, err
	}

	g.logger.Info("search completed", "query", keyword, "category", category, "page", page,
		"count", len(result.Items), "total", result.TotalResults, "ok", result.OK)
	return result, nil
}

// FetchDetail returns the full record for an item. Not found is reported as ItemDetail{OK: false}.
func (g *Gateway) FetchDetail(ctx context.Context, id string) (*domain.ItemDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: item id cannot be empty", domain.ErrInvalidInput)
	}

	detail, err := g.catalog.GetByID(ctx, id)
	if err != nil {
		g.logger.Error("detail fetch failed", "id", id, "error", err)
		return nil, err
	}
	if !detail.OK {
		g.logger.Info("detail not found", "id", id, "reason", detail.Error)
	}
	return detail, nil
}

// FetchCuratedBatch looks up a random sample of curated titles concurrently.
// Individual failures are dropped; the batch only fails when nothing survives.
func (g *Gateway) FetchCuratedBatch(ctx context.Context, category domain.Category) (*domain.ResultPage, error) {
	titles := CuratedTitles(category)
	g.shuffle(titles)
	if len(titles) > g.sampleSize {
		titles = titles[:g.sampleSize]
	}

	tasks := make([]func(context.Context) (domain.Item, error), len(titles))
	for i, title := range titles {
		tasks[i] = func(ctx context.Context) (domain.Item, error) {
			detail, err := g.catalog.GetByTitle(ctx, title, category)
			if err != nil {
				return domain.Item{}, err
			}
			if !detail.OK {
				return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrNotFound, title)
			}
			return detail.Item, nil
		}
	}

	outcomes := settleAll(ctx, CuratedSampleSize, tasks)
	items := successes(outcomes)

	for i, o := range outcomes {
		if o.Err != nil {
			g.logger.Debug("curated lookup dropped", "title", titles[i], "error", o.Err)
		}
	}
	g.logger.Info("curated batch settled", "category", category, "requested", len(tasks), "succeeded", len(items))

	if len(items) == 0 {
		return &domain.ResultPage{OK: false, Error: NoPopularContent}, nil
	}

	return &domain.ResultPage{
		Items:        items,
		TotalResults: len(items),
		OK:           true,
		HasMore:      false,
	}, nil
}

// FetchReviews returns critic reviews for a title.
// Every upstream failure, including not found, degrades to an empty page.
func (g *Gateway) FetchReviews(ctx context.Context, title string) (*domain.ReviewPage, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: movie title cannot be empty", domain.ErrInvalidInput)
	}

	if g.reviews == nil {
		return emptyReviews(), nil
	}

	page, err := g.reviews.Reviews(ctx, title)
	if err != nil {
		g.logger.Warn("reviews unavailable", "title", title, "error", err)
		return emptyReviews(), nil
	}
	if page == nil {
		return emptyReviews(), nil
	}
	if page.Reviews == nil {
		page.Reviews = []domain.Review{}
	}
	return page, nil
}

func emptyReviews() *domain.ReviewPage {
	return &domain.ReviewPage{Reviews: []domain.Review{}}
}

// CheckHealth probes both upstream services concurrently
func (g *Gateway) CheckHealth(ctx context.Context) domain.HealthReport {
	probes := []func(context.Context) (bool, error){
		func(ctx context.Context) (bool, error) { return g.probe(ctx, "omdb", g.catalog) },
		func(ctx context.Context) (bool, error) { return g.probe(ctx, "reviews", g.reviews) },
	}

	outcomes := settleAll(ctx, len(probes), probes)
	return domain.HealthReport{
		OMDb:    outcomes[0].Value,
		Reviews: outcomes[1].Value,
	}
}

func (g *Gateway) probe(ctx context.Context, name string, repo any) (bool, error) {
	checker, ok := repo.(domain.HealthChecker)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	if err := checker.Ping(ctx); err != nil {
		g.logger.Warn("health probe failed", "service", name, "error", err)
		return false, err
	}
	return true, nil
}
