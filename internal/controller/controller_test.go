package controller

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/flicks/internal/adapter"
	"github.com/mmcdole/flicks/internal/controller/mocks"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/history"
)

type fixture struct {
	c      *Controller
	gw     *mocks.MockGateway
	ledger *history.Ledger
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	ledger := history.NewLedger(nil, adapter.NullLogger())
	return fixture{
		c:      New(gw, ledger, domain.CategoryMovie, adapter.NullLogger()),
		gw:     gw,
		ledger: ledger,
	}
}

func items(prefix string, n int, category domain.Category) []domain.Item {
	out := make([]domain.Item, n)
	for i := range out {
		id := fmt.Sprintf("%s%02d", prefix, i)
		out[i] = domain.Item{ID: id, Title: "Title " + id, Category: category}
	}
	return out
}

func resultPage(list []domain.Item, total int) *domain.ResultPage {
	return &domain.ResultPage{Items: list, TotalResults: total, OK: true}
}

func ids(list []domain.Item) []string {
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = item.ID
	}
	return out
}

// recorder collects every snapshot an observer receives
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) StateChanged(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) all() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

func TestNew_InitialState(t *testing.T) {
	f := newFixture(t)

	s := f.c.Snapshot()

	assert.Equal(t, ModeCurated, s.Search.Mode)
	assert.Equal(t, domain.CategoryMovie, s.Search.Category)
	assert.Equal(t, 1, s.Search.Page)
	assert.False(t, s.Search.Loading)
	assert.Empty(t, s.Search.Results)
	assert.False(t, s.DialogOpen)
	assert.Nil(t, s.Detail.Item)
}

func TestSearch_PaginationScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 1).
			Return(resultPage(items("p1-", 10, domain.CategoryMovie), 25), nil),
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 2).
			Return(resultPage(items("p2-", 10, domain.CategoryMovie), 25), nil),
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 3).
			Return(resultPage(items("p3-", 5, domain.CategoryMovie), 25), nil),
	)

	f.c.SetQuery(ctx, "batman")
	f.c.Search(ctx, true)

	s := f.c.Snapshot().Search
	assert.Equal(t, ModeSearchResults, s.Mode)
	assert.Len(t, s.Results, 10)
	assert.True(t, s.HasMore)
	assert.Equal(t, 2, s.Page)

	f.c.LoadMore(ctx)
	s = f.c.Snapshot().Search
	assert.Len(t, s.Results, 20)
	assert.True(t, s.HasMore)
	assert.Equal(t, 3, s.Page)

	f.c.LoadMore(ctx)
	s = f.c.Snapshot().Search
	assert.Len(t, s.Results, 25)
	assert.False(t, s.HasMore)
	assert.Equal(t, 25, s.TotalResults)
	assert.Empty(t, s.Error)

	// No more pages: no further network call
	f.c.LoadMore(ctx)
	assert.Len(t, f.c.Snapshot().Search.Results, 25)
}

func TestSearch_AppendsInRequestOrderWithoutDedup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pages := [][]domain.Item{
		items("a", 10, domain.CategoryMovie),
		items("b", 10, domain.CategoryMovie),
		items("a", 3, domain.CategoryMovie), // upstream repeats ids
	}
	var want []string
	for i, p := range pages {
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "dune", domain.CategoryMovie, i+1).
			Return(resultPage(p, 100), nil)
		want = append(want, ids(p)...)
	}

	f.c.SetQuery(ctx, "dune")
	f.c.Search(ctx, true)
	f.c.Search(ctx, false)
	f.c.Search(ctx, false)

	assert.Equal(t, want, ids(f.c.Snapshot().Search.Results))
}

func TestSearch_EmptyQueryLoadsCurated(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
		Return(resultPage(items("c", 4, domain.CategoryMovie), 4), nil)

	f.c.Search(context.Background(), true)

	s := f.c.Snapshot().Search
	assert.Equal(t, ModeCurated, s.Mode)
	assert.Len(t, s.Results, 4)
}

func TestSearch_NoResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.gw.EXPECT().SearchByKeyword(gomock.Any(), "zzzz", domain.CategoryMovie, 1).
		Return(&domain.ResultPage{OK: false, Error: "Movie not found!"}, nil)
	f.gw.EXPECT().SearchByKeyword(gomock.Any(), "qqqq", domain.CategoryMovie, 1).
		Return(&domain.ResultPage{OK: false}, nil)

	f.c.SetQuery(ctx, "zzzz")
	f.c.Search(ctx, true)
	s := f.c.Snapshot().Search
	assert.Equal(t, "Movie not found!", s.Error)
	assert.False(t, s.HasMore)
	assert.Empty(t, s.Results)
	assert.False(t, s.Loading)

	f.c.SetQuery(ctx, "qqqq")
	f.c.Search(ctx, true)
	assert.Equal(t, "No results found", f.c.Snapshot().Search.Error)
}

func TestSearch_FailedIncrementalPageKeepsResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "alien", domain.CategoryMovie, 1).
			Return(resultPage(items("a", 10, domain.CategoryMovie), 25), nil),
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "alien", domain.CategoryMovie, 2).
			Return(nil, fmt.Errorf("omdb: %w", domain.ErrRateLimited)),
	)

	f.c.SetQuery(ctx, "alien")
	f.c.Search(ctx, true)
	f.c.LoadMore(ctx)

	s := f.c.Snapshot().Search
	assert.Len(t, s.Results, 10)
	assert.False(t, s.HasMore)
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, "API rate limit exceeded, please try again later", s.Error)
}

func TestSearch_FailedResetClearsResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "alien", domain.CategoryMovie, 1).
			Return(resultPage(items("a", 10, domain.CategoryMovie), 25), nil),
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "alien", domain.CategoryMovie, 1).
			Return(nil, domain.ErrAuthFailed),
	)

	f.c.SetQuery(ctx, "alien")
	f.c.Search(ctx, true)
	f.c.Search(ctx, true)

	s := f.c.Snapshot().Search
	assert.Empty(t, s.Results)
	assert.Equal(t, "Invalid API key, please check your configuration", s.Error)
}

func TestSearch_LoadingClearsPreviousError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "alien", domain.CategoryMovie, 1).
			Return(nil, domain.ErrNetworkUnavailable),
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "alien", domain.CategoryMovie, 1).
			Return(resultPage(items("a", 3, domain.CategoryMovie), 3), nil),
	)

	f.c.SetQuery(ctx, "alien")
	f.c.Search(ctx, true)
	require.NotEmpty(t, f.c.Snapshot().Search.Error)

	rec := &recorder{}
	f.c.Subscribe(rec)
	f.c.Search(ctx, true)

	states := rec.all()
	require.Len(t, states, 2)
	assert.True(t, states[0].Search.Loading)
	assert.Empty(t, states[0].Search.Error)
	assert.Empty(t, states[1].Search.Error)
	assert.Len(t, states[1].Search.Results, 3)
}

func TestLoadCurated_LoadingClearsPreviousError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
			Return(nil, domain.ErrTimeout),
		f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
			Return(resultPage(items("c", 2, domain.CategoryMovie), 2), nil),
	)

	f.c.LoadCurated(ctx)
	require.NotEmpty(t, f.c.Snapshot().Search.Error)

	rec := &recorder{}
	f.c.Subscribe(rec)
	f.c.LoadCurated(ctx)

	states := rec.all()
	require.Len(t, states, 2)
	assert.True(t, states[0].Search.Loading)
	assert.Empty(t, states[0].Search.Error)
}

func TestLoadMore_WhileLoadingIsDropped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 1).
			Return(resultPage(items("p1-", 10, domain.CategoryMovie), 25), nil),
		f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 2).
			DoAndReturn(func(context.Context, string, domain.Category, int) (*domain.ResultPage, error) {
				close(started)
				<-release
				return resultPage(items("p2-", 10, domain.CategoryMovie), 25), nil
			}).Times(1),
	)

	f.c.SetQuery(ctx, "batman")
	f.c.Search(ctx, true)

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.c.LoadMore(ctx)
	}()
	<-started

	before := f.c.Snapshot()
	require.True(t, before.Search.Loading)

	f.c.LoadMore(ctx)
	f.c.Search(ctx, false)
	f.c.LoadCurated(ctx)

	assert.Equal(t, before, f.c.Snapshot())

	close(release)
	<-done
	assert.Len(t, f.c.Snapshot().Search.Results, 20)
}

func TestSearch_StaleResponseIsDiscarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 1).
		DoAndReturn(func(context.Context, string, domain.Category, int) (*domain.ResultPage, error) {
			close(started)
			<-release
			return resultPage(items("bat", 10, domain.CategoryMovie), 30), nil
		})
	f.gw.EXPECT().SearchByKeyword(gomock.Any(), "superman", domain.CategoryMovie, 1).
		Return(resultPage(items("sup", 3, domain.CategoryMovie), 3), nil)

	f.c.SetQuery(ctx, "batman")
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.c.Search(ctx, true)
	}()
	<-started

	f.c.SetQuery(ctx, "superman")
	assert.False(t, f.c.Snapshot().Search.Loading, "a new session is not blocked by the stale fetch")

	f.c.Search(ctx, true)
	close(release)
	<-done

	s := f.c.Snapshot().Search
	assert.Equal(t, "superman", s.Query)
	assert.Equal(t, ids(items("sup", 3, domain.CategoryMovie)), ids(s.Results))
	assert.False(t, s.HasMore)
}

func TestSetQuery_SameTrimmedTextKeepsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 1).
		Return(resultPage(items("a", 10, domain.CategoryMovie), 25), nil)

	f.c.SetQuery(ctx, "batman")
	f.c.Search(ctx, true)
	f.c.SetQuery(ctx, "batman ")

	s := f.c.Snapshot().Search
	assert.Len(t, s.Results, 10)
	assert.True(t, s.HasMore)
	assert.Equal(t, "batman ", s.Query)
}

func TestSetQuery_EmptyAlwaysReturnsToCurated(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f fixture)
	}{
		{
			name: "from search results",
			setup: func(f fixture) {
				gomock.InOrder(
					f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 1).
						Return(resultPage(items("a", 10, domain.CategoryMovie), 25), nil),
					f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 2).
						Return(resultPage(items("b", 10, domain.CategoryMovie), 25), nil),
				)
				f.c.SetQuery(context.Background(), "batman")
				f.c.Search(context.Background(), true)
				f.c.LoadMore(context.Background())
			},
		},
		{
			name: "from an error",
			setup: func(f fixture) {
				f.gw.EXPECT().SearchByKeyword(gomock.Any(), "batman", domain.CategoryMovie, 1).
					Return(nil, domain.ErrTimeout)
				f.c.SetQuery(context.Background(), "batman")
				f.c.Search(context.Background(), true)
			},
		},
		{
			name:  "from curated",
			setup: func(f fixture) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
				Return(resultPage(items("c", 15, domain.CategoryMovie), 15), nil)

			rec := &recorder{}
			f.c.Subscribe(rec)
			f.c.SetQuery(context.Background(), "   ")

			states := rec.all()
			require.NotEmpty(t, states)
			cleared := states[0].Search
			assert.Equal(t, ModeCurated, cleared.Mode)
			assert.Empty(t, cleared.Results)
			assert.Equal(t, 1, cleared.Page)
			assert.Empty(t, cleared.Error)

			final := f.c.Snapshot().Search
			assert.Equal(t, ModeCurated, final.Mode)
			assert.Len(t, final.Results, 15)
			assert.False(t, final.HasMore)
		})
	}
}

func TestLoadCurated_NeverHasMore(t *testing.T) {
	for _, n := range []int{1, 10, 15} {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			f := newFixture(t)
			f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
				Return(&domain.ResultPage{Items: items("c", n, domain.CategoryMovie), TotalResults: 1000, OK: true, HasMore: true}, nil)

			f.c.LoadCurated(context.Background())

			s := f.c.Snapshot().Search
			assert.False(t, s.HasMore)
			assert.Len(t, s.Results, n)
			assert.Empty(t, s.Error)

			// loadMore is a no-op in curated mode
			f.c.LoadMore(context.Background())
		})
	}
}

func TestLoadCurated_Failure(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
		Return(&domain.ResultPage{OK: false, Error: "No popular content available"}, nil)

	f.c.LoadCurated(context.Background())

	s := f.c.Snapshot().Search
	assert.Equal(t, "No popular content available", s.Error)
	assert.False(t, s.HasMore)
	assert.False(t, s.Loading)
}

func TestSetCategory(t *testing.T) {
	t.Run("empty query loads curated for the new category", func(t *testing.T) {
		f := newFixture(t)
		f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategorySeries).
			Return(resultPage(items("s", 5, domain.CategorySeries), 5), nil)

		f.c.SetCategory(context.Background(), domain.CategorySeries)

		s := f.c.Snapshot().Search
		assert.Equal(t, domain.CategorySeries, s.Category)
		assert.Len(t, s.Results, 5)
	})

	t.Run("with a query the caller decides", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		gomock.InOrder(
			f.gw.EXPECT().SearchByKeyword(gomock.Any(), "office", domain.CategoryMovie, 1).
				Return(resultPage(items("m", 10, domain.CategoryMovie), 25), nil),
			f.gw.EXPECT().SearchByKeyword(gomock.Any(), "office", domain.CategorySeries, 1).
				Return(resultPage(items("s", 2, domain.CategorySeries), 2), nil),
		)

		f.c.SetQuery(ctx, "office")
		f.c.Search(ctx, true)
		f.c.SetCategory(ctx, domain.CategorySeries)

		s := f.c.Snapshot().Search
		assert.Empty(t, s.Results)
		assert.Equal(t, 1, s.Page)
		assert.False(t, s.HasMore)

		f.c.Search(ctx, true)
		assert.Len(t, f.c.Snapshot().Search.Results, 2)
	})
}

func TestRetry(t *testing.T) {
	t.Run("search mode re-runs search from page one", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		gomock.InOrder(
			f.gw.EXPECT().SearchByKeyword(gomock.Any(), "heat", domain.CategoryMovie, 1).
				Return(nil, domain.ErrNetworkUnavailable),
			f.gw.EXPECT().SearchByKeyword(gomock.Any(), "heat", domain.CategoryMovie, 1).
				Return(resultPage(items("h", 3, domain.CategoryMovie), 3), nil),
		)

		f.c.SetQuery(ctx, "heat")
		f.c.Search(ctx, true)
		require.NotEmpty(t, f.c.Snapshot().Search.Error)

		f.c.Retry(ctx)

		s := f.c.Snapshot().Search
		assert.Empty(t, s.Error)
		assert.Len(t, s.Results, 3)
	})

	t.Run("curated mode reloads curated", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
				Return(nil, domain.ErrTimeout),
			f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
				Return(resultPage(items("c", 2, domain.CategoryMovie), 2), nil),
		)

		f.c.LoadCurated(context.Background())
		assert.Equal(t, "Request timeout, please try again", f.c.Snapshot().Search.Error)

		f.c.Retry(context.Background())
		assert.Len(t, f.c.Snapshot().Search.Results, 2)
	})
}

func TestSelectItem_RecordsHistory(t *testing.T) {
	f := newFixture(t)
	item := domain.Item{ID: "tt0111161", Title: "The Shawshank Redemption", Category: domain.CategoryMovie}

	f.c.SelectItem(item)

	s := f.c.Snapshot()
	assert.True(t, s.DialogOpen)
	require.NotNil(t, s.Selected)
	assert.Equal(t, item.ID, s.Selected.ID)
	require.Len(t, s.Recent.Movies, 1)
	assert.Equal(t, item.ID, s.Recent.Movies[0].ID)
	assert.NotNil(t, s.Recent.Movies[0].LastViewedAt)

	f.c.CloseDialog()
	s = f.c.Snapshot()
	assert.False(t, s.DialogOpen)
	assert.Nil(t, s.Selected)
	assert.Len(t, s.Recent.Movies, 1)
}

func TestLoadDetail_Success(t *testing.T) {
	f := newFixture(t)
	item := domain.Item{ID: "tt1375666", Title: "Inception", Category: domain.CategoryMovie, Plot: "A thief..."}

	gomock.InOrder(
		f.gw.EXPECT().FetchDetail(gomock.Any(), "tt1375666").
			Return(&domain.ItemDetail{Item: item, OK: true}, nil),
		f.gw.EXPECT().FetchReviews(gomock.Any(), "Inception").
			Return(&domain.ReviewPage{Reviews: []domain.Review{{Headline: "Dreams"}, {Headline: "Layers"}}, NumResults: 2}, nil),
	)

	f.c.LoadDetail(context.Background(), "tt1375666")

	s := f.c.Snapshot()
	require.NotNil(t, s.Detail.Item)
	assert.Equal(t, "A thief...", s.Detail.Item.Plot)
	assert.Len(t, s.Detail.Reviews, 2)
	assert.False(t, s.Detail.DetailLoading)
	assert.False(t, s.Detail.ReviewsLoading)
	assert.Empty(t, s.Detail.DetailError)
	assert.Equal(t, []string{"tt1375666"}, ids(s.Recent.Movies))
}

func TestLoadDetail_ReviewsNotFound(t *testing.T) {
	f := newFixture(t)
	item := domain.Item{ID: "tt1375666", Title: "Inception", Category: domain.CategoryMovie}

	f.gw.EXPECT().FetchDetail(gomock.Any(), "tt1375666").
		Return(&domain.ItemDetail{Item: item, OK: true}, nil)
	// the gateway degrades a 404 to an empty page
	f.gw.EXPECT().FetchReviews(gomock.Any(), "Inception").
		Return(&domain.ReviewPage{Reviews: []domain.Review{}}, nil)

	f.c.LoadDetail(context.Background(), "tt1375666")

	s := f.c.Snapshot()
	assert.False(t, s.Detail.ReviewsLoading)
	assert.NotNil(t, s.Detail.Reviews)
	assert.Empty(t, s.Detail.Reviews)
	assert.Empty(t, s.Detail.DetailError)
	assert.Empty(t, s.Search.Error)
}

func TestDetailState_CloneKeepsEmptyReviews(t *testing.T) {
	empty := DetailState{ID: "tt1375666", Reviews: []domain.Review{}}.clone()
	assert.NotNil(t, empty.Reviews, "fetched with no reviews stays distinct from not fetched")
	assert.Empty(t, empty.Reviews)

	assert.Nil(t, DetailState{ID: "tt1375666"}.clone().Reviews)

	src := DetailState{Reviews: []domain.Review{{Headline: "Dream Logic"}}}
	cloned := src.clone()
	cloned.Reviews[0].Headline = "mutated"
	assert.Equal(t, "Dream Logic", src.Reviews[0].Headline)
}

func TestLoadDetail_Failures(t *testing.T) {
	tests := []struct {
		name   string
		detail *domain.ItemDetail
		err    error
		want   string
	}{
		{name: "not found", detail: &domain.ItemDetail{OK: false, Error: "Incorrect IMDb ID."}, want: "Incorrect IMDb ID."},
		{name: "not found without text", detail: &domain.ItemDetail{OK: false}, want: "Title not found"},
		{name: "timeout", err: fmt.Errorf("omdb: %w", domain.ErrTimeout), want: "Request timeout, please try again"},
		{name: "unknown", err: domain.ErrUnknown, want: "Failed to load details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gw.EXPECT().FetchDetail(gomock.Any(), "tt0000000").Return(tt.detail, tt.err)

			f.c.LoadDetail(context.Background(), "tt0000000")

			s := f.c.Snapshot()
			assert.Equal(t, tt.want, s.Detail.DetailError)
			assert.False(t, s.Detail.DetailLoading)
			assert.Nil(t, s.Detail.Item)
			assert.Empty(t, s.Recent.Movies)
		})
	}
}

func TestLoadDetail_ClearedWhileInFlight(t *testing.T) {
	f := newFixture(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.gw.EXPECT().FetchDetail(gomock.Any(), "tt1375666").
		DoAndReturn(func(context.Context, string) (*domain.ItemDetail, error) {
			close(started)
			<-release
			return &domain.ItemDetail{Item: domain.Item{ID: "tt1375666", Title: "Inception", Category: domain.CategoryMovie}, OK: true}, nil
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.c.LoadDetail(context.Background(), "tt1375666")
	}()
	<-started
	f.c.ClearDetail()
	close(release)
	<-done

	s := f.c.Snapshot()
	assert.Equal(t, DetailState{}, s.Detail)
	assert.Empty(t, s.Recent.Movies)
}

func TestClearDetail(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchDetail(gomock.Any(), "x").Return(&domain.ItemDetail{OK: false, Error: "nope"}, nil)

	f.c.LoadDetail(context.Background(), "x")
	f.c.ClearDetail()

	assert.Equal(t, DetailState{}, f.c.Snapshot().Detail)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchCuratedBatch(gomock.Any(), domain.CategoryMovie).
		Return(resultPage(items("c", 2, domain.CategoryMovie), 2), nil)
	f.c.LoadCurated(context.Background())

	s := f.c.Snapshot()
	s.Search.Results[0].Title = "mutated"
	s.Collapsed[domain.BucketMovies] = true

	fresh := f.c.Snapshot()
	assert.NotEqual(t, "mutated", fresh.Search.Results[0].Title)
	assert.False(t, fresh.Collapsed[domain.BucketMovies])
}

func TestSubscribe(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	unsubscribe := f.c.Subscribe(rec)

	f.c.SelectItem(domain.Item{ID: "a", Category: domain.CategoryMovie})
	f.c.CloseDialog()
	require.Len(t, rec.all(), 2)
	assert.True(t, rec.all()[0].DialogOpen)
	assert.False(t, rec.all()[1].DialogOpen)

	unsubscribe()
	f.c.SelectItem(domain.Item{ID: "b", Category: domain.CategoryMovie})
	assert.Len(t, rec.all(), 2)
}

func TestDispatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := domain.Item{ID: "tt0903747", Title: "Breaking Bad", Category: domain.CategorySeries}

	f.gw.EXPECT().SearchByKeyword(gomock.Any(), "breaking", domain.CategoryMovie, 1).
		Return(resultPage([]domain.Item{item}, 1), nil)

	f.c.Dispatch(ctx, SetQueryAction{Query: "breaking"})
	f.c.Dispatch(ctx, SearchAction{Reset: true})
	f.c.Dispatch(ctx, LoadMoreAction{})
	f.c.Dispatch(ctx, SelectItemAction{Item: item})
	f.c.Dispatch(ctx, ToggleRecentAction{Bucket: domain.BucketSeries})

	s := f.c.Snapshot()
	assert.Len(t, s.Search.Results, 1)
	assert.True(t, s.DialogOpen)
	assert.Equal(t, []string{"tt0903747"}, ids(s.Recent.Series))
	assert.True(t, s.Collapsed[domain.BucketSeries])

	f.c.Dispatch(ctx, CloseDialogAction{})
	f.c.Dispatch(ctx, ClearHistoryAction{})
	s = f.c.Snapshot()
	assert.False(t, s.DialogOpen)
	assert.Empty(t, s.Recent.Series)
}

func TestReset_KeepsHistoryAndCollapseFlags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.gw.EXPECT().SearchByKeyword(gomock.Any(), "heat", domain.CategoryMovie, 1).
		Return(resultPage(items("h", 10, domain.CategoryMovie), 40), nil)

	f.c.SetQuery(ctx, "heat")
	f.c.Search(ctx, true)
	f.c.SelectItem(domain.Item{ID: "h00", Category: domain.CategoryMovie})
	f.c.ToggleRecent(domain.BucketCombined)

	f.c.Dispatch(ctx, ResetAction{})

	s := f.c.Snapshot()
	assert.Equal(t, initialSearch(domain.CategoryMovie), s.Search)
	assert.False(t, s.DialogOpen)
	assert.Len(t, s.Recent.Movies, 1)
	assert.True(t, s.Collapsed[domain.BucketCombined])
}
