package omdb

import (
	"strconv"
	"strings"

	"github.com/mmcdole/flicks/internal/domain"
)

const responseTrue = "True"

// MapSearchPage converts a search payload to a domain result page.
// The total count is string-encoded upstream; an unparseable value counts as zero.
func MapSearchPage(resp SearchResponse) *domain.ResultPage {
	if resp.Response != responseTrue {
		return &domain.ResultPage{OK: false, Error: resp.Error}
	}

	items := make([]domain.Item, 0, len(resp.Search))
	for _, s := range resp.Search {
		items = append(items, mapSearchItem(s))
	}

	return &domain.ResultPage{
		Items:        items,
		TotalResults: parseCount(resp.TotalResults),
		OK:           true,
	}
}

func mapSearchItem(s SearchItem) domain.Item {
	return domain.Item{
		ID:        s.IMDbID,
		Title:     s.Title,
		Year:      s.Year,
		Category:  mapCategory(s.Type),
		PosterURL: s.Poster,
	}
}

// MapDetail converts a lookup payload to a domain detail record
func MapDetail(resp DetailResponse) *domain.ItemDetail {
	if resp.Response != responseTrue {
		return &domain.ItemDetail{OK: false, Error: resp.Error}
	}

	item := domain.Item{
		ID:         resp.IMDbID,
		Title:      resp.Title,
		Year:       resp.Year,
		Category:   mapCategory(resp.Type),
		PosterURL:  resp.Poster,
		Plot:       resp.Plot,
		Director:   resp.Director,
		Actors:     resp.Actors,
		Runtime:    resp.Runtime,
		Genre:      resp.Genre,
		IMDbRating: resp.IMDbRating,
		Released:   resp.Released,
		Language:   resp.Language,
		Country:    resp.Country,
		Awards:     resp.Awards,
		Writer:     resp.Writer,
		Production: resp.Production,
		Website:    resp.Website,
		BoxOffice:  resp.BoxOffice,
		Metascore:  resp.Metascore,
		IMDbVotes:  resp.IMDbVotes,
		DVD:        resp.DVD,
	}

	if len(resp.Ratings) > 0 {
		item.Ratings = make([]domain.Rating, 0, len(resp.Ratings))
		for _, r := range resp.Ratings {
			item.Ratings = append(item.Ratings, domain.Rating{Source: r.Source, Value: r.Value})
		}
	}

	return &domain.ItemDetail{Item: item, OK: true}
}

// mapCategory folds OMDb's type token ("movie", "series", "episode", "game") into a Category
func mapCategory(t string) domain.Category {
	if strings.EqualFold(t, "movie") {
		return domain.CategoryMovie
	}
	return domain.CategorySeries
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
