package domain

import (
	"strings"
	"time"
)

// Category partitions content into movies and series
type Category string

const (
	CategoryMovie  Category = "movie"
	CategorySeries Category = "series"
)

// ParseCategory converts a user or API supplied token into a Category
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return CategoryMovie, true
	case "series", "show", "shows", "tv":
		return CategorySeries, true
	default:
		return "", false
	}
}

// Label returns the display label for the category tab
func (c Category) Label() string {
	if c == CategorySeries {
		return "Series"
	}
	return "Movies"
}

// Bucket returns the history bucket items of this category are recorded in
func (c Category) Bucket() Bucket {
	if c == CategoryMovie {
		return BucketMovies
	}
	return BucketSeries
}

// Bucket names a recently-viewed partition
type Bucket string

const (
	BucketMovies   Bucket = "movies"
	BucketSeries   Bucket = "series"
	BucketCombined Bucket = "combined"
)

// PosterUnavailable is the value OMDb uses when no poster exists
const PosterUnavailable = "N/A"

// Rating is a single (source, value) score pair, e.g. ("Rotten Tomatoes", "94%")
type Rating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Item is a search result or detail record.
// ID is the only field used for identity; everything else is display data.
type Item struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Year      string   `json:"year"`
	Category  Category `json:"category"`
	PosterURL string   `json:"posterUrl"`

	// Optional descriptive fields, populated by detail lookups
	Plot       string   `json:"plot,omitempty"`
	Director   string   `json:"director,omitempty"`
	Actors     string   `json:"actors,omitempty"`
	Runtime    string   `json:"runtime,omitempty"`
	Genre      string   `json:"genre,omitempty"`
	IMDbRating string   `json:"imdbRating,omitempty"`
	Released   string   `json:"released,omitempty"`
	Language   string   `json:"language,omitempty"`
	Country    string   `json:"country,omitempty"`
	Awards     string   `json:"awards,omitempty"`
	Writer     string   `json:"writer,omitempty"`
	Production string   `json:"production,omitempty"`
	Website    string   `json:"website,omitempty"`
	BoxOffice  string   `json:"boxOffice,omitempty"`
	Metascore  string   `json:"metascore,omitempty"`
	IMDbVotes  string   `json:"imdbVotes,omitempty"`
	DVD        string   `json:"dvd,omitempty"`
	Ratings    []Rating `json:"ratings,omitempty"`

	// Set only when the item is inserted into the recently-viewed history
	LastViewedAt *time.Time `json:"lastViewedAt,omitempty"`
}

// SameItem reports whether two items share an identity
func SameItem(a, b Item) bool {
	return a.ID == b.ID
}

// HasPoster returns true if the item carries a usable poster URL
func (i Item) HasPoster() bool {
	return i.PosterURL != "" && i.PosterURL != PosterUnavailable
}

// IMDbURL returns the public IMDb page for the item
func (i Item) IMDbURL() string {
	if i.ID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + i.ID + "/"
}

// Genres splits the comma separated genre field
func (i Item) Genres() []string {
	return splitList(i.Genre)
}

// Cast splits the comma separated actors field
func (i Item) Cast() []string {
	return splitList(i.Actors)
}

// Clone returns a deep copy so snapshots never alias controller state
func (i Item) Clone() Item {
	out := i
	if i.Ratings != nil {
		out.Ratings = append([]Rating(nil), i.Ratings...)
	}
	if i.LastViewedAt != nil {
		t := *i.LastViewedAt
		out.LastViewedAt = &t
	}
	return out
}

func splitList(s string) []string {
	if s == "" || s == "N/A" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CloneItems deep-copies a slice of items (nil stays nil)
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// ResultPage is one page of search results, or a synthetic page for curated content
type ResultPage struct {
	Items        []Item
	TotalResults int
	OK           bool   // upstream success flag
	Error        string // upstream error text when OK is false
	HasMore      bool
}

// ItemDetail is a full detail record. Not found is reported with OK=false, not an error.
type ItemDetail struct {
	Item  Item
	OK    bool
	Error string
}

// Review is a single critic review
type Review struct {
	Headline        string
	Summary         string
	Byline          string
	PublicationDate string
	CriticsPick     bool
	URL             string
}

// ReviewPage is the review list for a title
type ReviewPage struct {
	Reviews    []Review
	NumResults int
	HasMore    bool
}

// HealthReport reports reachability of both upstream services
type HealthReport struct {
	OMDb    bool
	Reviews bool
}

// History is the persisted recently-viewed layout
type History struct {
	Movies []Item `json:"movies"`
	Series []Item `json:"series"`
}
