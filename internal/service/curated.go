package service

import "github.com/mmcdole/flicks/internal/domain"

// curatedTitles are the well-known titles sampled for the landing page
var curatedTitles = map[domain.Category][]string{
	domain.CategoryMovie: {
		"The Shawshank Redemption",
		"The Godfather",
		"The Dark Knight",
		"Pulp Fiction",
		"Fight Club",
		"Forrest Gump",
		"Inception",
		"The Matrix",
		"Goodfellas",
		"The Lord of the Rings",
		"Star Wars",
		"Interstellar",
		"Parasite",
		"The Avengers",
		"Titanic",
	},
	domain.CategorySeries: {
		"Breaking Bad",
		"Game of Thrones",
		"The Office",
		"Friends",
		"Stranger Things",
		"The Crown",
		"House of Cards",
		"Sherlock",
		"The Sopranos",
		"Lost",
		"The Wire",
		"Fargo",
		"True Detective",
		"Westworld",
		"Better Call Saul",
	},
}

// CuratedTitles returns a copy of the curated title list for a category
func CuratedTitles(category domain.Category) []string {
	return append([]string(nil), curatedTitles[category]...)
}
