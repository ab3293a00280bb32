package nytimes

import "github.com/mmcdole/flicks/internal/domain"

// MapReviews converts a reviews payload to a domain review page
func MapReviews(resp ReviewsResponse) *domain.ReviewPage {
	reviews := make([]domain.Review, 0, len(resp.Results))
	for _, r := range resp.Results {
		review := domain.Review{
			Headline:        r.Headline,
			Summary:         r.SummaryShort,
			Byline:          r.Byline,
			PublicationDate: r.PublicationDate,
			CriticsPick:     r.CriticsPick == 1,
		}
		if r.Link != nil {
			review.URL = r.Link.URL
		}
		reviews = append(reviews, review)
	}

	return &domain.ReviewPage{
		Reviews:    reviews,
		NumResults: len(reviews),
		HasMore:    resp.HasMore,
	}
}
