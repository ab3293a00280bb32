package nytimes

// ReviewsResponse is the payload of the movie reviews search endpoint
type ReviewsResponse struct {
	Status     string   `json:"status"`
	Copyright  string   `json:"copyright"`
	HasMore    bool     `json:"has_more"`
	NumResults int      `json:"num_results"`
	Results    []Review `json:"results"`
}

// Review is a single critic review
type Review struct {
	DisplayTitle    string      `json:"display_title"`
	MPAARating      string      `json:"mpaa_rating"`
	CriticsPick     int         `json:"critics_pick"` // 0 or 1
	Byline          string      `json:"byline"`
	Headline        string      `json:"headline"`
	SummaryShort    string      `json:"summary_short"`
	PublicationDate string      `json:"publication_date"`
	OpeningDate     string      `json:"opening_date"`
	DateUpdated     string      `json:"date_updated"`
	Link            *Link       `json:"link,omitempty"`
	Multimedia      *Multimedia `json:"multimedia,omitempty"`
}

// Link points at the full review
type Link struct {
	Type              string `json:"type"`
	URL               string `json:"url"`
	SuggestedLinkText string `json:"suggested_link_text"`
}

// Multimedia is the review's lead image
type Multimedia struct {
	Type   string `json:"type"`
	Src    string `json:"src"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}
