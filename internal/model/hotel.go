package model

// Hotel represents one structured record extracted from a search results page.
// Read-only downstream of the extractor.
type Hotel struct {
	Name        string  `json:"name"`
	Link        string  `json:"link"`
	Score       float64 `json:"score"`
	RatingLabel string  `json:"rating_label"`
	ReviewCount int     `json:"review_count"`
	Stars       int     `json:"stars"`
	Price       string  `json:"price"` // currency-formatted, or "N/A" when no price was found nearby
}
