package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"hotelfinder/internal/model"
)

const kayakBaseURL = "https://www.kayak.co.in"

// SearchURL builds the Kayak hotel results URL for a search request.
// Deterministic string composition; validity of the request is the caller's
// entry contract.
func SearchURL(req model.SearchRequest) string {
	location := url.PathEscape(strings.TrimSpace(req.Location))
	return fmt.Sprintf("%s/hotels/%s/%s/%s/%dadults",
		kayakBaseURL, location, req.CheckInDate, req.CheckOutDate, req.NumAdults)
}
