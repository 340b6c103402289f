package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"hotelfinder/internal/model"
)

const (
	// maxScanBytes bounds the text considered by the extractor, a safety
	// limit against pathological scrape payloads.
	maxScanBytes = 70000

	// priceWindowBytes is how far past each record match to look for a price.
	priceWindowBytes = 1000
)

var (
	// hotelPattern matches one structural record unit in the page text:
	// display name, detail link, score, rating label, review count and star
	// count in that order, with arbitrary intervening text. All-or-nothing:
	// a unit missing any field is not captured at all.
	hotelPattern = regexp.MustCompile(`(?s)\[(.*?)\]\((/hotels/.*?)\).*?(\d\.\d)\s+([A-Za-z]+)\s+\((\d{2,6})\).*?(\d+)\s+stars`)

	pricePattern = regexp.MustCompile(`([₹$€£]\s*[\d,]+)`)
)

// ExtractHotels scans raw page text for hotel records in document order and
// returns at most maxResults of them. Zero matches is a normal outcome and
// yields an empty slice, not an error.
func ExtractHotels(raw string, maxResults int) []model.Hotel {
	if len(raw) > maxScanBytes {
		raw = raw[:maxScanBytes]
	}

	matches := hotelPattern.FindAllStringSubmatchIndex(raw, -1)

	var hotels []model.Hotel
	for _, m := range matches {
		if len(hotels) >= maxResults {
			break
		}

		score, _ := strconv.ParseFloat(raw[m[6]:m[7]], 64)
		reviews, _ := strconv.Atoi(raw[m[10]:m[11]])
		stars, _ := strconv.Atoi(raw[m[12]:m[13]])

		hotels = append(hotels, model.Hotel{
			Name:        strings.TrimSpace(raw[m[2]:m[3]]),
			Link:        kayakBaseURL + strings.TrimSpace(raw[m[4]:m[5]]),
			Score:       score,
			RatingLabel: strings.TrimSpace(raw[m[8]:m[9]]),
			ReviewCount: reviews,
			Stars:       stars,
			Price:       priceAfter(raw, m[1]),
		})
	}

	return hotels
}

// priceAfter searches the bounded window following a record match for a
// currency-prefixed figure. A record without one is still valid; its price is
// the "N/A" sentinel.
func priceAfter(raw string, from int) string {
	to := min(from+priceWindowBytes, len(raw))
	if pm := pricePattern.FindString(raw[from:to]); pm != "" {
		return strings.Join(strings.Fields(pm), " ")
	}
	return "N/A"
}

// RenderMarkdown renders extracted records as the result text fed to the
// summarizer. An empty set renders an explicit no-results notice.
func RenderMarkdown(hotels []model.Hotel) string {
	if len(hotels) == 0 {
		return "No hotels were found in the search results."
	}

	blocks := make([]string, 0, len(hotels))
	for _, h := range hotels {
		blocks = append(blocks, fmt.Sprintf(
			"### %s\n- %d stars | %.1f/10 %s (%d reviews)\n- Price from: %s\n- [View Deal](%s)",
			h.Name, h.Stars, h.Score, h.RatingLabel, h.ReviewCount, h.Price, h.Link))
	}

	return strings.Join(blocks, "\n\n")
}
