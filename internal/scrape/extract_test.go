package scrape

import (
	"fmt"
	"strings"
	"testing"
)

// record builds one well-formed result unit in the shape the extractor scans
// for, with tail appended after the record.
func record(name, slug, score, label, reviews, stars, tail string) string {
	return fmt.Sprintf("[%s](/hotels/%s)\nsponsored badge\n%s %s (%s)\nfree cancellation\n%s stars\n%s",
		name, slug, score, label, reviews, stars, tail)
}

func TestExtractHotels_DocumentOrder(t *testing.T) {
	raw := strings.Join([]string{
		record("Hotel Alpha", "alpha", "8.4", "Excellent", "1532", "4", "₹ 9,200"),
		record("Hotel Beta", "beta", "7.1", "Good", "845", "3", "$ 120"),
		record("Hotel Gamma", "gamma", "9.0", "Wonderful", "210", "5", "€450"),
	}, "\n")

	hotels := ExtractHotels(raw, 5)
	if len(hotels) != 3 {
		t.Fatalf("expected 3 hotels, got %d", len(hotels))
	}

	wantNames := []string{"Hotel Alpha", "Hotel Beta", "Hotel Gamma"}
	for i, want := range wantNames {
		if hotels[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, hotels[i].Name)
		}
	}

	first := hotels[0]
	if first.Link != "https://www.kayak.co.in/hotels/alpha" {
		t.Errorf("unexpected link: %s", first.Link)
	}
	if first.Score != 8.4 {
		t.Errorf("expected score 8.4, got %v", first.Score)
	}
	if first.RatingLabel != "Excellent" {
		t.Errorf("expected label Excellent, got %q", first.RatingLabel)
	}
	if first.ReviewCount != 1532 {
		t.Errorf("expected 1532 reviews, got %d", first.ReviewCount)
	}
	if first.Stars != 4 {
		t.Errorf("expected 4 stars, got %d", first.Stars)
	}
	if first.Price != "₹ 9,200" {
		t.Errorf("expected price ₹ 9,200, got %q", first.Price)
	}
}

func TestExtractHotels_CapsAtMaxResults(t *testing.T) {
	var parts []string
	for i := 0; i < 8; i++ {
		parts = append(parts, record(fmt.Sprintf("Hotel %d", i), fmt.Sprintf("h%d", i), "8.0", "Good", "100", "3", ""))
	}
	raw := strings.Join(parts, "\n")

	hotels := ExtractHotels(raw, 5)
	if len(hotels) != 5 {
		t.Fatalf("expected 5 hotels, got %d", len(hotels))
	}
	// Extra matches are silently dropped, keeping the first five in order.
	if hotels[4].Name != "Hotel 4" {
		t.Errorf("expected Hotel 4 last, got %q", hotels[4].Name)
	}
}

func TestExtractHotels_NoMatches(t *testing.T) {
	hotels := ExtractHotels("no structured records anywhere in this text", 5)
	if len(hotels) != 0 {
		t.Fatalf("expected no hotels, got %d", len(hotels))
	}
}

func TestExtractHotels_PriceOutsideWindowIsNA(t *testing.T) {
	// The price figure sits past the look-ahead window after the record.
	raw := record("Far Price Hotel", "far", "8.0", "Good", "320", "4", strings.Repeat("x", 1200)+"₹ 5,000")

	hotels := ExtractHotels(raw, 5)
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}
	if hotels[0].Price != "N/A" {
		t.Errorf("expected N/A price, got %q", hotels[0].Price)
	}
}

func TestExtractHotels_TruncatesOversizedInput(t *testing.T) {
	rec := record("Hidden Hotel", "hidden", "8.0", "Good", "100", "3", "")

	beyond := strings.Repeat("x", maxScanBytes+50) + rec
	if got := ExtractHotels(beyond, 5); len(got) != 0 {
		t.Fatalf("expected record past the scan bound to be dropped, got %d", len(got))
	}

	within := strings.Repeat("x", maxScanBytes-len(rec)-10) + rec
	if got := ExtractHotels(within, 5); len(got) != 1 {
		t.Fatalf("expected record inside the scan bound to be found, got %d", len(got))
	}
}

func TestExtractHotels_PartialRecordNotCaptured(t *testing.T) {
	// Missing the star count; the pattern is all-or-nothing per record.
	raw := "[Half Hotel](/hotels/half)\n8.2 Good (431)\nno star line here"

	if got := ExtractHotels(raw, 5); len(got) != 0 {
		t.Fatalf("expected malformed record to be skipped, got %d", len(got))
	}
}

func TestRenderMarkdown(t *testing.T) {
	if out := RenderMarkdown(nil); !strings.Contains(out, "No hotels") {
		t.Errorf("empty result set should render a no-results notice, got %q", out)
	}

	raw := record("Hotel Alpha", "alpha", "8.4", "Excellent", "1532", "4", "₹ 9,200")
	out := RenderMarkdown(ExtractHotels(raw, 5))
	for _, want := range []string{"### Hotel Alpha", "4 stars", "8.4/10", "₹ 9,200", "https://www.kayak.co.in/hotels/alpha"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered markdown missing %q:\n%s", want, out)
		}
	}
}
