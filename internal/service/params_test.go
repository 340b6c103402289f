package service

import (
	"context"
	"testing"
)

func TestParameterExtractor_PartialFields(t *testing.T) {
	gen := &fixedGenerator{reply: `{"check_in_date": "2025-03-01"}`, enabled: true}
	extractor := NewParameterExtractor(gen)

	update, err := extractor.Extract(context.Background(), "move check-in to March 1st")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if update.CheckInDate == nil || *update.CheckInDate != "2025-03-01" {
		t.Errorf("expected check-in 2025-03-01, got %v", update.CheckInDate)
	}
	if update.Location != nil || update.CheckOutDate != nil || update.NumAdults != nil {
		t.Errorf("unmentioned fields should stay absent: %+v", update)
	}
}

func TestParameterExtractor_JSONInMarkdownFence(t *testing.T) {
	gen := &fixedGenerator{reply: "```json\n{\"location\": \"Rome, Italy\", \"num_adults\": 3}\n```", enabled: true}
	extractor := NewParameterExtractor(gen)

	update, err := extractor.Extract(context.Background(), "try Rome for three of us")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if update.Location == nil || *update.Location != "Rome, Italy" {
		t.Errorf("expected location Rome, Italy, got %v", update.Location)
	}
	if update.NumAdults == nil || *update.NumAdults != 3 {
		t.Errorf("expected 3 adults, got %v", update.NumAdults)
	}
}

func TestParameterExtractor_DropsMalformedFields(t *testing.T) {
	gen := &fixedGenerator{
		reply:   `{"location": "", "check_in_date": "March 1st", "check_out_date": "2025-03-05", "num_adults": 0}`,
		enabled: true,
	}
	extractor := NewParameterExtractor(gen)

	update, err := extractor.Extract(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if update.Location != nil {
		t.Errorf("empty location should be dropped, got %v", *update.Location)
	}
	if update.CheckInDate != nil {
		t.Errorf("malformed check-in should be dropped, got %v", *update.CheckInDate)
	}
	if update.CheckOutDate == nil || *update.CheckOutDate != "2025-03-05" {
		t.Errorf("valid check-out should survive, got %v", update.CheckOutDate)
	}
	if update.NumAdults != nil {
		t.Errorf("zero adults should be dropped, got %v", *update.NumAdults)
	}
}

func TestParameterExtractor_UnparseableReply(t *testing.T) {
	gen := &fixedGenerator{reply: "I could not find any parameters, sorry!", enabled: true}
	extractor := NewParameterExtractor(gen)

	if _, err := extractor.Extract(context.Background(), "whatever"); err == nil {
		t.Fatal("expected an error for an unparseable reply")
	}
}
