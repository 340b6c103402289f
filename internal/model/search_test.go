package model

import (
	"testing"
)

func TestSearchRequestValidate(t *testing.T) {
	valid := SearchRequest{
		Location:     "Cairo, Egypt",
		CheckInDate:  "2025-05-01",
		CheckOutDate: "2025-05-04",
		NumAdults:    2,
	}

	tests := []struct {
		name    string
		mutate  func(r *SearchRequest)
		wantErr bool
	}{
		{name: "valid request", mutate: func(r *SearchRequest) {}},
		{name: "empty location", mutate: func(r *SearchRequest) { r.Location = "" }, wantErr: true},
		{name: "bad check-in format", mutate: func(r *SearchRequest) { r.CheckInDate = "May 1st" }, wantErr: true},
		{name: "bad check-out format", mutate: func(r *SearchRequest) { r.CheckOutDate = "05/04/2025" }, wantErr: true},
		{name: "check-out equals check-in", mutate: func(r *SearchRequest) { r.CheckOutDate = r.CheckInDate }, wantErr: true},
		{name: "check-out before check-in", mutate: func(r *SearchRequest) { r.CheckOutDate = "2025-04-30" }, wantErr: true},
		{name: "zero adults", mutate: func(r *SearchRequest) { r.NumAdults = 0 }, wantErr: true},
		{name: "negative adults", mutate: func(r *SearchRequest) { r.NumAdults = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestSearchUpdateApply_FieldByFieldMerge(t *testing.T) {
	current := SearchRequest{
		Location:     "Paris",
		CheckInDate:  "2025-02-01",
		CheckOutDate: "2025-02-05",
		NumAdults:    2,
	}

	checkIn := "2025-03-01"
	update := &SearchUpdate{CheckInDate: &checkIn}

	merged := update.Apply(current)
	if merged.Location != "Paris" {
		t.Errorf("location should be kept, got %q", merged.Location)
	}
	if merged.CheckInDate != "2025-03-01" {
		t.Errorf("check-in should be replaced, got %q", merged.CheckInDate)
	}
	if merged.CheckOutDate != "2025-02-05" {
		t.Errorf("check-out should be kept, got %q", merged.CheckOutDate)
	}
	if merged.NumAdults != 2 {
		t.Errorf("num adults should be kept, got %d", merged.NumAdults)
	}
}

func TestSearchUpdateApply_NilAndEmptyFields(t *testing.T) {
	current := SearchRequest{
		Location:     "Paris",
		CheckInDate:  "2025-02-01",
		CheckOutDate: "2025-02-05",
		NumAdults:    2,
	}

	var nilUpdate *SearchUpdate
	if got := nilUpdate.Apply(current); got != current {
		t.Errorf("nil update should keep the current request, got %+v", got)
	}

	empty := ""
	zero := 0
	update := &SearchUpdate{Location: &empty, NumAdults: &zero}
	if got := update.Apply(current); got != current {
		t.Errorf("empty fields should not overwrite, got %+v", got)
	}
}
