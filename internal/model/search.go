package model

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// SearchRequest represents a hotel search request
type SearchRequest struct {
	Location     string `json:"location" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	NumAdults    int    `json:"num_adults" binding:"required"`
}

// Validate checks the request against the session entry contract:
// parseable ISO dates, check-out strictly after check-in, at least one adult.
func (r SearchRequest) Validate() error {
	if r.Location == "" {
		return &ValidationError{Field: "location", Reason: "must not be empty"}
	}
	checkIn, err := time.Parse(DateLayout, r.CheckInDate)
	if err != nil {
		return &ValidationError{Field: "check_in_date", Reason: "must be an ISO date (YYYY-MM-DD)"}
	}
	checkOut, err := time.Parse(DateLayout, r.CheckOutDate)
	if err != nil {
		return &ValidationError{Field: "check_out_date", Reason: "must be an ISO date (YYYY-MM-DD)"}
	}
	if !checkOut.After(checkIn) {
		return &ValidationError{Field: "check_out_date", Reason: "must be after check_in_date"}
	}
	if r.NumAdults < 1 {
		return &ValidationError{Field: "num_adults", Reason: "must be at least 1"}
	}
	return nil
}

// SearchUpdate represents a partial search request extracted from feedback.
// Each field is optional; absent fields keep the current request's value.
type SearchUpdate struct {
	Location     *string `json:"location,omitempty"`
	CheckInDate  *string `json:"check_in_date,omitempty"`
	CheckOutDate *string `json:"check_out_date,omitempty"`
	NumAdults    *int    `json:"num_adults,omitempty"`
}

// Apply merges the update into the current request field by field.
// Only fields present in the update are replaced; siblings left unset by the
// extraction keep their existing values.
func (u *SearchUpdate) Apply(current SearchRequest) SearchRequest {
	merged := current
	if u == nil {
		return merged
	}
	if u.Location != nil && *u.Location != "" {
		merged.Location = *u.Location
	}
	if u.CheckInDate != nil && *u.CheckInDate != "" {
		merged.CheckInDate = *u.CheckInDate
	}
	if u.CheckOutDate != nil && *u.CheckOutDate != "" {
		merged.CheckOutDate = *u.CheckOutDate
	}
	if u.NumAdults != nil && *u.NumAdults >= 1 {
		merged.NumAdults = *u.NumAdults
	}
	return merged
}
