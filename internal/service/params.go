package service

import (
	"context"
	"fmt"
	"time"

	"hotelfinder/internal/model"
	"hotelfinder/internal/utils"
)

const parametersPrompt = `## Task: Extract new hotel search parameters from user feedback.

### Feedback:
%s

### Output Format (JSON):

{
  "location": "City or destination, e.g. 'Cairo, Egypt'",
  "check_in_date": "YYYY-MM-DD",
  "check_out_date": "YYYY-MM-DD",
  "num_adults": 2
}

Omit any field the feedback does not mention. Respond ONLY with valid JSON.`

// ParameterExtractor extracts a partial search request from feedback. Used
// only on the search-again path; unspecified fields fall back to the current
// request when the update is applied.
type ParameterExtractor struct {
	gen Generator
}

// NewParameterExtractor creates a new parameter extractor
func NewParameterExtractor(gen Generator) *ParameterExtractor {
	return &ParameterExtractor{gen: gen}
}

// Extract parses the feedback into a partial search request. Fields that come
// back malformed (bad date shape, zero adults) are dropped to absent rather
// than failing the turn.
func (e *ParameterExtractor) Extract(ctx context.Context, feedback string) (*model.SearchUpdate, error) {
	reply, err := e.gen.Generate(ctx, fmt.Sprintf(parametersPrompt, feedback), nil)
	if err != nil {
		return nil, &model.CollaboratorError{Op: "extract search parameters", Err: err}
	}

	var update model.SearchUpdate
	if err := utils.ParseAIJSON(reply, &update); err != nil {
		return nil, &model.CollaboratorError{Op: "extract search parameters", Err: err}
	}

	sanitizeUpdate(&update)
	return &update, nil
}

func sanitizeUpdate(u *model.SearchUpdate) {
	if u.Location != nil && *u.Location == "" {
		u.Location = nil
	}
	if u.CheckInDate != nil && !validDate(*u.CheckInDate) {
		u.CheckInDate = nil
	}
	if u.CheckOutDate != nil && !validDate(*u.CheckOutDate) {
		u.CheckOutDate = nil
	}
	if u.NumAdults != nil && *u.NumAdults < 1 {
		u.NumAdults = nil
	}
}

func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}
