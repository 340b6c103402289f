package service

import (
	"context"
	"fmt"

	"hotelfinder/internal/model"
	"hotelfinder/internal/utils"
)

const filtersPrompt = `## Task: Extract Filters from Feedback

Given the user's feedback about hotel search results, extract a list of filters to refine the hotel options.

### Feedback:
%s

### Output Format:
Respond with a plain list, one filter per line. Do not include explanations.
If the feedback contains no filters, respond with: none

### Example Output:
- Only show hotels under $200
- Must have free cancellation
- At least 4-star rating`

// FilterExtractor extracts the active filter list from feedback. The result
// replaces the session's filters wholesale: filters are a snapshot of the
// latest feedback's constraints, not cumulative.
type FilterExtractor struct {
	gen Generator
}

// NewFilterExtractor creates a new filter extractor
func NewFilterExtractor(gen Generator) *FilterExtractor {
	return &FilterExtractor{gen: gen}
}

// Extract parses the feedback into an ordered list of filter strings.
func (e *FilterExtractor) Extract(ctx context.Context, feedback string) ([]string, error) {
	reply, err := e.gen.Generate(ctx, fmt.Sprintf(filtersPrompt, feedback), nil)
	if err != nil {
		return nil, &model.CollaboratorError{Op: "extract filters", Err: err}
	}

	return utils.ParseLineList(reply), nil
}
