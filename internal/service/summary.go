package service

import (
	"context"
	"strings"

	"hotelfinder/internal/model"
)

const summarizationPrompt = `# HotelFinder - Customer Results Presentation

## Your Role:
You are an expert Hotel Concierge AI, helping potential customers make informed hotel booking decisions.

## Your Task:
Given the raw hotel search results below, summarize and present the hotel options in a clear, appealing, customer-friendly way. Highlight for each hotel: name, price per night, star rating, review score and booking link where available.

## Filtering Instructions:
If filters are provided, apply them strictly: only include hotels that match every filter. If no hotels match the filters, politely inform the customer and suggest removing or relaxing some of them. If the results state that no hotels were found, say so plainly.

## User's Original Request:
- Location: {location}
- Check-in Date: {check_in_date}
- Check-out Date: {check_out_date}

## Raw Hotel Search Results:
{results}

## User Filters (if any):
{filters}

## Output Format:

### Top Matching Hotels for {location} ({check_in_date} - {check_out_date}):
[List the hotels here with clear bullet points or numbered format.]

### Summary of Applied Filters:
[Briefly explain any filters applied to narrow down the results.]

### Next Steps / Call to Action:
[A polite closing statement encouraging the customer to book, adjust filters, or search again.]

## Output Guidelines:
- Output must be in raw Markdown (no HTML)
- Be concise, helpful, and friendly`

// SummaryGenerator turns extracted results and active filters into the
// customer-facing markdown narrative.
type SummaryGenerator struct {
	gen Generator
}

// NewSummaryGenerator creates a new summary generator
func NewSummaryGenerator(gen Generator) *SummaryGenerator {
	return &SummaryGenerator{gen: gen}
}

// Summarize generates the narrative for the current request, result text and
// filter set, with the conversation history as context.
func (g *SummaryGenerator) Summarize(ctx context.Context, req model.SearchRequest, resultText string, filters []string, history []model.Message) (string, error) {
	filterText := "(none)"
	if len(filters) > 0 {
		filterText = "- " + strings.Join(filters, "\n- ")
	}

	prompt := strings.NewReplacer(
		"{location}", req.Location,
		"{check_in_date}", req.CheckInDate,
		"{check_out_date}", req.CheckOutDate,
		"{results}", resultText,
		"{filters}", filterText,
	).Replace(summarizationPrompt)

	output, err := g.gen.Generate(ctx, prompt, history)
	if err != nil {
		return "", &model.CollaboratorError{Op: "summarize results", Err: err}
	}

	return strings.TrimSpace(output), nil
}
