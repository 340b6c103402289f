package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"hotelfinder/internal/model"
	"hotelfinder/internal/utils"
)

const decisionPrompt = `## Task: Determine Next Action Based on User Feedback

Given the user's feedback on the hotel results they were just shown, decide the next action.

### Feedback:
%s

### Decision Options:

- If the user wants a **completely new search** (e.g. a change of location, dates or party size), respond with:

search again

- If the user wants to **refine the current results** (e.g. limit by price, star rating or amenities), respond with:

rewrite existing results

- If the user is **satisfied** (e.g. says "all good", "ok", "thanks", "no changes"), respond with:

end

### Output:

Respond with exactly one of:

- search again
- rewrite existing results
- end`

var (
	reSearchAgain = regexp.MustCompile(`(?i)\bsearch again\b`)
	reRefine      = regexp.MustCompile(`(?i)\brewrite existing results\b|\brefine\b`)
	reEnd         = regexp.MustCompile(`(?i)\bend\b`)
)

// IntentClassifier maps free-text feedback onto exactly one decision using
// the language model.
type IntentClassifier struct {
	gen Generator
}

// NewIntentClassifier creates a new intent classifier
func NewIntentClassifier(gen Generator) *IntentClassifier {
	return &IntentClassifier{gen: gen}
}

// Classify returns the single decision for one feedback turn. A reply that
// names none of the canonical actions, or more than one, is a collaborator
// error: the classifier never silently defaults.
func (c *IntentClassifier) Classify(ctx context.Context, feedback string, history []model.Message) (model.Decision, error) {
	if !c.gen.IsEnabled() {
		return "", &model.CollaboratorError{Op: "classify feedback", Err: fmt.Errorf("language model is not enabled")}
	}

	reply, err := c.gen.Generate(ctx, fmt.Sprintf(decisionPrompt, feedback), history)
	if err != nil {
		return "", &model.CollaboratorError{Op: "classify feedback", Err: err}
	}

	decision, ok := parseDecision(reply)
	if !ok {
		return "", &model.CollaboratorError{
			Op:  "classify feedback",
			Err: fmt.Errorf("unrecognized decision reply: %s", utils.TruncateString(reply, 100)),
		}
	}

	return decision, nil
}

// parseDecision accepts a reply naming exactly one canonical action,
// tolerating case, markdown emphasis and surrounding prose.
func parseDecision(reply string) (model.Decision, bool) {
	s := strings.TrimSpace(reply)

	var matched []model.Decision
	if reSearchAgain.MatchString(s) {
		matched = append(matched, model.DecisionSearchAgain)
	}
	if reRefine.MatchString(s) {
		matched = append(matched, model.DecisionRefine)
	}
	if reEnd.MatchString(s) {
		matched = append(matched, model.DecisionEnd)
	}

	if len(matched) != 1 {
		return "", false
	}
	return matched[0], true
}
