package service

import (
	"context"
	"errors"
	"testing"

	"hotelfinder/internal/model"
)

// fixedGenerator returns a single canned reply for every prompt.
type fixedGenerator struct {
	reply   string
	err     error
	enabled bool
}

func (g *fixedGenerator) Generate(context.Context, string, []model.Message) (string, error) {
	return g.reply, g.err
}

func (g *fixedGenerator) IsEnabled() bool { return g.enabled }

func TestClassifier_CanonicalReplies(t *testing.T) {
	tests := []struct {
		reply string
		want  model.Decision
	}{
		{"end", model.DecisionEnd},
		{"End.", model.DecisionEnd},
		{"search again", model.DecisionSearchAgain},
		{"**search again**", model.DecisionSearchAgain},
		{"Search Again", model.DecisionSearchAgain},
		{"rewrite existing results", model.DecisionRefine},
		{"refine", model.DecisionRefine},
		{"I would rewrite existing results here.", model.DecisionRefine},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			classifier := NewIntentClassifier(&fixedGenerator{reply: tt.reply, enabled: true})
			got, err := classifier.Classify(context.Background(), "some feedback", nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifier_UnrecognizedReplyIsError(t *testing.T) {
	replies := []string{
		"sounds good to me",
		"",
		// Naming more than one action is just as unusable as naming none.
		"search again or end",
	}

	for _, reply := range replies {
		classifier := NewIntentClassifier(&fixedGenerator{reply: reply, enabled: true})
		_, err := classifier.Classify(context.Background(), "some feedback", nil)
		if err == nil {
			t.Errorf("reply %q: expected an error, got nil", reply)
			continue
		}
		var collabErr *model.CollaboratorError
		if !errors.As(err, &collabErr) {
			t.Errorf("reply %q: expected a CollaboratorError, got %T", reply, err)
		}
	}
}

func TestClassifier_DisabledGenerator(t *testing.T) {
	classifier := NewIntentClassifier(&fixedGenerator{enabled: false})
	if _, err := classifier.Classify(context.Background(), "anything", nil); err == nil {
		t.Fatal("expected an error when the language model is disabled")
	}
}

func TestClassifier_GeneratorFailure(t *testing.T) {
	classifier := NewIntentClassifier(&fixedGenerator{err: errors.New("boom"), enabled: true})
	_, err := classifier.Classify(context.Background(), "anything", nil)

	var collabErr *model.CollaboratorError
	if !errors.As(err, &collabErr) {
		t.Fatalf("expected a CollaboratorError, got %v", err)
	}
}
