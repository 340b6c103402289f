package service

import (
	"context"

	"hotelfinder/internal/model"
)

// Generator is the narrow language-model surface the assistant depends on.
// The system prompt carries the task template; history carries prior
// conversation turns for context.
type Generator interface {
	Generate(ctx context.Context, system string, history []model.Message) (string, error)

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// Ensure OpenAIClient implements Generator
var _ Generator = (*OpenAIClient)(nil)
