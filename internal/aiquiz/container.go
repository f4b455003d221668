package aiquiz

import (
	"context"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

// NewAIQuizContainer keeps the API up without Gemini credentials; generation
// then answers with ErrProviderUnavailable.
func NewAIQuizContainer(ctx context.Context) *AIQuizContainer {
	var provider Provider
	if p, err := NewGeminiProvider(ctx); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Gemini provider disabled")
	} else {
		provider = p
	}

	service := NewService(provider)
	return &AIQuizContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
