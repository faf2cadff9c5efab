package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/careerboost/internal/config"
	"github.com/fadilmartias/careerboost/internal/flow"
)

// NewGenerator builds the model backend named by LLM_PROVIDER.
func NewGenerator(ctx context.Context) (flow.Generator, error) {
	switch provider := config.LoadLLMConfig().Provider; provider {
	case config.ProviderGemini:
		return NewGeminiService(ctx)
	case config.ProviderOpenRouter:
		return NewOpenRouterService()
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}
