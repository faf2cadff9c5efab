package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/careerboost/internal/config"
	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/model"
	"google.golang.org/genai"
)

var _ flow.Generator = (*GeminiService)(nil)

type GeminiService struct {
	Client         *genai.Client
	Model          string
	Temperature    float32
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	return NewGeminiServiceWithConfig(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	}, geminiConfig.Model, config.LoadLLMConfig().RequestTimeout)
}

func NewGeminiServiceWithConfig(ctx context.Context, cc *genai.ClientConfig, modelName string, timeout time.Duration) (*GeminiService, error) {
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:         client,
		Model:          modelName,
		Temperature:    0.1,
		RequestTimeout: timeout,
	}, nil
}

// Generate asks for JSON constrained by the flow's schema. Documents travel
// as inline parts after the prompt text.
func (s *GeminiService) Generate(ctx context.Context, req flow.Request) (string, error) {
	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	for _, m := range req.Media {
		parts = append(parts, genai.NewPartFromBytes(m.Data, m.MIMEType))
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(s.Temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	result, err := s.Client.Models.GenerateContent(
		ctx,
		s.Model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		genConfig,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrModelUnavailable, err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrModelOutputInvalid, err)
	}
	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil (finish reason %s)", resp.Candidates[0].FinishReason)
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
