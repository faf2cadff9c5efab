package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/careerboost/internal/config"
	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

var _ flow.Generator = (*OpenRouterService)(nil)

// OpenRouterService talks to an OpenAI-compatible chat completions API.
type OpenRouterService struct {
	Model  string
	client *resty.Client
}

func NewOpenRouterService() (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return NewOpenRouterServiceWithConfig(cfg.BaseURL, cfg.APIKey, cfg.Model, config.LoadLLMConfig().RequestTimeout), nil
}

func NewOpenRouterServiceWithConfig(baseURL, apiKey, modelName string, timeout time.Duration) *OpenRouterService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &OpenRouterService{Model: modelName, client: client}
}

// Generate inlines text documents into the user message; other media types
// are rejected since chat completions carry text only here.
func (s *OpenRouterService) Generate(ctx context.Context, req flow.Request) (string, error) {
	var content strings.Builder
	content.WriteString(req.Prompt)
	for _, m := range req.Media {
		if !m.IsText() {
			return "", fmt.Errorf("%w: %s documents are not supported by the openrouter backend", model.ErrInvalidInput, m.MIMEType)
		}
		content.WriteString("\n\nAttached document:\n")
		content.Write(m.Data)
	}

	messages := []map[string]string{}
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": content.String()})

	payload := map[string]any{
		"model":       s.Model,
		"messages":    messages,
		"temperature": 0.1,
	}
	if req.Schema != nil {
		payload["response_format"] = map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   req.Flow,
				"strict": true,
				"schema": JSONSchema(req.Schema),
			},
		}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrModelUnavailable, err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		return "", fmt.Errorf("%w: status %d: %s", model.ErrModelUnavailable, resp.StatusCode(), msg)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no response from LLM", model.ErrModelOutputInvalid)
	}
	return text, nil
}

// JSONSchema converts a genai schema into the JSON Schema subset accepted by
// strict structured outputs. Range and length limits are left to the flow's
// own reply validation.
func JSONSchema(s *genai.Schema) map[string]any {
	out := map[string]any{"type": strings.ToLower(string(s.Type))}
	if s.Description != "" {
		out["description"] = s.Description
	}
	switch s.Type {
	case genai.TypeObject:
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = JSONSchema(prop)
		}
		out["properties"] = props
		out["required"] = s.Required
		out["additionalProperties"] = false
	case genai.TypeArray:
		if s.Items != nil {
			out["items"] = JSONSchema(s.Items)
		}
	}
	return out
}
