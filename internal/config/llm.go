package config

import (
	"log"
	"os"
	"sync"
	"time"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// LLMConfig selects the remote model backend used by every flow.
type LLMConfig struct {
	Provider       string
	RequestTimeout time.Duration
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		timeout := 90 * time.Second
		if raw := os.Getenv("LLM_REQUEST_TIMEOUT"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				log.Printf("Warning: invalid LLM_REQUEST_TIMEOUT %q, using %s", raw, timeout)
			} else {
				timeout = d
			}
		}
		llmConfig = &LLMConfig{
			Provider:       getEnv("LLM_PROVIDER", ProviderGemini),
			RequestTimeout: timeout,
		}
	})
	return llmConfig
}
