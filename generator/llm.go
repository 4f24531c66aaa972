package generator

import (
	"context"
	"fmt"
)

// LLMClient abstracts the text-generation backend so it can be replaced or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMSettings carries the backend configuration for concrete clients.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderMock     = "mock"
)

// GeminiBaseURL is Google's OpenAI-compatible endpoint.
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// NewLLM builds the client for settings.Provider.
func NewLLM(cfg *LLMSettings) (LLMClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llm config is nil")
	}
	switch cfg.Provider {
	case ProviderGemini:
		s := *cfg
		if s.BaseURL == "" {
			s.BaseURL = GeminiBaseURL
		}
		return NewOpenAILLMFromConfig(&s)
	case ProviderOpenAI:
		return NewOpenAILLMFromConfig(cfg)
	case ProviderDeepSeek:
		// DeepSeek exposes an OpenAI-compatible API; base_url must point at it.
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return NewOpenAILLMFromConfig(cfg)
	case ProviderMock:
		return MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %q not supported", cfg.Provider)
	}
}
