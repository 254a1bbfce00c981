package llm

import (
	"context"
	"fmt"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

type Options struct {
	Provider  string
	APIKey    string
	Model     string
	OllamaURL string
}

func New(ctx context.Context, opts Options) (Generator, error) {
	switch opts.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, opts.APIKey, opts.Model)
	case ProviderOpenAI:
		return NewOpenAIClient(opts.APIKey, opts.Model), nil
	case ProviderAnthropic:
		return NewAnthropicClient(opts.APIKey, opts.Model), nil
	case ProviderOllama:
		return NewOllamaClient(opts.OllamaURL, opts.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}
