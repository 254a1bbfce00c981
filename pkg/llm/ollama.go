package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaModel = "llama3.2"

// OllamaClient talks to a local Ollama server, for running without a hosted API key.
type OllamaClient struct {
	llm   *ollama.LLM
	model string
}

func NewOllamaClient(serverURL, model string) (*OllamaClient, error) {
	if model == "" {
		model = defaultOllamaModel
	}
	l, err := ollama.New(ollama.WithModel(model), ollama.WithServerURL(serverURL))
	if err != nil {
		return nil, fmt.Errorf("failed to init ollama: %w", err)
	}
	return &OllamaClient{llm: l, model: model}, nil
}

func (c *OllamaClient) Name() string {
	return c.model
}

func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("ollama error: %w", err)
	}
	return out, nil
}
