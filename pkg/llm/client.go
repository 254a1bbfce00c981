package llm

import "context"

// Generator turns one prompt into one raw text reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
