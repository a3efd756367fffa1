package ai

import (
	"context"
)

// Client is the interface for AI providers.
// Complete sends a single-turn prompt and returns the raw reply text
// with any markdown code fences already stripped.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
