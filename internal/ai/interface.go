package ai

import (
	"context"
)

// Provider defines the contract for interacting with generative text models.
// This interface allows for swapping different providers (Gemini, OpenAI, etc.)
// and for substituting a scripted double in tests.
type Provider interface {
	// GenerateJSON sends a system instruction plus a user prompt and returns
	// the raw response text, which the caller is expected to parse as JSON.
	GenerateJSON(ctx context.Context, system, user string) (string, error)
}
