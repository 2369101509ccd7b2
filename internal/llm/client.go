// Package llm is the boundary to the external text-completion service.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pcst_ai/internal/config"
)

// ErrNoCandidates is returned when the service answers without any text.
var ErrNoCandidates = errors.New("no response generated")

// Client sends one prompt and returns one completion. Implementations are
// safe for concurrent use.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// ServiceError wraps every failure of the external call. Its message is the
// underlying description so it can be surfaced to callers unchanged.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string { return e.Err.Error() }

func (e *ServiceError) Unwrap() error { return e.Err }

func newServiceError(provider string, err error) *ServiceError {
	return &ServiceError{Provider: provider, Err: err}
}

// NewClient builds the client for cfg.Provider.
func NewClient(ctx context.Context, cfg config.LLM) (Client, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedProvider, cfg.Provider)
	}
}

// withTimeout bounds ctx when d > 0.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
