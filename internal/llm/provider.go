package llm

import (
	"context"
)

// GenerateOptions tunes a single text-generation call.
type GenerateOptions struct {
	// ResponseMIMEType asks the provider for structured output, e.g.
	// "application/json". Providers that cannot honor it ignore it.
	ResponseMIMEType string
}

// defines the interface for LLM providers
type Provider interface {
	// GenerateText sends a system instruction plus a user payload and
	// returns the raw model output. Single attempt, no retries.
	GenerateText(ctx context.Context, system, user string, opts *GenerateOptions) (string, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
