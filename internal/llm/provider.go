package llm

import "context"

// Provider defines the interface for LLM providers used as the question
// interpretation oracle.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a system/user prompt pair and returns the raw model
	// output. Providers are configured for deterministic output: lowest
	// temperature, and JSON-constrained response where the API supports it.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the prompts for one oracle round-trip.
type CompletionRequest struct {
	// System is the instruction prompt (rules plus schema rendering)
	System string

	// User is the per-question prompt
	User string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CompletionResponse contains the raw oracle output.
type CompletionResponse struct {
	// Content is the model's text output, expected to be a JSON object
	Content string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Model:     "",
		Timeout:   30,
		MaxTokens: 500,
	}
}
