package llm

import (
	"context"
)

// Provider defines the interface for LLM providers
// All providers MUST support structured output (JSON Schema) for reliable response parsing
type Provider interface {
	// Generate issues exactly one model call and returns the raw JSON text.
	// The provider MUST enforce the OutputSchema when one is given.
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model        string
	InputArray   []map[string]any // role/content messages
	SystemPrompt string
	// Structured output schema - REQUIRED for reliable JSON parsing
	OutputSchema *OutputSchema
	// Nil leaves the provider default in place
	Temperature *float32
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// Usage is provider-neutral token accounting
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	RawOutput string `json:"-"` // JSON text as returned by the model
	Usage     Usage  `json:"usage"`
}

// UserMessage builds a single user entry for GenerationRequest.InputArray
func UserMessage(content string) map[string]any {
	return map[string]any{"role": userRole, "content": content}
}

// Float32 returns a pointer to v, for GenerationRequest.Temperature
func Float32(v float32) *float32 {
	return &v
}

// UnavailableProvider stands in when a real provider could not be built
// (for example a missing API key). Every call fails with the construction error,
// so misconfiguration only surfaces once a request is attempted.
type UnavailableProvider struct {
	ProviderName string
	Err          error
}

// Name returns the provider that failed to initialize
func (p *UnavailableProvider) Name() string {
	return p.ProviderName
}

// Generate always returns the stored error
func (p *UnavailableProvider) Generate(_ context.Context, _ *GenerationRequest) (*GenerationResponse, error) {
	return nil, p.Err
}
