package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIProvider(t *testing.T) {
	provider := NewOpenAIProvider("test-api-key")
	require.NotNil(t, provider)
	assert.Equal(t, "openai", provider.Name())
	assert.NotNil(t, provider.client)
}

func TestOpenAIProvider_BuildRequestParams(t *testing.T) {
	provider := NewOpenAIProvider("test-key")

	tests := []struct {
		name    string
		request *GenerationRequest
		checks  func(t *testing.T, request *GenerationRequest)
	}{
		{
			name: "system prompt and temperature",
			request: &GenerationRequest{
				Model:        DefaultOpenAIModel,
				SystemPrompt: "test system prompt",
				InputArray:   []map[string]any{UserMessage("test content")},
				Temperature:  Float32(0.7),
			},
			checks: func(t *testing.T, request *GenerationRequest) {
				t.Helper()
				params := provider.buildRequestParams(request)
				assert.Equal(t, DefaultOpenAIModel, params.Model)
				assert.Equal(t, "test system prompt", params.Instructions.Value)
				assert.InDelta(t, 0.7, params.Temperature.Value, 1e-6)
				assert.Len(t, params.Input.OfInputItemList, 1)
			},
		},
		{
			name: "json schema configured",
			request: &GenerationRequest{
				Model:        DefaultOpenAIModel,
				InputArray:   []map[string]any{UserMessage("test")},
				OutputSchema: SonicSearchOutputSchema(),
			},
			checks: func(t *testing.T, request *GenerationRequest) {
				t.Helper()
				params := provider.buildRequestParams(request)
				require.NotNil(t, params.Text.Format.OfJSONSchema)
				assert.Equal(t, "sonic_search_result", params.Text.Format.OfJSONSchema.Name)
				assert.NotContains(t, params.Text.Format.OfJSONSchema.Schema, "propertyOrdering")
			},
		},
		{
			name: "invalid messages skipped",
			request: &GenerationRequest{
				Model: DefaultOpenAIModel,
				InputArray: []map[string]any{
					{"role": "developer", "content": "dev"},
					{"content": "missing role"},
				},
			},
			checks: func(t *testing.T, request *GenerationRequest) {
				t.Helper()
				params := provider.buildRequestParams(request)
				assert.Len(t, params.Input.OfInputItemList, 1)
				assert.False(t, params.Temperature.Valid())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checks(t, tt.request)
		})
	}
}

func TestOpenAISchema_StripsPropertyOrdering(t *testing.T) {
	out := openAISchema(GetSonicSearchSchema())

	assert.NotContains(t, out, "propertyOrdering")
	props := out["properties"].(map[string]any)
	analysis := props["inputAnalysis"].(map[string]any)
	assert.NotContains(t, analysis, "propertyOrdering")
	recs := props["recommendations"].(map[string]any)
	items := recs["items"].(map[string]any)
	assert.NotContains(t, items, "propertyOrdering")
	assert.Contains(t, items, "required")

	// source schema untouched
	assert.Contains(t, GetSonicSearchSchema(), "propertyOrdering")
}

func TestExtractAndCleanTextOutput(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractAndCleanTextOutput("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractAndCleanTextOutput(`{"a":1}`))
	assert.Equal(t, "", extractAndCleanTextOutput(""))
}
