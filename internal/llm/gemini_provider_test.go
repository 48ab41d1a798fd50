package llm

import (
	"context"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiProvider_Name(t *testing.T) {
	// We can't create a real client without an API key
	// So just test the name method with a nil client
	provider := &GeminiProvider{client: nil}
	assert.Equal(t, "gemini", provider.Name())
}

func TestGeminiProvider_BuildContents(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	tests := []struct {
		name       string
		inputArray []map[string]any
		wantLen    int
		wantErr    bool
	}{
		{
			name:       "single user message",
			inputArray: []map[string]any{UserMessage("test content")},
			wantLen:    1,
		},
		{
			name: "developer role converted to user",
			inputArray: []map[string]any{
				{"role": "developer", "content": "system message"},
			},
			wantLen: 1,
		},
		{
			name: "invalid message skipped",
			inputArray: []map[string]any{
				{"role": "user", "content": "valid"},
				{"role": "user"}, // missing content
			},
			wantLen: 1,
		},
		{
			name:       "nothing usable",
			inputArray: []map[string]any{{"content": "no role"}},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents, err := provider.buildGeminiContents(tt.inputArray)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, contents, tt.wantLen)

			for _, content := range contents {
				assert.Equal(t, "user", content.Role)
				assert.NotEmpty(t, content.Parts)
			}
		})
	}
}

func TestGeminiProvider_BuildGenerateConfig(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	config := provider.buildGenerateConfig(&GenerationRequest{
		Model:        DefaultGeminiModel,
		SystemPrompt: "be precise",
		OutputSchema: SonicSearchOutputSchema(),
		Temperature:  Float32(0.3),
	})

	require.NotNil(t, config.SystemInstruction)
	assert.Equal(t, "be precise", config.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.Temperature)
	assert.Equal(t, float32(0.3), *config.Temperature)
	require.NotNil(t, config.ResponseSchema)
	assert.Equal(t, genai.TypeObject, config.ResponseSchema.Type)
}

func TestGeminiProvider_BuildGenerateConfig_NoSchemaNoTemperature(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	config := provider.buildGenerateConfig(&GenerationRequest{Model: "gemini-2.5-flash"})
	assert.Nil(t, config.Temperature)
	assert.Nil(t, config.ResponseSchema)
	assert.Empty(t, config.ResponseMIMEType)
	assert.Nil(t, config.SystemInstruction)
}

func TestConvertSchemaToGemini_SonicSchema(t *testing.T) {
	schema := convertSchemaToGemini(GetSonicSearchSchema())
	require.NotNil(t, schema)

	assert.Equal(t, []string{"inputAnalysis", "recommendations"}, schema.Required)

	analysis := schema.Properties["inputAnalysis"]
	require.NotNil(t, analysis)
	assert.Equal(t, genai.TypeObject, analysis.Type)
	assert.Contains(t, analysis.Properties, "sonicSignature")
	assert.NotContains(t, analysis.Properties, "modeUsed")

	recs := schema.Properties["recommendations"]
	require.NotNil(t, recs)
	assert.Equal(t, genai.TypeArray, recs.Type)
	require.NotNil(t, recs.MinItems)
	require.NotNil(t, recs.MaxItems)
	assert.Equal(t, int64(10), *recs.MinItems)
	assert.Equal(t, int64(10), *recs.MaxItems)

	require.NotNil(t, recs.Items)
	assert.Equal(t, genai.TypeString, recs.Items.Properties["searchableName"].Type)
	assert.Contains(t, recs.Items.Required, "searchableName")
	assert.NotContains(t, recs.Items.Required, "youtubeChannelId")
	assert.Equal(t, "name", recs.Items.PropertyOrdering[0])
}

func TestConvertSchemaToGemini_AnySlices(t *testing.T) {
	schema := convertSchemaToGemini(map[string]any{
		"type":     "object",
		"required": []any{"a", 1, "b"},
		"properties": map[string]any{
			"a": map[string]any{"type": "integer"},
			"b": map[string]any{"type": "boolean", "enum": []any{"x"}},
		},
	})

	assert.Equal(t, []string{"a", "b"}, schema.Required)
	assert.Equal(t, genai.TypeInteger, schema.Properties["a"].Type)
	assert.Equal(t, []string{"x"}, schema.Properties["b"].Enum)
	assert.Nil(t, convertSchemaToGemini(nil))
}

func TestGeminiProvider_ProcessResponse(t *testing.T) {
	provider := &GeminiProvider{client: nil}
	transaction := sentry.StartTransaction(context.Background(), "test")
	defer transaction.Finish()

	t.Run("joins text parts and reports usage", func(t *testing.T) {
		result := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "thinking...", Thought: true},
					{Text: `{"a":`},
					{Text: `1}`},
				}},
			}},
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
				PromptTokenCount:     12,
				CandidatesTokenCount: 30,
				TotalTokenCount:      42,
			},
		}

		resp, err := provider.processGeminiResponse(result, transaction.StartTime, transaction)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, resp.RawOutput)
		assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 30, TotalTokens: 42}, resp.Usage)
	})

	t.Run("empty text fails", func(t *testing.T) {
		result := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: "   "}}},
			}},
		}
		_, err := provider.processGeminiResponse(result, transaction.StartTime, transaction)
		assert.Error(t, err)
	})

	t.Run("no candidates fails", func(t *testing.T) {
		_, err := provider.processGeminiResponse(&genai.GenerateContentResponse{}, transaction.StartTime, transaction)
		assert.Error(t, err)
	})
}
