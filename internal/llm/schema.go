package llm

// Recommendation list bounds requested from the model
const (
	sonicRecommendationCount = 10
)

// GetSonicSearchSchema returns the JSON schema for a sonic similarity search.
// It mirrors models.SearchResult except inputAnalysis.modeUsed, which the client
// stamps itself and never asks the model for.
func GetSonicSearchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"inputAnalysis": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"artistOrSong": map[string]any{
						"type":        "string",
						"description": "The identified artist and song name from input",
					},
					"detectedGenre": map[string]any{
						"type":        "string",
						"description": "The specific sub-genre identified",
					},
					"sonicSignature": map[string]any{
						"type":        "string",
						"description": "Technical analysis of timbre, texture, soundstage, and rhythm",
					},
				},
				"required":         []string{"artistOrSong", "detectedGenre", "sonicSignature"},
				"propertyOrdering": []string{"artistOrSong", "detectedGenre", "sonicSignature"},
			},
			"recommendations": map[string]any{
				"type":        "array",
				"description": "Exactly 10 recommended artists",
				"minItems":    sonicRecommendationCount,
				"maxItems":    sonicRecommendationCount,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":     map[string]any{"type": "string"},
						"genre":    map[string]any{"type": "string"},
						"subGenre": map[string]any{"type": "string"},
						"style": map[string]any{
							"type":        "string",
							"description": "Description of the artist's sonic style",
						},
						"nuancedSimilarities": map[string]any{
							"type":        "string",
							"description": "How this artist matches the input's DNA",
						},
						"searchableName": map[string]any{
							"type": "string",
							//nolint:lll // Documentation string
							"description": "The most unique name to search for (e.g. 'Afterlife Tale of Us' instead of just 'Afterlife'). Do NOT add 'Music', 'Band', or 'Topic' unless it is part of the actual name.",
						},
						"youtubeChannelId": map[string]any{
							"type":        "string",
							"description": "Optional: The artist's YouTube Channel ID starting with UC if known",
						},
					},
					"required": []string{"name", "genre", "subGenre", "style", "nuancedSimilarities", "searchableName"},
					"propertyOrdering": []string{
						"name", "genre", "subGenre", "style", "nuancedSimilarities", "searchableName", "youtubeChannelId",
					},
				},
			},
		},
		"required":         []string{"inputAnalysis", "recommendations"},
		"propertyOrdering": []string{"inputAnalysis", "recommendations"},
	}
}

// SonicSearchOutputSchema wraps GetSonicSearchSchema for a GenerationRequest
func SonicSearchOutputSchema() *OutputSchema {
	return &OutputSchema{
		Name:        "sonic_search_result",
		Description: "Input analysis plus exactly 10 sonically similar artists",
		Schema:      GetSonicSearchSchema(),
	}
}
