package sonic

import (
	"encoding/json"
	"fmt"

	"github.com/Conceptual-Machines/sonicdna-api/internal/models"
	"github.com/Conceptual-Machines/sonicdna-api/internal/validation"
)

// The model's JSON is decoded into these wire types first. Pointer fields make
// `required` a presence check: an absent key fails, an empty string does not.
// There is no modeUsed field, so whatever the model puts there is ignored.

type searchPayload struct {
	InputAnalysis   *analysisPayload `json:"inputAnalysis" validate:"required"`
	Recommendations []artistPayload  `json:"recommendations" validate:"required,dive"`
}

type analysisPayload struct {
	ArtistOrSong   *string `json:"artistOrSong" validate:"required"`
	DetectedGenre  *string `json:"detectedGenre" validate:"required"`
	SonicSignature *string `json:"sonicSignature" validate:"required"`
}

type artistPayload struct {
	Name                *string `json:"name" validate:"required"`
	Genre               *string `json:"genre" validate:"required"`
	SubGenre            *string `json:"subGenre" validate:"required"`
	Style               *string `json:"style" validate:"required"`
	NuancedSimilarities *string `json:"nuancedSimilarities" validate:"required"`
	SearchableName      *string `json:"searchableName"`
	YouTubeChannelID    *string `json:"youtubeChannelId"`
}

// parseSearchResult decodes the model's JSON payload and checks that every
// key the schema requires is present
func parseSearchResult(raw string) (*models.SearchResult, error) {
	var payload searchPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}
	if err := validation.ValidateStruct(payload); err != nil {
		return nil, fmt.Errorf("model output failed validation: %w", err)
	}
	return payload.toSearchResult(), nil
}

func (p searchPayload) toSearchResult() *models.SearchResult {
	result := &models.SearchResult{
		InputAnalysis: models.InputAnalysis{
			ArtistOrSong:   deref(p.InputAnalysis.ArtistOrSong),
			DetectedGenre:  deref(p.InputAnalysis.DetectedGenre),
			SonicSignature: deref(p.InputAnalysis.SonicSignature),
		},
		Recommendations: make([]models.SonicArtist, 0, len(p.Recommendations)),
	}

	for _, a := range p.Recommendations {
		result.Recommendations = append(result.Recommendations, models.SonicArtist{
			Name:                deref(a.Name),
			Genre:               deref(a.Genre),
			SubGenre:            deref(a.SubGenre),
			Style:               deref(a.Style),
			NuancedSimilarities: deref(a.NuancedSimilarities),
			SearchableName:      deref(a.SearchableName),
			YouTubeChannelID:    deref(a.YouTubeChannelID),
		})
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
