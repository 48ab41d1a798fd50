package models

import (
	"fmt"
	"strings"
)

// Mode selects how far recommendations may drift from the input's sonic signature
type Mode string

const (
	// ModeStrict requires a 95%+ match within the exact detected sub-genre
	ModeStrict Mode = "STRICT"
	// ModeDiscovery allows roughly 38% drift into adjacent sub-genres
	ModeDiscovery Mode = "DISCOVERY"
)

// ParseMode converts user input into a Mode, ignoring case and surrounding whitespace
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToUpper(strings.TrimSpace(s))) {
	case ModeStrict:
		return ModeStrict, nil
	case ModeDiscovery:
		return ModeDiscovery, nil
	default:
		return "", fmt.Errorf("invalid mode %q (allowed: %s, %s)", s, ModeStrict, ModeDiscovery)
	}
}

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeStrict || m == ModeDiscovery
}

func (m Mode) String() string {
	return string(m)
}

// InputAnalysis describes what the model detected in the query.
// ModeUsed is never requested from the model; the client stamps it after parsing.
// Fields may be empty: presence is checked on the wire payload, content is not.
type InputAnalysis struct {
	ArtistOrSong   string `json:"artistOrSong"`
	DetectedGenre  string `json:"detectedGenre"`
	SonicSignature string `json:"sonicSignature"`
	ModeUsed       Mode   `json:"modeUsed"`
}

// SonicArtist is a single recommendation. Slice order is relevance rank.
type SonicArtist struct {
	Name                string `json:"name"`
	Genre               string `json:"genre"`
	SubGenre            string `json:"subGenre"`
	Style               string `json:"style"`
	NuancedSimilarities string `json:"nuancedSimilarities"`
	SearchableName      string `json:"searchableName,omitempty"`
	YouTubeChannelID    string `json:"youtubeChannelId,omitempty"`
}

// SearchResult is the full response for one query
type SearchResult struct {
	InputAnalysis   InputAnalysis `json:"inputAnalysis"`
	Recommendations []SonicArtist `json:"recommendations"`
}

// ExpectedRecommendations is the number of artists requested from the model.
// It is requested, not enforced.
const ExpectedRecommendations = 10
