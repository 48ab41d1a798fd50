package sonic

import "github.com/Conceptual-Machines/sonicdna-api/internal/models"

// Sampling temperatures per mode. STRICT stays tight around the matching rule;
// DISCOVERY widens associative drift.
const (
	strictTemperature    float32 = 0.3
	discoveryTemperature float32 = 0.7
)

// LLMParameters contains the per-request sampling configuration
type LLMParameters struct {
	Model       string
	Temperature float32
}

// GetLLMParameters returns the parameters for a mode
func GetLLMParameters(model string, mode models.Mode) LLMParameters {
	return LLMParameters{
		Model:       model,
		Temperature: Temperature(mode),
	}
}

// Temperature returns the sampling temperature for a mode
func Temperature(mode models.Mode) float32 {
	if mode == models.ModeStrict {
		return strictTemperature
	}
	return discoveryTemperature
}
