package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/sonicdna-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetSonicSystemInstruction loads the system instruction template
func (l *Loader) GetSonicSystemInstruction() (string, error) {
	return strings.TrimSpace(string(embedded.SonicSystemInstructionTxt)), nil
}

// GetSonicUserPrompt loads the user prompt template
func (l *Loader) GetSonicUserPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.SonicUserPromptTxt)), nil
}
