package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Conceptual-Machines/sonicdna-api/internal/models"
)

// Builder renders the sonic search prompts for a query and mode
type Builder struct {
	system *template.Template
	user   *template.Template
}

type promptData struct {
	Query string
	Mode  models.Mode
	Count int
}

// NewPromptBuilder parses the embedded templates once
func NewPromptBuilder() (*Builder, error) {
	loader := NewPromptLoader()

	systemText, err := loader.GetSonicSystemInstruction()
	if err != nil {
		return nil, err
	}
	userText, err := loader.GetSonicUserPrompt()
	if err != nil {
		return nil, err
	}

	system, err := template.New("system").Option("missingkey=error").Parse(systemText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse system instruction template: %w", err)
	}
	user, err := template.New("user").Option("missingkey=error").Parse(userText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user prompt template: %w", err)
	}

	return &Builder{system: system, user: user}, nil
}

// BuildSystemInstruction returns the system instruction embedding the mode rules
func (b *Builder) BuildSystemInstruction(mode models.Mode) (string, error) {
	return render(b.system, promptData{Mode: mode, Count: models.ExpectedRecommendations})
}

// BuildUserPrompt returns the per-query user message
func (b *Builder) BuildUserPrompt(query string, mode models.Mode) (string, error) {
	return render(b.user, promptData{Query: query, Mode: mode, Count: models.ExpectedRecommendations})
}

func render(tmpl *template.Template, data promptData) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
