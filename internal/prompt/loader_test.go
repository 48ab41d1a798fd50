package prompt

import (
	"strings"
	"testing"
)

func TestNewPromptLoader(t *testing.T) {
	loader := NewPromptLoader()
	if loader == nil {
		t.Fatal("NewPromptLoader() returned nil")
	}
}

func TestGetSonicSystemInstruction(t *testing.T) {
	loader := NewPromptLoader()
	content, err := loader.GetSonicSystemInstruction()

	if err != nil {
		t.Fatalf("GetSonicSystemInstruction() returned error: %v", err)
	}

	if content == "" {
		t.Error("GetSonicSystemInstruction() returned empty string")
	}

	if !strings.Contains(content, "Music Recommendation Engine") {
		t.Error("GetSonicSystemInstruction() does not contain expected content")
	}

	// Ensure no excessive whitespace
	if strings.HasPrefix(content, "\n") || strings.HasSuffix(content, "\n") {
		t.Error("GetSonicSystemInstruction() was not trimmed")
	}
}

func TestGetSonicUserPrompt(t *testing.T) {
	loader := NewPromptLoader()
	content, err := loader.GetSonicUserPrompt()

	if err != nil {
		t.Fatalf("GetSonicUserPrompt() returned error: %v", err)
	}

	if !strings.Contains(content, "{{.Query}}") {
		t.Error("GetSonicUserPrompt() does not reference the query")
	}
}
