// Package sonic turns a free-text artist/song query into ten sonically similar
// artist recommendations with a single structured-generation call.
package sonic

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Conceptual-Machines/sonicdna-api/internal/llm"
	"github.com/Conceptual-Machines/sonicdna-api/internal/logger"
	"github.com/Conceptual-Machines/sonicdna-api/internal/models"
	"github.com/Conceptual-Machines/sonicdna-api/internal/prompt"
)

// ErrAnalysisFailure is returned for every failed analysis: provider errors,
// empty output, unparseable JSON and payloads missing required fields alike.
// The cause is wrapped for logging only; callers should treat it as opaque.
var ErrAnalysisFailure = errors.New("sonic analysis failed")

// genericSubGenres are coarse buckets the prompt forbids as a sub-genre
var genericSubGenres = map[string]bool{
	"rock":       true,
	"pop":        true,
	"electronic": true,
	"hip hop":    true,
	"jazz":       true,
	"classical":  true,
}

// Client runs sonic similarity searches against one LLM provider.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	provider  llm.Provider
	model     string
	prompts   *prompt.Builder
	observers []Observer
}

// Option configures a Client
type Option func(*Client)

// WithObservers registers observers notified after every Analyze call
func WithObservers(observers ...Observer) Option {
	return func(c *Client) {
		c.observers = append(c.observers, observers...)
	}
}

// NewClient creates a client bound to provider. An empty model selects the
// provider's default.
func NewClient(provider llm.Provider, model string, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("sonic: provider is required")
	}
	if model == "" {
		model = llm.DefaultModel(provider.Name())
	}

	prompts, err := prompt.NewPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("sonic: %w", err)
	}

	c := &Client{
		provider: provider,
		model:    model,
		prompts:  prompts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Model returns the model identifier used for requests
func (c *Client) Model() string {
	return c.model
}

// ProviderName returns the name of the underlying provider
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// Analyze detects the sonic signature of query and returns recommendations.
// query must already be trimmed and non-empty. Exactly one provider call is made.
func (c *Client) Analyze(ctx context.Context, query string, mode models.Mode) (*models.SearchResult, error) {
	startTime := time.Now()
	params := GetLLMParameters(c.model, mode)

	event := AnalysisEvent{
		Query:       query,
		Mode:        mode,
		Provider:    c.provider.Name(),
		Model:       params.Model,
		Temperature: params.Temperature,
	}

	result, err := c.analyze(ctx, query, mode, params, &event)

	event.Duration = time.Since(startTime)
	event.Err = err
	if result != nil {
		event.Recommendations = len(result.Recommendations)
	}
	c.notify(ctx, event)

	if err != nil {
		logger.Error("Sonic analysis failed", err, logger.Fields{
			"mode":     string(mode),
			"model":    params.Model,
			"provider": event.Provider,
		})
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailure, err)
	}

	logger.Info("Sonic analysis completed", logger.Fields{
		"mode":            string(mode),
		"model":           params.Model,
		"duration_ms":     event.Duration.Milliseconds(),
		"recommendations": event.Recommendations,
		"total_tokens":    event.Usage.TotalTokens,
	})
	return result, nil
}

func (c *Client) analyze(
	ctx context.Context,
	query string,
	mode models.Mode,
	params LLMParameters,
	event *AnalysisEvent,
) (*models.SearchResult, error) {
	systemPrompt, err := c.prompts.BuildSystemInstruction(mode)
	if err != nil {
		return nil, err
	}
	userPrompt, err := c.prompts.BuildUserPrompt(query, mode)
	if err != nil {
		return nil, err
	}
	event.SystemPrompt = systemPrompt
	event.UserPrompt = userPrompt

	resp, err := c.provider.Generate(ctx, &llm.GenerationRequest{
		Model:        params.Model,
		SystemPrompt: systemPrompt,
		InputArray:   []map[string]any{llm.UserMessage(userPrompt)},
		OutputSchema: llm.SonicSearchOutputSchema(),
		Temperature:  llm.Float32(params.Temperature),
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || strings.TrimSpace(resp.RawOutput) == "" {
		return nil, errors.New("no response from model")
	}
	event.RawOutput = resp.RawOutput
	event.Usage = resp.Usage

	result, err := parseSearchResult(resp.RawOutput)
	if err != nil {
		return nil, err
	}

	// The model is not authoritative about the mode
	result.InputAnalysis.ModeUsed = mode

	warnNonConformant(result, mode)
	return result, nil
}

// warnNonConformant logs, but passes through, results that ignore the
// count or sub-genre instructions
func warnNonConformant(result *models.SearchResult, mode models.Mode) {
	if n := len(result.Recommendations); n != models.ExpectedRecommendations {
		logger.Warn("Model returned unexpected recommendation count", logger.Fields{
			"mode":     string(mode),
			"count":    n,
			"expected": models.ExpectedRecommendations,
		})
	}

	for i, artist := range result.Recommendations {
		if empty := emptyFields(artist); len(empty) > 0 {
			logger.Warn("Model returned empty artist fields", logger.Fields{
				"mode":   string(mode),
				"rank":   i + 1,
				"artist": artist.Name,
				"fields": strings.Join(empty, ","),
			})
		}
		if IsGenericSubGenre(artist.SubGenre) {
			logger.Warn("Model returned a generic sub-genre", logger.Fields{
				"mode":      string(mode),
				"rank":      i + 1,
				"artist":    artist.Name,
				"sub_genre": artist.SubGenre,
			})
		}
	}
}

func emptyFields(a models.SonicArtist) []string {
	var empty []string
	for name, v := range map[string]string{
		"name":                a.Name,
		"genre":               a.Genre,
		"subGenre":            a.SubGenre,
		"style":               a.Style,
		"nuancedSimilarities": a.NuancedSimilarities,
	} {
		if strings.TrimSpace(v) == "" {
			empty = append(empty, name)
		}
	}
	sort.Strings(empty)
	return empty
}

// IsGenericSubGenre reports whether s is one of the coarse genre buckets
func IsGenericSubGenre(s string) bool {
	return genericSubGenres[strings.ToLower(strings.TrimSpace(s))]
}

func (c *Client) notify(ctx context.Context, event AnalysisEvent) {
	for _, o := range c.observers {
		o.ObserveAnalysis(ctx, event)
	}
}
