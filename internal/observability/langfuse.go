package observability

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Conceptual-Machines/sonicdna-api/internal/config"
	"github.com/Conceptual-Machines/sonicdna-api/internal/sonic"
	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

const (
	traceName      = "sonic.analyze"
	generationName = "sonic-search"
	levelError     = "ERROR"
)

// LangfuseClient wraps the Langfuse client with our configuration
type LangfuseClient struct {
	client  *langfuse.Langfuse
	enabled bool
	ctx     context.Context
}

// InitializeLangfuse creates a Langfuse client. A disabled client is returned
// when Langfuse is not configured; all its methods are no-ops.
func InitializeLangfuse(ctx context.Context, cfg *config.Config) *LangfuseClient {
	if !cfg.LangfuseEnabled || cfg.LangfuseSecretKey == "" {
		log.Println("⚠️  Langfuse not configured (LANGFUSE_ENABLED=false or LANGFUSE_SECRET_KEY not set)")
		return &LangfuseClient{enabled: false, ctx: ctx}
	}

	// The SDK reads LANGFUSE_* from the environment
	lf := langfuse.New(ctx)

	log.Printf("✅ Langfuse initialized (host: %s)", cfg.LangfuseHost)
	log.Printf("🔍 Langfuse: Public key set: %v, Secret key set: %v",
		os.Getenv("LANGFUSE_PUBLIC_KEY") != "",
		os.Getenv("LANGFUSE_SECRET_KEY") != "")

	return &LangfuseClient{
		client:  lf,
		enabled: true,
		ctx:     ctx,
	}
}

// IsEnabled returns whether Langfuse is enabled
func (c *LangfuseClient) IsEnabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Flush sends all queued events
func (c *LangfuseClient) Flush() {
	if c.IsEnabled() {
		c.client.Flush(c.ctx)
	}
}

// ObserveAnalysis records one analysis as a trace with a single generation.
// It implements sonic.Observer.
func (c *LangfuseClient) ObserveAnalysis(ctx context.Context, event sonic.AnalysisEvent) {
	if !c.IsEnabled() {
		return
	}

	trace := c.StartTrace(ctx, traceName, map[string]interface{}{
		"mode":     event.Mode.String(),
		"provider": event.Provider,
	})
	defer trace.Finish()

	gen := trace.Generation(generationName, map[string]interface{}{
		"temperature": event.Temperature,
	})
	gen.LogAnalysis(event)
	gen.Finish()
}

// StartTrace starts a new trace in Langfuse
func (c *LangfuseClient) StartTrace(ctx context.Context, name string, metadata map[string]interface{}) *Trace {
	if !c.IsEnabled() {
		return &Trace{enabled: false, ctx: ctx}
	}

	trace, err := c.client.Trace(&model.Trace{
		Name:     name,
		Metadata: metadata,
	})
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse trace: %v", err)
		return &Trace{enabled: false, ctx: ctx}
	}

	return &Trace{
		trace:   trace,
		enabled: true,
		ctx:     ctx,
		client:  c.client,
	}
}

// Trace represents a Langfuse trace
type Trace struct {
	trace   *model.Trace
	enabled bool
	ctx     context.Context
	client  *langfuse.Langfuse
}

// Generation creates a new generation span within the trace
func (t *Trace) Generation(name string, metadata map[string]interface{}) *Generation {
	if !t.enabled {
		return &Generation{enabled: false}
	}

	now := time.Now()
	gen, err := t.client.Generation(&model.Generation{
		TraceID:   t.trace.ID,
		Name:      name,
		StartTime: &now,
		Metadata:  metadata,
	}, nil)
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse generation: %v", err)
		return &Generation{enabled: false}
	}

	return &Generation{
		generation: gen,
		enabled:    true,
		client:     t.client,
	}
}

// Finish flushes the trace's queued events to Langfuse
func (t *Trace) Finish() {
	if t.enabled && t.client != nil {
		t.client.Flush(t.ctx)
	}
}

// Generation represents a Langfuse generation span
type Generation struct {
	generation *model.Generation
	enabled    bool
	client     *langfuse.Langfuse
}

// LogAnalysis copies prompts, output, usage and cost from event
func (g *Generation) LogAnalysis(event sonic.AnalysisEvent) {
	if !g.enabled || g.generation == nil {
		return
	}

	g.generation.Model = event.Model
	g.generation.Input = []map[string]string{
		{"role": "system", "content": event.SystemPrompt},
		{"role": "user", "content": event.UserPrompt},
	}
	if event.RawOutput != "" {
		g.generation.Output = event.RawOutput
	}

	cost := CalculateCost(event.Model, event.Usage)
	g.generation.Usage = model.Usage{
		Input:     int(event.Usage.InputTokens),
		Output:    int(event.Usage.OutputTokens),
		Total:     int(event.Usage.TotalTokens),
		Unit:      model.ModelUsageUnitTokens,
		TotalCost: cost,
	}

	metadata := map[string]interface{}{
		"model":           event.Model,
		"cost_usd":        cost,
		"duration_ms":     event.Duration.Milliseconds(),
		"recommendations": event.Recommendations,
	}
	if event.Err != nil {
		metadata["error"] = event.Err.Error()
		g.generation.Level = model.ObservationLevel(levelError)
	}
	g.Metadata(metadata)
}

// Metadata adds metadata to the generation
func (g *Generation) Metadata(metadata map[string]interface{}) {
	if g.enabled && g.generation != nil {
		if g.generation.Metadata == nil {
			g.generation.Metadata = make(map[string]interface{})
		}
		if md, ok := g.generation.Metadata.(map[string]interface{}); ok {
			for k, v := range metadata {
				md[k] = v
			}
		} else {
			g.generation.Metadata = metadata
		}
	}
}

// Finish completes the generation and queues it for sending
func (g *Generation) Finish() {
	if g.enabled && g.generation != nil && g.client != nil {
		now := time.Now()
		g.generation.EndTime = &now
		if _, err := g.client.GenerationEnd(g.generation); err != nil {
			log.Printf("⚠️  Failed to end Langfuse generation: %v", err)
		}
	}
}
