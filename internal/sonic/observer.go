package sonic

import (
	"context"
	"time"

	"github.com/Conceptual-Machines/sonicdna-api/internal/llm"
	"github.com/Conceptual-Machines/sonicdna-api/internal/models"
)

// AnalysisEvent describes one finished Analyze call, successful or not
type AnalysisEvent struct {
	Query        string
	Mode         models.Mode
	Provider     string
	Model        string
	Temperature  float32
	SystemPrompt string
	UserPrompt   string
	RawOutput    string
	Usage        llm.Usage
	Duration     time.Duration

	// Recommendations is the number of artists returned (0 on failure)
	Recommendations int
	Err             error
}

// Success reports whether the analysis produced a result
func (e AnalysisEvent) Success() bool {
	return e.Err == nil
}

// Observer receives an event after every Analyze call. Observers must not block
// for long; they run on the request path.
type Observer interface {
	ObserveAnalysis(ctx context.Context, event AnalysisEvent)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ctx context.Context, event AnalysisEvent)

// ObserveAnalysis calls f
func (f ObserverFunc) ObserveAnalysis(ctx context.Context, event AnalysisEvent) {
	f(ctx, event)
}
