package metrics

import (
	"context"

	"github.com/Conceptual-Machines/sonicdna-api/internal/sonic"
)

// AnalysisRecorder fans a sonic.AnalysisEvent out to Prometheus, Sentry and CloudWatch
type AnalysisRecorder struct {
	sentry     *SentryMetrics
	cloudwatch *Client
}

// NewAnalysisRecorder creates a recorder; cloudwatch may be nil
func NewAnalysisRecorder(sentryMetrics *SentryMetrics, cloudwatch *Client) *AnalysisRecorder {
	return &AnalysisRecorder{
		sentry:     sentryMetrics,
		cloudwatch: cloudwatch,
	}
}

// ObserveAnalysis implements sonic.Observer
func (r *AnalysisRecorder) ObserveAnalysis(ctx context.Context, event sonic.AnalysisEvent) {
	mode := event.Mode.String()
	success := event.Success()

	AnalysisRequests.WithLabelValues(mode, outcome(success)).Inc()
	AnalysisDuration.WithLabelValues(mode, event.Provider).Observe(event.Duration.Seconds())
	if success {
		AnalysisRecommendations.Observe(float64(event.Recommendations))
	}
	if event.Usage.InputTokens > 0 {
		LLMTokens.WithLabelValues(event.Provider, event.Model, "input").Add(float64(event.Usage.InputTokens))
	}
	if event.Usage.OutputTokens > 0 {
		LLMTokens.WithLabelValues(event.Provider, event.Model, "output").Add(float64(event.Usage.OutputTokens))
	}

	if r.sentry != nil {
		r.sentry.RecordAnalysis(ctx, mode, event.Provider, event.Model, event.Duration, event.Recommendations, success)
		r.sentry.RecordTokenUsage(ctx, event.Model, event.Usage.TotalTokens, event.Usage.InputTokens, event.Usage.OutputTokens)
	}

	r.cloudwatch.RecordAnalysis(mode, event.Model, event.Duration, event.Usage.TotalTokens, success)
}
