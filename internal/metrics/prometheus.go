package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisRequests counts analyses.
	// Labels:
	//   - mode: "STRICT", "DISCOVERY"
	//   - outcome: "success", "failure"
	AnalysisRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sonic_analysis_requests_total",
			Help: "Total number of sonic analyses",
		},
		[]string{"mode", "outcome"},
	)

	// AnalysisDuration measures end-to-end analysis latency, model call included
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sonic_analysis_duration_seconds",
			Help:    "Duration of sonic analyses in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"mode", "provider"},
	)

	// AnalysisRecommendations tracks how many artists the model actually returned
	AnalysisRecommendations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sonic_analysis_recommendations",
			Help:    "Number of recommendations returned per successful analysis",
			Buckets: []float64{0, 5, 8, 9, 10, 11, 12, 15},
		},
	)

	// LLMTokens counts tokens consumed.
	// Labels:
	//   - direction: "input", "output"
	LLMTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sonic_llm_tokens_total",
			Help: "Total LLM tokens consumed",
		},
		[]string{"provider", "model", "direction"},
	)

	// HTTPRequests counts API requests by route and status class
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sonic_http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)
)

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
