package main

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/sonicdna-api/internal/api"
	"github.com/Conceptual-Machines/sonicdna-api/internal/config"
	"github.com/Conceptual-Machines/sonicdna-api/internal/llm"
	"github.com/Conceptual-Machines/sonicdna-api/internal/metrics"
	"github.com/Conceptual-Machines/sonicdna-api/internal/observability"
	"github.com/Conceptual-Machines/sonicdna-api/internal/sonic"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout = 2 * time.Second
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "sonicdna-api@" + releaseVersion, // Use embedded release version
			EnableTracing:    true,                             // Enable tracing for spans
			TracesSampleRate: 1.0,                              // 100% sampling for now, adjust based on volume
			EnableLogs:       true,                             // Enable Sentry Logs feature
			Debug:            !cfg.IsProduction(),              // Enable debug in non-prod
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				// Filter out sensitive data
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			// Flush on shutdown
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	ctx := context.Background()

	provider := newProvider(ctx, cfg)

	// Observers: Prometheus/Sentry/CloudWatch metrics and Langfuse tracing
	cloudwatchClient, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("Failed to initialize CloudWatch metrics: %v", err)
	}
	langfuseClient := observability.InitializeLangfuse(ctx, cfg)
	defer langfuseClient.Flush()

	sonicClient, err := sonic.NewClient(provider, cfg.LLMModel, sonic.WithObservers(
		metrics.NewAnalysisRecorder(metrics.NewSentryMetrics(), cloudwatchClient),
		langfuseClient,
	))
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to create sonic client:", err)
	}
	log.Printf("🎧 Sonic client ready (provider: %s, model: %s)", sonicClient.ProviderName(), sonicClient.Model())

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(cfg, sonicClient, GetVersion())

	// Start server
	port := cfg.Port
	log.Printf("🚀 Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

// newProvider builds the configured LLM provider. A missing key is not fatal:
// requests fail until it is set.
func newProvider(ctx context.Context, cfg *config.Config) llm.Provider {
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	provider, err := factory.GetProvider(ctx, cfg.LLMModel, cfg.LLMProvider)
	if err == nil {
		return provider
	}

	log.Printf("⚠️  LLM provider unavailable: %v", err)
	sentry.CaptureException(err)
	providerName := cfg.LLMProvider
	if providerName == "" {
		providerName = llm.InferProviderName(cfg.LLMModel)
	}
	return &llm.UnavailableProvider{ProviderName: providerName, Err: err}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
