package handlers

const (
	// Shown to users for every failed analysis; causes go to logs and Sentry only
	analysisFailedMessage = "Sonic analysis failed. Please verify your API key and try again."

	// Upper bound on free-text query length
	maxQueryLength = 500
)
