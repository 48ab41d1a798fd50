package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	analyzer Analyzer
}

func NewHealthHandler(analyzer Analyzer) *HealthHandler {
	return &HealthHandler{analyzer: analyzer}
}

// HealthCheck returns the health status of the API.
// It does not call the model provider.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"llm": gin.H{
			"provider": h.analyzer.ProviderName(),
			"model":    h.analyzer.Model(),
		},
	})
}
