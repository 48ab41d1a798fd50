package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Conceptual-Machines/sonicdna-api/internal/links"
	"github.com/Conceptual-Machines/sonicdna-api/internal/models"
	"github.com/Conceptual-Machines/sonicdna-api/internal/sonic"
	"github.com/Conceptual-Machines/sonicdna-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// Analyzer runs one sonic analysis. *sonic.Client implements it.
type Analyzer interface {
	Analyze(ctx context.Context, query string, mode models.Mode) (*models.SearchResult, error)
	Model() string
	ProviderName() string
}

// AnalyzeRequest is the body of POST /api/v1/analyze. An empty mode means STRICT.
type AnalyzeRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode"`
}

// AnalyzeResponse carries the result plus one LinkSet per recommendation, same order
type AnalyzeResponse struct {
	Result *models.SearchResult `json:"result"`
	Links  []models.LinkSet     `json:"links"`
}

// LinksRequest is the body of POST /api/v1/links
type LinksRequest struct {
	Name             string `json:"name" validate:"required"`
	SubGenre         string `json:"subGenre"`
	SearchableName   string `json:"searchableName"`
	YouTubeChannelID string `json:"youtubeChannelId"`
}

type SonicHandler struct {
	analyzer Analyzer
}

func NewSonicHandler(analyzer Analyzer) *SonicHandler {
	return &SonicHandler{analyzer: analyzer}
}

// Analyze handles sonic analysis requests
// POST /api/v1/analyze
func (h *SonicHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Analyze: JSON binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	if len(query) > maxQueryLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is too long"})
		return
	}

	mode := models.ModeStrict
	if strings.TrimSpace(req.Mode) != "" {
		parsed, err := models.ParseMode(req.Mode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mode = parsed
	}

	log.Printf("🎧 Analyze: Received request, mode=%s, query=%q", mode, query)

	result, err := h.analyzer.Analyze(c.Request.Context(), query, mode)
	if err != nil {
		log.Printf("❌ Analyze: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, sonic.ErrAnalysisFailure) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error":      analysisFailedMessage,
			"request_id": c.GetString("request_id"),
		})
		return
	}

	log.Printf("✅ Analyze: Complete, %d recommendations", len(result.Recommendations))

	c.JSON(http.StatusOK, AnalyzeResponse{
		Result: result,
		Links:  links.BuildAll(result.Recommendations),
	})
}

// Links builds the outbound URLs for a single artist
// POST /api/v1/links
func (h *SonicHandler) Links(c *gin.Context) {
	var req LinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := validation.ValidateStruct(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, links.Build(models.SonicArtist{
		Name:             req.Name,
		SubGenre:         req.SubGenre,
		SearchableName:   req.SearchableName,
		YouTubeChannelID: req.YouTubeChannelID,
	}))
}
