package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/middleware"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
)

// EmotionHandler handles emotion analysis requests
type EmotionHandler struct {
	emotions service.IEmotionService
	contexts service.IContextService
	ml       service.IMLService
	tokens   middleware.TokenValidator
	limiter  *middleware.RateLimiter
}

// NewEmotionHandler creates a new EmotionHandler instance
func NewEmotionHandler(emotions service.IEmotionService, contexts service.IContextService, ml service.IMLService, tokens middleware.TokenValidator, limiter *middleware.RateLimiter) *EmotionHandler {
	return &EmotionHandler{
		emotions: emotions,
		contexts: contexts,
		ml:       ml,
		tokens:   tokens,
		limiter:  limiter,
	}
}

// RegisterRoutes registers the emotion analysis routes. The ML-enhanced
// endpoint is the expensive one, so it sits behind auth and the rate
// limiter when those are configured.
func (h *EmotionHandler) RegisterRoutes(router *gin.RouterGroup) {
	emotion := router.Group("/emotion")
	{
		emotion.POST("/analyze", h.Analyze)
		emotion.POST("/context", h.Context)

		ml := emotion.Group("")
		if h.tokens != nil {
			ml.Use(middleware.AuthMiddleware(h.tokens))
		}
		if h.limiter != nil {
			ml.Use(h.limiter.RateLimitMiddleware())
		}
		ml.POST("/analyze/ml", h.AnalyzeML)
	}
}

// Analyze runs the deterministic emotion analysis.
func (h *EmotionHandler) Analyze(c *gin.Context) {
	var req models.EmotionAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TextInput == "" && req.EmotionalState == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text_input or emotional_state is required"})
		return
	}

	c.JSON(http.StatusOK, h.emotions.AnalyzeEmotion(&req))
}

// AnalyzeML runs the ML-enhanced analysis with fallback.
func (h *EmotionHandler) AnalyzeML(c *gin.Context) {
	var req models.EmotionAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TextInput == "" && req.EmotionalState == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text_input or emotional_state is required"})
		return
	}

	c.JSON(http.StatusOK, h.ml.AnalyzeEmotionWithML(c.Request.Context(), &req))
}

// Context runs the contextual analysis pass.
func (h *EmotionHandler) Context(c *gin.Context) {
	var req ContextAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" && req.Context == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text or context is required"})
		return
	}

	c.JSON(http.StatusOK, h.contexts.ProcessEmotionContext(req.Text, req.Context))
}
