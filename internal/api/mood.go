package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
)

// MoodHandler serves the mood knowledge base and intent-driven
// recommendation endpoints.
type MoodHandler struct {
	moods    service.IMoodMappingService
	moodRecs service.IMoodRecommendationService
	contexts service.IContextService
	ml       service.IMLService
}

// NewMoodHandler creates a new MoodHandler instance
func NewMoodHandler(moods service.IMoodMappingService, moodRecs service.IMoodRecommendationService, contexts service.IContextService, ml service.IMLService) *MoodHandler {
	return &MoodHandler{
		moods:    moods,
		moodRecs: moodRecs,
		contexts: contexts,
		ml:       ml,
	}
}

// RegisterRoutes registers the mood routes
func (h *MoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	mood := router.Group("/mood")
	{
		mood.GET("/mappings", h.AllMappings)
		mood.GET("/mappings/:emotion", h.Mapping)
		mood.POST("/cuisines", h.Cuisines)
		mood.POST("/recommendations", h.Recommendations)
		mood.POST("/comfort", h.ComfortFood)
		mood.POST("/celebratory", h.CelebratoryDining)
		mood.POST("/neutral", h.NeutralState)
		mood.GET("/context/:name", h.ContextBundle)
		mood.GET("/analysis/:id", h.Analysis)
	}
}

// AllMappings returns the full mood knowledge table.
func (h *MoodHandler) AllMappings(c *gin.Context) {
	c.JSON(http.StatusOK, h.moods.GetAllMoodMappings())
}

// Mapping returns the knowledge entry for one emotion, 404 for unknown.
func (h *MoodHandler) Mapping(c *gin.Context) {
	mapping := h.moods.GetMoodMapping(c.Param("emotion"))
	if mapping == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown emotion"})
		return
	}
	c.JSON(http.StatusOK, mapping)
}

// Cuisines returns the tailored cuisine recommendations for an emotion.
func (h *MoodHandler) Cuisines(c *gin.Context) {
	var req CuisineRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Intensity != 0 && (req.Intensity < 1 || req.Intensity > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intensity must be between 1 and 5"})
		return
	}

	recs := h.moods.GetCuisineRecommendations(req.Emotion, req.Intensity, req.Preferences)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// Recommendations returns the intent-dispatched recommendation bundle.
func (h *MoodHandler) Recommendations(c *gin.Context) {
	var req models.MoodRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PrimaryEmotion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "primary_emotion is required"})
		return
	}
	if req.Intensity != 0 && (req.Intensity < 1 || req.Intensity > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intensity must be between 1 and 5"})
		return
	}

	c.JSON(http.StatusOK, h.moodRecs.GenerateMoodBasedRecommendations(&req))
}

// ComfortFood returns the comfort-intent cuisine list.
func (h *MoodHandler) ComfortFood(c *gin.Context) {
	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": h.moodRecs.IdentifyComfortFood(req.Preferences)})
}

// CelebratoryDining returns the celebratory-intent cuisine list.
func (h *MoodHandler) CelebratoryDining(c *gin.Context) {
	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": h.moodRecs.SuggestCelebratoryDining(req.Preferences)})
}

// NeutralState returns the neutral-intent bundle.
func (h *MoodHandler) NeutralState(c *gin.Context) {
	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.moodRecs.HandleNeutralState(req.Preferences))
}

// ContextBundle returns the named contextual adjustment bundle; unknown
// names yield an empty list, not an error.
func (h *MoodHandler) ContextBundle(c *gin.Context) {
	adjustments := h.contexts.GetContextualRecommendations(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"adjustments": adjustments})
}

// Analysis fetches a previously stored ML analysis by ID.
func (h *MoodHandler) Analysis(c *gin.Context) {
	result, err := h.ml.GetAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}
