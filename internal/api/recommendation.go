package api

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/service"
)

const defaultRecommendationLimit = 10

// RecommendationHandler serves ranked restaurant recommendations.
type RecommendationHandler struct {
	matcher  service.IMatcherService
	profiles service.IProfileService
	catalog  service.ICatalogService
}

// NewRecommendationHandler creates a new RecommendationHandler instance
func NewRecommendationHandler(matcher service.IMatcherService, profiles service.IProfileService, catalog service.ICatalogService) *RecommendationHandler {
	return &RecommendationHandler{
		matcher:  matcher,
		profiles: profiles,
		catalog:  catalog,
	}
}

// RegisterRoutes registers the recommendation routes
func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	recommendations := router.Group("/recommendations")
	{
		recommendations.POST("/generate", h.Generate)
	}
}

// Generate loads the user, preferences and catalog, then runs the matcher.
func (h *RecommendationHandler) Generate(c *gin.Context) {
	var req RestaurantRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	if req.Weights != nil && math.Abs(req.Weights.Sum()-1.0) > 0.01 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weights must sum to 1"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.profiles.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	prefs, err := h.profiles.GetPreferences(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	restaurants, err := h.catalog.ListRestaurants(ctx, req.District)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	result := h.matcher.GenerateRecommendations(user, prefs, restaurants,
		req.Criteria, req.Weights, req.PrimaryEmotion, limit)
	c.JSON(http.StatusOK, gin.H{"recommendations": result})
}
