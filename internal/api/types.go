package api

import "github.com/PeterSoManLung/FindDinning-sub001/internal/models"

// CuisineRecommendationRequest asks for the cuisine list for an emotion.
type CuisineRecommendationRequest struct {
	Emotion     string                  `json:"emotion" binding:"required"`
	Intensity   int                     `json:"intensity"`
	Preferences *models.UserPreferences `json:"preferences,omitempty"`
}

// ContextAnalysisRequest carries text plus optional situational context.
type ContextAnalysisRequest struct {
	Text    string                 `json:"text"`
	Context *models.EmotionContext `json:"context,omitempty"`
}

// PreferenceRequest carries optional user preferences for the specialized
// mood endpoints.
type PreferenceRequest struct {
	Preferences *models.UserPreferences `json:"preferences,omitempty"`
}

// RestaurantRecommendationRequest asks for ranked restaurant matches.
type RestaurantRecommendationRequest struct {
	UserID         string                `json:"user_id" binding:"required"`
	District       string                `json:"district,omitempty"`
	PrimaryEmotion string                `json:"primary_emotion,omitempty"`
	Criteria       *models.MatchCriteria `json:"criteria,omitempty"`
	Weights        *models.MatchWeights  `json:"weights,omitempty"`
	Limit          int                   `json:"limit,omitempty"`
}
