package service

import (
	"context"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/google/uuid"
)

// IEmotionService defines the interface for deterministic emotion analysis
type IEmotionService interface {
	AnalyzeEmotion(req *models.EmotionAnalysisRequest) *models.EmotionAnalysisResult
	NormalizeEmotion(state string) string
	DetectFromText(text string) []models.DetectedEmotion
}

// IContextService defines the interface for contextual analysis
type IContextService interface {
	ProcessEmotionContext(text string, ctx *models.EmotionContext) *models.EmotionContextResult
	GetContextualRecommendations(name string) []models.RecommendationAdjustment
}

// IMoodMappingService defines the interface for the mood knowledge base
type IMoodMappingService interface {
	GetMoodMapping(emotion string) *models.MoodMapping
	GetAllMoodMappings() map[string]models.MoodMapping
	GetCuisineRecommendations(emotion string, intensity int, prefs *models.UserPreferences) []models.CuisineRecommendation
}

// IMoodRecommendationService defines the interface for intent-driven
// recommendation bundles
type IMoodRecommendationService interface {
	GenerateMoodBasedRecommendations(req *models.MoodRecommendationRequest) *models.MoodRecommendation
	IdentifyComfortFood(prefs *models.UserPreferences) []models.CuisineRecommendation
	SuggestCelebratoryDining(prefs *models.UserPreferences) []models.CuisineRecommendation
	HandleNeutralState(prefs *models.UserPreferences) *models.MoodRecommendation
}

// IMatcherService defines the interface for restaurant matching
type IMatcherService interface {
	GenerateRecommendations(user *models.User, prefs *models.UserPreferences, restaurants []models.Restaurant, criteria *models.MatchCriteria, weights *models.MatchWeights, primaryEmotion string, limit int) []models.RecommendedRestaurant
}

// IMLService defines the interface for the best-effort enhancement layer
type IMLService interface {
	AnalyzeEmotionWithML(ctx context.Context, req *models.EmotionAnalysisRequest) *models.EnhancedEmotionResult
	GetAnalysis(ctx context.Context, analysisID string) (*models.EnhancedEmotionResult, error)
}

// IProfileService defines the interface for the read-only profile store
type IProfileService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error)
}

// ICatalogService defines the interface for the restaurant catalog
type ICatalogService interface {
	GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context, district string) ([]models.Restaurant, error)
	SearchRestaurants(ctx context.Context, query string) ([]models.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error)
}
