package service

import (
	"testing"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMoodRecommendationService() *MoodRecommendationService {
	return NewMoodRecommendationService(logger.NewNop())
}

func TestClassifyIntent(t *testing.T) {
	svc := newTestMoodRecommendationService()

	assert.Equal(t, knowledge.IntentComfort, svc.ClassifyIntent("sad"))
	assert.Equal(t, knowledge.IntentCelebratory, svc.ClassifyIntent("happy"))
	assert.Equal(t, knowledge.IntentTherapeutic, svc.ClassifyIntent("stressed"))
	assert.Equal(t, knowledge.IntentAdventurous, svc.ClassifyIntent("adventurous"))
	assert.Equal(t, knowledge.IntentNeutral, svc.ClassifyIntent("neutral"))
	assert.Equal(t, knowledge.IntentNeutral, svc.ClassifyIntent("bewildered"))
}

func TestGenerateMoodBasedRecommendations_ComfortIntent(t *testing.T) {
	svc := newTestMoodRecommendationService()

	rec := svc.GenerateMoodBasedRecommendations(&models.MoodRecommendationRequest{
		UserID:         "user-1",
		PrimaryEmotion: "sad",
		Intensity:      3,
	})

	assert.Equal(t, knowledge.IntentComfort, rec.RecommendationType)
	require.NotEmpty(t, rec.PrimaryRecommendations)
	assert.LessOrEqual(t, len(rec.PrimaryRecommendations), 6)
	for i := 1; i < len(rec.PrimaryRecommendations); i++ {
		assert.GreaterOrEqual(t,
			rec.PrimaryRecommendations[i-1].MatchScore,
			rec.PrimaryRecommendations[i].MatchScore)
	}

	require.NotEmpty(t, rec.FallbackRecommendations)
	assert.LessOrEqual(t, len(rec.FallbackRecommendations), 5)
	assert.NotEmpty(t, rec.AtmosphereAdjustments)
	assert.NotEmpty(t, rec.PriceAdjustments)
	assert.InDelta(t, 0.8, rec.Confidence, 1e-9)
}

func TestGenerateMoodBasedRecommendations_SocialSettingBoost(t *testing.T) {
	svc := newTestMoodRecommendationService()

	rec := svc.GenerateMoodBasedRecommendations(&models.MoodRecommendationRequest{
		PrimaryEmotion: "romantic",
		Intensity:      3,
		SocialSetting:  "date",
	})

	require.NotEmpty(t, rec.PrimaryRecommendations)
	assert.Equal(t, "French", rec.PrimaryRecommendations[0].CuisineType)
	assert.InDelta(t, 1.0, rec.PrimaryRecommendations[0].MatchScore, 1e-9)
}

func TestGenerateMoodBasedRecommendations_DietaryFilter(t *testing.T) {
	svc := newTestMoodRecommendationService()

	rec := svc.GenerateMoodBasedRecommendations(&models.MoodRecommendationRequest{
		PrimaryEmotion: "sad",
		Intensity:      3,
		Preferences: &models.UserPreferences{
			DietaryRestrictions: models.JSONBStringArray{"vegan"},
		},
	})

	for _, r := range rec.PrimaryRecommendations {
		assert.NotEqual(t, "Comfort Food", r.CuisineType)
		assert.NotEqual(t, "Dessert", r.CuisineType)
	}
}

func TestGenerateMoodBasedRecommendations_UnknownEmotion(t *testing.T) {
	svc := newTestMoodRecommendationService()

	rec := svc.GenerateMoodBasedRecommendations(&models.MoodRecommendationRequest{
		PrimaryEmotion: "flabbergasted",
		Intensity:      3,
	})

	assert.Equal(t, knowledge.IntentNeutral, rec.RecommendationType)
	assert.NotEmpty(t, rec.PrimaryRecommendations)
	assert.NotEmpty(t, rec.FallbackRecommendations)
	assert.InDelta(t, 0.6, rec.Confidence, 1e-9)
}

func TestIdentifyComfortFood(t *testing.T) {
	svc := newTestMoodRecommendationService()

	recs := svc.IdentifyComfortFood(nil)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 6)
	assert.Equal(t, "Comfort Food", recs[0].CuisineType)
}

func TestSuggestCelebratoryDining(t *testing.T) {
	svc := newTestMoodRecommendationService()

	recs := svc.SuggestCelebratoryDining(&models.UserPreferences{
		CuisineTypes: models.JSONBStringArray{"Korean"},
	})
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 5)

	var korean *models.CuisineRecommendation
	for i := range recs {
		if recs[i].CuisineType == "Korean" {
			korean = &recs[i]
		}
	}
	require.NotNil(t, korean)
	assert.InDelta(t, 0.95, korean.MatchScore, 1e-9)
}

func TestHandleNeutralState(t *testing.T) {
	svc := newTestMoodRecommendationService()

	rec := svc.HandleNeutralState(nil)
	assert.Equal(t, knowledge.IntentNeutral, rec.RecommendationType)
	assert.NotEmpty(t, rec.PrimaryRecommendations)
	assert.LessOrEqual(t, len(rec.PrimaryRecommendations), 6)
	assert.NotEmpty(t, rec.FallbackRecommendations)
}
