package service

import (
	"strings"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
)

// Per-endpoint truncation limits. These differ deliberately across entry
// points and are part of each endpoint's contract.
const (
	moodPrimaryLimit       = 6
	moodFallbackLimit      = 5
	comfortFoodLimit       = 6
	celebratoryDiningLimit = 5
	neutralStateLimit      = 6
)

// MoodRecommendationService dispatches the primary emotion to one of five
// recommendation intents and assembles the corresponding bundle, always
// including a fallback list from a sibling intent.
type MoodRecommendationService struct {
	log *logger.Logger
}

var _ IMoodRecommendationService = (*MoodRecommendationService)(nil)

func NewMoodRecommendationService(log *logger.Logger) *MoodRecommendationService {
	return &MoodRecommendationService{log: log}
}

// ClassifyIntent maps an emotion label to its recommendation intent,
// defaulting to neutral.
func (s *MoodRecommendationService) ClassifyIntent(emotion string) string {
	if intent, ok := knowledge.IntentMembership[strings.ToLower(emotion)]; ok {
		return intent
	}
	return knowledge.IntentNeutral
}

// GenerateMoodBasedRecommendations builds the full recommendation bundle
// for a request: intent dispatch, social/time/preference/intensity boosts,
// and a fallback list from the paired intent's table.
func (s *MoodRecommendationService) GenerateMoodBasedRecommendations(req *models.MoodRecommendationRequest) *models.MoodRecommendation {
	intent := s.ClassifyIntent(req.PrimaryEmotion)
	table := knowledge.IntentTables[intent]

	primary := copyCuisines(table.Recommendations)
	primary = applyCuisineBoosts(primary, knowledge.SocialSettingBoosts[strings.ToLower(req.SocialSetting)])
	primary = applyCuisineBoosts(primary, knowledge.TimeOfDayBoosts[strings.ToLower(req.TimeOfDay)])
	if req.Preferences != nil {
		primary = FilterByDietaryRestrictions(primary, req.Preferences.DietaryRestrictions)
		primary = boostPreferredCuisines(primary, req.Preferences.CuisineTypes)
	}
	primary = applyIntensityAdjustment(primary, strings.ToLower(req.PrimaryEmotion), req.Intensity)
	sortCuisines(primary)
	primary = truncateCuisines(primary, moodPrimaryLimit)

	fallbackTable := knowledge.IntentTables[knowledge.FallbackIntent[intent]]
	fallback := copyCuisines(fallbackTable.Recommendations)
	if req.Preferences != nil {
		fallback = FilterByDietaryRestrictions(fallback, req.Preferences.DietaryRestrictions)
	}
	sortCuisines(fallback)
	fallback = truncateCuisines(fallback, moodFallbackLimit)

	confidence := 0.8
	if _, ok := knowledge.IntentMembership[strings.ToLower(req.PrimaryEmotion)]; !ok {
		confidence = 0.6
	}

	return &models.MoodRecommendation{
		RecommendationType:      intent,
		PrimaryRecommendations:  primary,
		FallbackRecommendations: fallback,
		AtmosphereAdjustments:   append([]string{}, table.Atmosphere...),
		PriceAdjustments:        []models.RecommendationAdjustment{table.PriceAdjustment},
		Reasoning:               table.Reasoning,
		Confidence:              confidence,
	}
}

// IdentifyComfortFood returns the comfort-intent cuisine list tailored to
// the user's preferences.
func (s *MoodRecommendationService) IdentifyComfortFood(prefs *models.UserPreferences) []models.CuisineRecommendation {
	return s.intentCuisines(knowledge.IntentComfort, prefs, comfortFoodLimit)
}

// SuggestCelebratoryDining returns the celebratory-intent cuisine list.
func (s *MoodRecommendationService) SuggestCelebratoryDining(prefs *models.UserPreferences) []models.CuisineRecommendation {
	return s.intentCuisines(knowledge.IntentCelebratory, prefs, celebratoryDiningLimit)
}

// HandleNeutralState returns the full neutral-intent bundle for requests
// with no usable mood signal.
func (s *MoodRecommendationService) HandleNeutralState(prefs *models.UserPreferences) *models.MoodRecommendation {
	rec := s.GenerateMoodBasedRecommendations(&models.MoodRecommendationRequest{
		PrimaryEmotion: models.EmotionNeutral,
		Intensity:      3,
		Preferences:    prefs,
	})
	rec.PrimaryRecommendations = truncateCuisines(rec.PrimaryRecommendations, neutralStateLimit)
	return rec
}

func (s *MoodRecommendationService) intentCuisines(intent string, prefs *models.UserPreferences, limit int) []models.CuisineRecommendation {
	recs := copyCuisines(knowledge.IntentTables[intent].Recommendations)
	if prefs != nil {
		recs = FilterByDietaryRestrictions(recs, prefs.DietaryRestrictions)
		recs = boostPreferredCuisines(recs, prefs.CuisineTypes)
	}
	sortCuisines(recs)
	return truncateCuisines(recs, limit)
}

func applyCuisineBoosts(recs []models.CuisineRecommendation, boosts map[string]float64) []models.CuisineRecommendation {
	if len(boosts) == 0 {
		return recs
	}
	for i := range recs {
		if boost, ok := boosts[recs[i].CuisineType]; ok {
			recs[i].MatchScore = clamp01(recs[i].MatchScore + boost)
		}
	}
	return recs
}
