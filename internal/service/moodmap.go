package service

import (
	"sort"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/knowledge"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
)

// Truncation limit for the cuisine-mapping endpoint.
const cuisineRecommendationLimit = 8

// MoodMappingService serves the emotion -> cuisine knowledge table with
// dietary filtering, preference boosting and intensity adjustment layered
// on top. The table is loaded once and never mutated; every call returns
// fresh copies.
type MoodMappingService struct {
	mappings map[string]models.MoodMapping
	log      *logger.Logger
}

var _ IMoodMappingService = (*MoodMappingService)(nil)

func NewMoodMappingService(mappings map[string]models.MoodMapping, log *logger.Logger) *MoodMappingService {
	return &MoodMappingService{mappings: mappings, log: log}
}

// GetMoodMapping returns the raw table entry for an emotion, or nil when
// the emotion is unknown. Callers wanting the fallback behavior should go
// through GetCuisineRecommendations instead.
func (s *MoodMappingService) GetMoodMapping(emotion string) *models.MoodMapping {
	mapping, ok := s.mappings[emotion]
	if !ok {
		return nil
	}
	out := mapping
	out.CuisineRecommendations = copyCuisines(mapping.CuisineRecommendations)
	out.AtmospherePreferences = append([]string{}, mapping.AtmospherePreferences...)
	return &out
}

// GetAllMoodMappings returns a copy of the full table.
func (s *MoodMappingService) GetAllMoodMappings() map[string]models.MoodMapping {
	out := make(map[string]models.MoodMapping, len(s.mappings))
	for emotion := range s.mappings {
		out[emotion] = *s.GetMoodMapping(emotion)
	}
	return out
}

// GetCuisineRecommendations resolves the cuisine list for an emotion,
// falling back to the neutral entry for unknown labels, then applies
// dietary filtering, preference boosting and intensity adjustment. The
// result is sorted by match score descending and truncated.
func (s *MoodMappingService) GetCuisineRecommendations(emotion string, intensity int, prefs *models.UserPreferences) []models.CuisineRecommendation {
	mapping, ok := s.mappings[emotion]
	if !ok {
		mapping = s.mappings[models.EmotionNeutral]
	}

	recs := copyCuisines(mapping.CuisineRecommendations)
	if prefs != nil {
		recs = FilterByDietaryRestrictions(recs, prefs.DietaryRestrictions)
		recs = boostPreferredCuisines(recs, prefs.CuisineTypes)
	}
	recs = applyIntensityAdjustment(recs, emotion, intensity)

	sortCuisines(recs)
	return truncateCuisines(recs, cuisineRecommendationLimit)
}

// FilterByDietaryRestrictions removes candidates whose cuisine type is
// excluded for any restriction the user holds. Idempotent.
func FilterByDietaryRestrictions(recs []models.CuisineRecommendation, restrictions []string) []models.CuisineRecommendation {
	if len(restrictions) == 0 {
		return recs
	}

	excluded := map[string]bool{}
	for _, restriction := range restrictions {
		for _, cuisine := range knowledge.DietaryExclusions[restriction] {
			excluded[cuisine] = true
		}
	}

	filtered := make([]models.CuisineRecommendation, 0, len(recs))
	for _, rec := range recs {
		if !excluded[rec.CuisineType] {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// boostPreferredCuisines raises the score of any candidate matching a
// preferred cuisine type and annotates the reasoning.
func boostPreferredCuisines(recs []models.CuisineRecommendation, preferred []string) []models.CuisineRecommendation {
	if len(preferred) == 0 {
		return recs
	}
	preferredSet := map[string]bool{}
	for _, cuisine := range preferred {
		preferredSet[cuisine] = true
	}
	for i := range recs {
		if preferredSet[recs[i].CuisineType] {
			recs[i].MatchScore = clamp01(recs[i].MatchScore + 0.2)
			recs[i].Reasoning += " (matches your cuisine preferences)"
		}
	}
	return recs
}

// applyIntensityAdjustment boosts therapeutic cuisines for high-intensity
// negative moods, and safe choices at low intensity.
func applyIntensityAdjustment(recs []models.CuisineRecommendation, emotion string, intensity int) []models.CuisineRecommendation {
	switch {
	case intensity >= 4 && knowledge.NegativeEmotions[emotion]:
		for i := range recs {
			if knowledge.TherapeuticCuisines[recs[i].CuisineType] {
				recs[i].MatchScore = clamp01(recs[i].MatchScore + 0.1)
			}
		}
	case intensity > 0 && intensity <= 2:
		for i := range recs {
			if knowledge.SafeCuisines[recs[i].CuisineType] {
				recs[i].MatchScore = clamp01(recs[i].MatchScore + 0.1)
			}
		}
	}
	return recs
}

func copyCuisines(recs []models.CuisineRecommendation) []models.CuisineRecommendation {
	out := make([]models.CuisineRecommendation, len(recs))
	copy(out, recs)
	for i := range out {
		out[i].SpecificDishes = append([]string(nil), recs[i].SpecificDishes...)
	}
	return out
}

func sortCuisines(recs []models.CuisineRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
}

func truncateCuisines(recs []models.CuisineRecommendation, limit int) []models.CuisineRecommendation {
	if len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
