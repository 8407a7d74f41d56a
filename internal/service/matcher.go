package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/PeterSoManLung/FindDinning-sub001/internal/logger"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
)

const earthRadiusKm = 6371.0

// Review counts at or above this saturate the popularity sub-score.
const popularityReviewCeiling = 500.0

// MatcherService filters a restaurant catalog against hard criteria and
// ranks the survivors by a weighted composite score.
type MatcherService struct {
	moods *MoodMappingService
	log   *logger.Logger
}

var _ IMatcherService = (*MatcherService)(nil)

func NewMatcherService(moods *MoodMappingService, log *logger.Logger) *MatcherService {
	return &MatcherService{moods: moods, log: log}
}

// GenerateRecommendations applies the hard filters, scores the surviving
// candidates, and returns the top results with human-readable reasons.
// An empty catalog or an all-excluding filter yields an empty result.
func (s *MatcherService) GenerateRecommendations(
	user *models.User,
	prefs *models.UserPreferences,
	restaurants []models.Restaurant,
	criteria *models.MatchCriteria,
	weights *models.MatchWeights,
	primaryEmotion string,
	limit int,
) []models.RecommendedRestaurant {
	w := models.DefaultMatchWeights()
	if weights != nil {
		w = *weights
	}

	recommended := []models.RecommendedRestaurant{}
	for _, restaurant := range restaurants {
		if !s.passesFilters(user, prefs, &restaurant, criteria) {
			continue
		}
		score := s.compositeScore(user, prefs, &restaurant, criteria, w)
		recommended = append(recommended, models.RecommendedRestaurant{
			Restaurant:               restaurant,
			MatchScore:               score,
			ReasonsForRecommendation: s.buildReasons(prefs, &restaurant),
			EmotionalAlignment:       s.emotionalAlignment(&restaurant, primaryEmotion),
		})
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].MatchScore > recommended[j].MatchScore
	})
	if limit > 0 && len(recommended) > limit {
		recommended = recommended[:limit]
	}
	return recommended
}

func (s *MatcherService) passesFilters(user *models.User, prefs *models.UserPreferences, r *models.Restaurant, criteria *models.MatchCriteria) bool {
	if criteria != nil {
		if criteria.MaxDistanceKm > 0 && user != nil {
			if HaversineKm(user.Latitude, user.Longitude, r.Latitude, r.Longitude) > criteria.MaxDistanceKm {
				return false
			}
		}
		if criteria.MinRating > 0 && r.Rating < criteria.MinRating {
			return false
		}
		if criteria.MaxNegativeScore > 0 && r.NegativeScore > criteria.MaxNegativeScore {
			return false
		}
		if criteria.RequireOpen && !isOpenAt(r, criteria.ReferenceTime) {
			return false
		}
	}
	if prefs != nil && !satisfiesDietaryNeeds(r, prefs.DietaryRestrictions) {
		return false
	}
	return true
}

// satisfiesDietaryNeeds requires at least one menu highlight tagged with
// each restriction the user holds.
func satisfiesDietaryNeeds(r *models.Restaurant, restrictions []string) bool {
	for _, restriction := range restrictions {
		found := false
		for _, dish := range r.MenuHighlights {
			for _, tag := range dish.DietaryTags {
				if strings.EqualFold(tag, restriction) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// isOpenAt checks the weekday-indexed operating window against the
// reference time. Windows crossing midnight are treated as open until
// the close time on the following day.
func isOpenAt(r *models.Restaurant, at time.Time) bool {
	if at.IsZero() {
		at = time.Now()
	}
	weekday := strings.ToLower(at.Weekday().String())
	window, ok := r.OperatingHours[weekday]
	if !ok || !window.IsOpen {
		return false
	}
	if window.Open == "" || window.Close == "" {
		return true
	}

	current := at.Format("15:04")
	if window.Close < window.Open {
		return current >= window.Open || current <= window.Close
	}
	return current >= window.Open && current <= window.Close
}

func (s *MatcherService) compositeScore(user *models.User, prefs *models.UserPreferences, r *models.Restaurant, criteria *models.MatchCriteria, w models.MatchWeights) float64 {
	score := w.PreferenceMatch * preferenceMatchScore(prefs, r)
	score += w.Distance * distanceScore(user, r, criteria)
	score += w.Rating * clamp01(r.Rating/5.0)
	score += w.NegativeScore * clamp01(1.0-r.NegativeScore)
	score += w.Popularity * math.Min(1.0, float64(r.ReviewCount)/popularityReviewCeiling)
	return clamp01(score)
}

// preferenceMatchScore measures overlap between the user's cuisine and
// atmosphere preferences and the restaurant's attributes. With no stated
// preferences every restaurant scores a neutral 0.5.
func preferenceMatchScore(prefs *models.UserPreferences, r *models.Restaurant) float64 {
	if prefs == nil || (len(prefs.CuisineTypes) == 0 && len(prefs.AtmospherePreferences) == 0) {
		return 0.5
	}

	score := 0.0
	terms := 0
	if len(prefs.CuisineTypes) > 0 {
		score += overlapRatio(prefs.CuisineTypes, r.CuisineTypes)
		terms++
	}
	if len(prefs.AtmospherePreferences) > 0 {
		score += overlapRatio(prefs.AtmospherePreferences, r.Atmosphere)
		terms++
	}
	return score / float64(terms)
}

// containsFold reports whether list holds want, ignoring case. Catalog
// tags and stored preferences do not share a canonical casing.
func containsFold(list []string, want string) bool {
	for _, item := range list {
		if strings.EqualFold(item, want) {
			return true
		}
	}
	return false
}

func overlapRatio(wanted, actual []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	actualSet := make(map[string]bool, len(actual))
	for _, a := range actual {
		actualSet[strings.ToLower(a)] = true
	}
	hits := 0
	for _, want := range wanted {
		if actualSet[strings.ToLower(want)] {
			hits++
		}
	}
	return float64(hits) / float64(len(wanted))
}

// distanceScore normalizes inverse distance against the criteria's max
// distance, or a 10km default radius when none is set.
func distanceScore(user *models.User, r *models.Restaurant, criteria *models.MatchCriteria) float64 {
	if user == nil {
		return 0.5
	}
	radius := 10.0
	if criteria != nil && criteria.MaxDistanceKm > 0 {
		radius = criteria.MaxDistanceKm
	}
	distance := HaversineKm(user.Latitude, user.Longitude, r.Latitude, r.Longitude)
	return clamp01(1.0 - distance/radius)
}

func (s *MatcherService) buildReasons(prefs *models.UserPreferences, r *models.Restaurant) []string {
	reasons := []string{}
	if prefs != nil {
		for _, cuisine := range prefs.CuisineTypes {
			if containsFold(r.CuisineTypes, cuisine) {
				reasons = append(reasons, fmt.Sprintf("matches your %s cuisine preference", cuisine))
			}
		}
		for _, atmosphere := range prefs.AtmospherePreferences {
			if containsFold(r.Atmosphere, atmosphere) {
				reasons = append(reasons, fmt.Sprintf("offers the %s atmosphere you enjoy", atmosphere))
			}
		}
	}
	if r.Rating >= 4.5 {
		reasons = append(reasons, "highly rated by diners")
	}
	if r.NegativeScore <= 0.1 {
		reasons = append(reasons, "consistently positive feedback")
	}
	if r.IsLocalGem {
		reasons = append(reasons, "local gem")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "good overall match")
	}
	return reasons
}

// emotionalAlignment blends the restaurant's cuisine and atmosphere
// against the mood knowledge entry for the primary emotion.
func (s *MatcherService) emotionalAlignment(r *models.Restaurant, primaryEmotion string) float64 {
	if primaryEmotion == "" {
		primaryEmotion = models.EmotionNeutral
	}
	mapping := s.moods.GetMoodMapping(primaryEmotion)
	if mapping == nil {
		mapping = s.moods.GetMoodMapping(models.EmotionNeutral)
	}
	if mapping == nil {
		return 0.5
	}

	best := 0.0
	for _, rec := range mapping.CuisineRecommendations {
		if containsFold(r.CuisineTypes, rec.CuisineType) && rec.MatchScore > best {
			best = rec.MatchScore
		}
	}

	atmosphere := overlapRatio(mapping.AtmospherePreferences, r.Atmosphere)
	return clamp01(best*0.7 + atmosphere*0.3)
}

// HaversineKm returns the great-circle distance between two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180.0

	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
